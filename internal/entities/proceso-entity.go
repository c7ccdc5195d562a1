package entities

import "time"

// Proceso is a legal case record mirrored from the Redelex provider. The
// party summary columns are denormalized onto the row because every list
// view needs them.
type Proceso struct {
	ID               uint64  `json:"idProceso" db:"id"`
	NumeroRadicacion *string `json:"numeroRadicacion" db:"numero_radicacion"`
	CodigoAlterno    *string `json:"codigoAlterno" db:"codigo_alterno"`
	ClaseProceso     *string `json:"claseProceso" db:"clase_proceso"`
	EtapaProcesal    *string `json:"etapaProcesal" db:"etapa_procesal"`
	Estado           *string `json:"estado" db:"estado"`
	Regional         *string `json:"regional" db:"regional"`
	Tema             *string `json:"tema" db:"tema"`
	Despacho         *string `json:"despacho" db:"despacho"`
	DespachoOrigen   *string `json:"despachoOrigen" db:"despacho_origen"`

	DemandadoNombre          string `json:"demandadoNombre" db:"demandado_nombre"`
	DemandadoIdentificacion  string `json:"demandadoIdentificacion" db:"demandado_identificacion"`
	DemandanteNombre         string `json:"demandanteNombre" db:"demandante_nombre"`
	DemandanteIdentificacion string `json:"demandanteIdentificacion" db:"demandante_identificacion"`

	FechaAdmisionDemanda  *time.Time `json:"fechaAdmisionDemanda" db:"fecha_admision_demanda"`
	FechaCreacion         time.Time  `json:"fechaCreacion" db:"fecha_creacion"`
	FechaEntregaAbogado   *time.Time `json:"fechaEntregaAbogado" db:"fecha_entrega_abogado"`
	FechaRecepcionProceso *time.Time `json:"fechaRecepcionProceso" db:"fecha_recepcion_proceso"`

	UbicacionContrato            *string    `json:"ubicacionContrato" db:"ubicacion_contrato"`
	FechaAceptacionSubrogacion   *time.Time `json:"fechaAceptacionSubrogacion" db:"fecha_aceptacion_subrogacion"`
	FechaPresentacionSubrogacion *time.Time `json:"fechaPresentacionSubrogacion" db:"fecha_presentacion_subrogacion"`
	MotivoNoSubrogacion          *string    `json:"motivoNoSubrogacion" db:"motivo_no_subrogacion"`
	Calificacion                 *string    `json:"calificacion" db:"calificacion"`

	SentenciaPrimeraInstanciaResultado *string    `json:"sentenciaPrimeraInstanciaResultado" db:"sentencia_primera_instancia_resultado"`
	SentenciaPrimeraInstanciaFecha     *time.Time `json:"sentenciaPrimeraInstanciaFecha" db:"sentencia_primera_instancia_fecha"`

	CiudadInmueble *string `json:"ciudadInmueble" db:"ciudad_inmueble"`

	InmobiliariaID *uint64 `json:"-" db:"inmobiliaria_id"`
}

// ProcesoResumen is the row shape of the list views.
type ProcesoResumen struct {
	ProcesoID                uint64 `json:"procesoId" db:"id"`
	DemandadoNombre          string `json:"demandadoNombre" db:"demandado_nombre"`
	DemandadoIdentificacion  string `json:"demandadoIdentificacion" db:"demandado_identificacion"`
	DemandanteNombre         string `json:"demandanteNombre" db:"demandante_nombre"`
	DemandanteIdentificacion string `json:"demandanteIdentificacion" db:"demandante_identificacion"`
}

type Sujeto struct {
	ProcesoID            uint64 `json:"-" db:"proceso_id"`
	Tipo                 string `json:"Tipo" db:"tipo"`
	Nombre               string `json:"Nombre" db:"nombre"`
	TipoIdentificacion   string `json:"TipoIdentificacion" db:"tipo_identificacion"`
	NumeroIdentificacion string `json:"NumeroIdentificacion" db:"numero_identificacion"`
}

type Abogado struct {
	ProcesoID uint64 `json:"-" db:"proceso_id"`
	ActuaComo string `json:"ActuaComo" db:"actua_como"`
	Nombre    string `json:"Nombre" db:"nombre"`
}

type MedidaCautelar struct {
	ProcesoID            uint64     `json:"-" db:"proceso_id"`
	TipoBien             *string    `json:"tipoBien" db:"tipo_bien"`
	Sujeto               *string    `json:"sujeto" db:"sujeto"`
	Descripcion          *string    `json:"descripcion" db:"descripcion"`
	TipoMedida           *string    `json:"tipoMedida" db:"tipo_medida"`
	MedidaEfectiva       *string    `json:"medidaEfectiva" db:"medida_efectiva"`
	AvaluoJudicial       float64    `json:"avaluoJudicial" db:"avaluo_judicial"`
	Observaciones        *string    `json:"observaciones" db:"observaciones"`
	IdentificacionSujeto *string    `json:"identificacionSujeto" db:"identificacion_sujeto"`
	Area                 *string    `json:"area" db:"area"`
	Fecha                *time.Time `json:"fecha" db:"fecha"`
}

type Actuacion struct {
	ProcesoID   uint64    `json:"-" db:"proceso_id"`
	Fecha       time.Time `json:"fecha" db:"fecha"`
	Observacion string    `json:"observacion" db:"observacion"`
	Etapa       string    `json:"etapa" db:"etapa"`
	Tipo        string    `json:"tipo" db:"tipo"`
	Cuaderno    string    `json:"cuaderno" db:"cuaderno"`
}

// InformeRow is one line of the informe inmobiliaria report.
type InformeRow struct {
	ProcesoID                 uint64     `json:"idProceso" db:"id"`
	ClaseProceso              *string    `json:"claseProceso" db:"clase_proceso"`
	DemandadoIdentificacion   string     `json:"demandadoIdentificacion" db:"demandado_identificacion"`
	DemandadoNombre           string     `json:"demandadoNombre" db:"demandado_nombre"`
	DemandanteIdentificacion  string     `json:"demandanteIdentificacion" db:"demandante_identificacion"`
	DemandanteNombre          string     `json:"demandanteNombre" db:"demandante_nombre"`
	CodigoAlterno             *string    `json:"codigoAlterno" db:"codigo_alterno"`
	EtapaProcesal             *string    `json:"etapaProcesal" db:"etapa_procesal"`
	FechaRecepcionProceso     *time.Time `json:"fechaRecepcionProceso" db:"fecha_recepcion_proceso"`
	SentenciaPrimeraInstancia *string    `json:"sentenciaPrimeraInstancia" db:"sentencia_primera_instancia"`
	Despacho                  *string    `json:"despacho" db:"despacho"`
	NumeroRadicacion          *string    `json:"numeroRadicacion" db:"numero_radicacion"`
	CiudadInmueble            *string    `json:"ciudadInmueble" db:"ciudad_inmueble"`
}
