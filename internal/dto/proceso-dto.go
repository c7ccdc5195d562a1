package dto

import (
	"time"

	"github.com/JuanDPAffi/redelex-api/internal/entities"
)

type ProcesoResumenDTO struct {
	ProcesoID                uint64 `json:"procesoId"`
	DemandadoNombre          string `json:"demandadoNombre"`
	DemandadoIdentificacion  string `json:"demandadoIdentificacion"`
	DemandanteNombre         string `json:"demandanteNombre"`
	DemandanteIdentificacion string `json:"demandanteIdentificacion"`
}

type ProcesosPorIdentificacionDTO struct {
	Identificacion string              `json:"identificacion"`
	Procesos       []ProcesoResumenDTO `json:"procesos"`
}

type ActuacionDTO struct {
	Fecha       string `json:"fecha"`
	Observacion string `json:"observacion"`
	Etapa       string `json:"etapa"`
	Tipo        string `json:"tipo"`
	Cuaderno    string `json:"cuaderno"`
}

type ProcesoDetalleDTO struct {
	IDProceso                          uint64               `json:"idProceso"`
	NumeroRadicacion                   *string              `json:"numeroRadicacion"`
	CodigoAlterno                      *string              `json:"codigoAlterno"`
	ClaseProceso                       *string              `json:"claseProceso"`
	EtapaProcesal                      *string              `json:"etapaProcesal"`
	Estado                             *string              `json:"estado"`
	Regional                           *string              `json:"regional"`
	Tema                               *string              `json:"tema"`
	Despacho                           *string              `json:"despacho"`
	DespachoOrigen                     *string              `json:"despachoOrigen"`
	Sujetos                            []entities.Sujeto    `json:"sujetos"`
	Abogados                           []entities.Abogado   `json:"abogados"`
	MedidasCautelares                  []MedidaCautelarDTO  `json:"medidasCautelares"`
	FechaAdmisionDemanda               string               `json:"fechaAdmisionDemanda"`
	FechaCreacion                      string               `json:"fechaCreacion"`
	FechaEntregaAbogado                string               `json:"fechaEntregaAbogado"`
	FechaRecepcionProceso              string               `json:"fechaRecepcionProceso"`
	UbicacionContrato                  *string              `json:"ubicacionContrato"`
	FechaAceptacionSubrogacion         string               `json:"fechaAceptacionSubrogacion"`
	FechaPresentacionSubrogacion       string               `json:"fechaPresentacionSubrogacion"`
	MotivoNoSubrogacion                *string              `json:"motivoNoSubrogacion"`
	Calificacion                       *string              `json:"calificacion"`
	SentenciaPrimeraInstanciaResultado *string              `json:"sentenciaPrimeraInstanciaResultado"`
	SentenciaPrimeraInstanciaFecha     *string              `json:"sentenciaPrimeraInstanciaFecha"`
	UltimaActuacionFecha               string               `json:"ultimaActuacionFecha"`
	UltimaActuacionTipo                *string              `json:"ultimaActuacionTipo"`
	UltimaActuacionObservacion         *string              `json:"ultimaActuacionObservacion"`
	ActuacionesRecientes               []ActuacionDTO       `json:"actuacionesRecientes,omitempty"`
}

type MedidaCautelarDTO struct {
	TipoBien             *string `json:"tipoBien"`
	Sujeto               *string `json:"sujeto"`
	Descripcion          *string `json:"descripcion"`
	TipoMedida           *string `json:"tipoMedida"`
	MedidaEfectiva       *string `json:"medidaEfectiva"`
	AvaluoJudicial       float64 `json:"avaluoJudicial"`
	Observaciones        *string `json:"observaciones"`
	IdentificacionSujeto *string `json:"identificacionSujeto"`
	Area                 *string `json:"area"`
	Fecha                *string `json:"fecha"`
}

type InformeRowDTO struct {
	IDProceso                 uint64  `json:"idProceso"`
	ClaseProceso              string  `json:"claseProceso"`
	DemandadoIdentificacion   string  `json:"demandadoIdentificacion"`
	DemandadoNombre           string  `json:"demandadoNombre"`
	DemandanteIdentificacion  string  `json:"demandanteIdentificacion"`
	DemandanteNombre          string  `json:"demandanteNombre"`
	CodigoAlterno             string  `json:"codigoAlterno"`
	EtapaProcesal             string  `json:"etapaProcesal"`
	FechaRecepcionProceso     string  `json:"fechaRecepcionProceso"`
	SentenciaPrimeraInstancia string  `json:"sentenciaPrimeraInstancia"`
	Despacho                  string  `json:"despacho"`
	NumeroRadicacion          string  `json:"numeroRadicacion"`
	CiudadInmueble            *string `json:"ciudadInmueble"`
}

// FormatFecha renders a nullable date for the front end; empty string for
// missing values, matching the legacy API contract.
func FormatFecha(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
