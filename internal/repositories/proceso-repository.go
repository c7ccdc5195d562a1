package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/entities"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

const procesoResumenColumns = "id, demandado_nombre, demandado_identificacion, demandante_nombre, demandante_identificacion"

type ProcesoRepositoryInterface interface {
	FindResumenByIdentificacion(ctx context.Context, identificacion string) ([]entities.ProcesoResumen, error)
	ListByInmobiliaria(ctx context.Context, inmobiliariaID uint64) ([]entities.ProcesoResumen, error)
	FindDetalle(ctx context.Context, id uint64) (*entities.Proceso, error)
	FindSujetos(ctx context.Context, procesoID uint64) ([]entities.Sujeto, error)
	FindAbogados(ctx context.Context, procesoID uint64) ([]entities.Abogado, error)
	FindMedidas(ctx context.Context, procesoID uint64) ([]entities.MedidaCautelar, error)
	FindActuaciones(ctx context.Context, procesoID uint64, limit int) ([]entities.Actuacion, error)
	InformeByInmobiliaria(ctx context.Context, inmobiliariaID uint64) ([]entities.InformeRow, error)
}

type ProcesoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewProcesoRepository(storage *pgxpool.Pool, logger *zap.Logger) ProcesoRepositoryInterface {
	return &ProcesoRepository{storage: storage, logger: logger}
}

func (r *ProcesoRepository) queryResumen(ctx context.Context, pred sq.Sqlizer) ([]entities.ProcesoResumen, error) {
	query, args, err := psql.Select(procesoResumenColumns).
		From("procesos").
		Where(pred).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.ProcesoResumen, 0)
	for rows.Next() {
		var p entities.ProcesoResumen
		if err := rows.Scan(
			&p.ProcesoID,
			&p.DemandadoNombre, &p.DemandadoIdentificacion,
			&p.DemandanteNombre, &p.DemandanteIdentificacion,
		); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProcesoRepository) FindResumenByIdentificacion(ctx context.Context, identificacion string) ([]entities.ProcesoResumen, error) {
	return r.queryResumen(ctx, sq.Or{
		sq.Eq{"demandado_identificacion": identificacion},
		sq.Eq{"demandante_identificacion": identificacion},
	})
}

func (r *ProcesoRepository) ListByInmobiliaria(ctx context.Context, inmobiliariaID uint64) ([]entities.ProcesoResumen, error) {
	return r.queryResumen(ctx, sq.Eq{"inmobiliaria_id": inmobiliariaID})
}

func (r *ProcesoRepository) FindDetalle(ctx context.Context, id uint64) (*entities.Proceso, error) {
	query, args, err := psql.Select(
		"id", "numero_radicacion", "codigo_alterno", "clase_proceso", "etapa_procesal",
		"estado", "regional", "tema", "despacho", "despacho_origen",
		"demandado_nombre", "demandado_identificacion", "demandante_nombre", "demandante_identificacion",
		"fecha_admision_demanda", "fecha_creacion", "fecha_entrega_abogado", "fecha_recepcion_proceso",
		"ubicacion_contrato", "fecha_aceptacion_subrogacion", "fecha_presentacion_subrogacion",
		"motivo_no_subrogacion", "calificacion",
		"sentencia_primera_instancia_resultado", "sentencia_primera_instancia_fecha",
		"ciudad_inmueble", "inmobiliaria_id",
	).From("procesos").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var p entities.Proceso
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.NumeroRadicacion, &p.CodigoAlterno, &p.ClaseProceso, &p.EtapaProcesal,
		&p.Estado, &p.Regional, &p.Tema, &p.Despacho, &p.DespachoOrigen,
		&p.DemandadoNombre, &p.DemandadoIdentificacion, &p.DemandanteNombre, &p.DemandanteIdentificacion,
		&p.FechaAdmisionDemanda, &p.FechaCreacion, &p.FechaEntregaAbogado, &p.FechaRecepcionProceso,
		&p.UbicacionContrato, &p.FechaAceptacionSubrogacion, &p.FechaPresentacionSubrogacion,
		&p.MotivoNoSubrogacion, &p.Calificacion,
		&p.SentenciaPrimeraInstanciaResultado, &p.SentenciaPrimeraInstanciaFecha,
		&p.CiudadInmueble, &p.InmobiliariaID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProcesoRepository) FindSujetos(ctx context.Context, procesoID uint64) ([]entities.Sujeto, error) {
	query, args, err := psql.Select("proceso_id", "tipo", "nombre", "tipo_identificacion", "numero_identificacion").
		From("proceso_sujetos").
		Where(sq.Eq{"proceso_id": procesoID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Sujeto, 0)
	for rows.Next() {
		var s entities.Sujeto
		if err := rows.Scan(&s.ProcesoID, &s.Tipo, &s.Nombre, &s.TipoIdentificacion, &s.NumeroIdentificacion); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ProcesoRepository) FindAbogados(ctx context.Context, procesoID uint64) ([]entities.Abogado, error) {
	query, args, err := psql.Select("proceso_id", "actua_como", "nombre").
		From("proceso_abogados").
		Where(sq.Eq{"proceso_id": procesoID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Abogado, 0)
	for rows.Next() {
		var a entities.Abogado
		if err := rows.Scan(&a.ProcesoID, &a.ActuaComo, &a.Nombre); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *ProcesoRepository) FindMedidas(ctx context.Context, procesoID uint64) ([]entities.MedidaCautelar, error) {
	query, args, err := psql.Select(
		"proceso_id", "tipo_bien", "sujeto", "descripcion", "tipo_medida", "medida_efectiva",
		"avaluo_judicial", "observaciones", "identificacion_sujeto", "area", "fecha",
	).From("proceso_medidas_cautelares").
		Where(sq.Eq{"proceso_id": procesoID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.MedidaCautelar, 0)
	for rows.Next() {
		var m entities.MedidaCautelar
		if err := rows.Scan(
			&m.ProcesoID, &m.TipoBien, &m.Sujeto, &m.Descripcion, &m.TipoMedida, &m.MedidaEfectiva,
			&m.AvaluoJudicial, &m.Observaciones, &m.IdentificacionSujeto, &m.Area, &m.Fecha,
		); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *ProcesoRepository) FindActuaciones(ctx context.Context, procesoID uint64, limit int) ([]entities.Actuacion, error) {
	builder := psql.Select("proceso_id", "fecha", "observacion", "etapa", "tipo", "cuaderno").
		From("proceso_actuaciones").
		Where(sq.Eq{"proceso_id": procesoID}).
		OrderBy("fecha DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Actuacion, 0, limit)
	for rows.Next() {
		var a entities.Actuacion
		if err := rows.Scan(&a.ProcesoID, &a.Fecha, &a.Observacion, &a.Etapa, &a.Tipo, &a.Cuaderno); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *ProcesoRepository) InformeByInmobiliaria(ctx context.Context, inmobiliariaID uint64) ([]entities.InformeRow, error) {
	query, args, err := psql.Select(
		"id", "clase_proceso",
		"demandado_identificacion", "demandado_nombre",
		"demandante_identificacion", "demandante_nombre",
		"codigo_alterno", "etapa_procesal", "fecha_recepcion_proceso",
		"sentencia_primera_instancia_resultado", "despacho", "numero_radicacion", "ciudad_inmueble",
	).From("procesos").
		Where(sq.Eq{"inmobiliaria_id": inmobiliariaID}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.InformeRow, 0)
	for rows.Next() {
		var row entities.InformeRow
		if err := rows.Scan(
			&row.ProcesoID, &row.ClaseProceso,
			&row.DemandadoIdentificacion, &row.DemandadoNombre,
			&row.DemandanteIdentificacion, &row.DemandanteNombre,
			&row.CodigoAlterno, &row.EtapaProcesal, &row.FechaRecepcionProceso,
			&row.SentenciaPrimeraInstancia, &row.Despacho, &row.NumeroRadicacion, &row.CiudadInmueble,
		); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
