package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

const actuacionesRecientesLimit = 10

type ProcesoServiceInterface interface {
	MisProcesos(ctx context.Context, sess *session.Session) ([]dto.ProcesoResumenDTO, error)
	ProcesosPorIdentificacion(ctx context.Context, sess *session.Session, identificacion string) (*dto.ProcesosPorIdentificacionDTO, error)
	Detalle(ctx context.Context, sess *session.Session, procesoID uint64) (*dto.ProcesoDetalleDTO, error)
}

type ProcesoService struct {
	procesoRepo repositories.ProcesoRepositoryInterface
	logger      *zap.Logger
}

func NewProcesoService(procesoRepo repositories.ProcesoRepositoryInterface, logger *zap.Logger) ProcesoServiceInterface {
	return &ProcesoService{procesoRepo: procesoRepo, logger: logger}
}

func toResumenDTOs(list []entities.ProcesoResumen) []dto.ProcesoResumenDTO {
	dtos := make([]dto.ProcesoResumenDTO, len(list))
	for i, p := range list {
		dtos[i] = dto.ProcesoResumenDTO{
			ProcesoID:                p.ProcesoID,
			DemandadoNombre:          p.DemandadoNombre,
			DemandadoIdentificacion:  p.DemandadoIdentificacion,
			DemandanteNombre:         p.DemandanteNombre,
			DemandanteIdentificacion: p.DemandanteIdentificacion,
		}
	}
	return dtos
}

// MisProcesos lists the procesos belonging to the caller's inmobiliaria.
func (s *ProcesoService) MisProcesos(ctx context.Context, sess *session.Session) ([]dto.ProcesoResumenDTO, error) {
	if !authz.HasPermission(sess, authz.ProcesosViewOwn) {
		return nil, apperrors.ErrForbidden
	}
	if sess.InmobiliariaID == 0 {
		// Account not linked to an inmobiliaria yet: an empty list, not
		// an error.
		return []dto.ProcesoResumenDTO{}, nil
	}

	list, err := s.procesoRepo.ListByInmobiliaria(ctx, sess.InmobiliariaID)
	if err != nil {
		return nil, err
	}
	return toResumenDTOs(list), nil
}

func (s *ProcesoService) ProcesosPorIdentificacion(ctx context.Context, sess *session.Session, identificacion string) (*dto.ProcesosPorIdentificacionDTO, error) {
	if !authz.HasPermission(sess, authz.ProcesosViewAll) {
		return nil, apperrors.ErrForbidden
	}
	if identificacion == "" {
		return nil, apperrors.NewBadRequestError("identificación requerida")
	}

	list, err := s.procesoRepo.FindResumenByIdentificacion(ctx, identificacion)
	if err != nil {
		return nil, err
	}
	return &dto.ProcesosPorIdentificacionDTO{
		Identificacion: identificacion,
		Procesos:       toResumenDTOs(list),
	}, nil
}

// Detalle returns a full case record. Holders of the global permission see
// any proceso; everyone else only their own inmobiliaria's.
func (s *ProcesoService) Detalle(ctx context.Context, sess *session.Session, procesoID uint64) (*dto.ProcesoDetalleDTO, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	p, err := s.procesoRepo.FindDetalle(ctx, procesoID)
	if err != nil {
		return nil, err
	}

	if !authz.HasPermission(sess, authz.ProcesosViewAll) {
		owned := p.InmobiliariaID != nil && *p.InmobiliariaID == sess.InmobiliariaID && sess.InmobiliariaID != 0
		if !owned {
			s.logger.Warn("acceso a proceso ajeno denegado",
				zap.Uint64("userID", sess.UserID), zap.Uint64("procesoID", procesoID))
			return nil, apperrors.ErrForbidden
		}
	}

	sujetos, err := s.procesoRepo.FindSujetos(ctx, procesoID)
	if err != nil {
		return nil, err
	}
	abogados, err := s.procesoRepo.FindAbogados(ctx, procesoID)
	if err != nil {
		return nil, err
	}
	medidas, err := s.procesoRepo.FindMedidas(ctx, procesoID)
	if err != nil {
		return nil, err
	}
	actuaciones, err := s.procesoRepo.FindActuaciones(ctx, procesoID, actuacionesRecientesLimit)
	if err != nil {
		return nil, err
	}

	return buildDetalleDTO(p, sujetos, abogados, medidas, actuaciones), nil
}

func buildDetalleDTO(
	p *entities.Proceso,
	sujetos []entities.Sujeto,
	abogados []entities.Abogado,
	medidas []entities.MedidaCautelar,
	actuaciones []entities.Actuacion,
) *dto.ProcesoDetalleDTO {
	medidaDTOs := make([]dto.MedidaCautelarDTO, len(medidas))
	for i, m := range medidas {
		var fecha *string
		if m.Fecha != nil {
			f := dto.FormatFecha(m.Fecha)
			fecha = &f
		}
		medidaDTOs[i] = dto.MedidaCautelarDTO{
			TipoBien:             m.TipoBien,
			Sujeto:               m.Sujeto,
			Descripcion:          m.Descripcion,
			TipoMedida:           m.TipoMedida,
			MedidaEfectiva:       m.MedidaEfectiva,
			AvaluoJudicial:       m.AvaluoJudicial,
			Observaciones:        m.Observaciones,
			IdentificacionSujeto: m.IdentificacionSujeto,
			Area:                 m.Area,
			Fecha:                fecha,
		}
	}

	actuacionDTOs := make([]dto.ActuacionDTO, len(actuaciones))
	for i, a := range actuaciones {
		actuacionDTOs[i] = dto.ActuacionDTO{
			Fecha:       a.Fecha.Format("2006-01-02"),
			Observacion: a.Observacion,
			Etapa:       a.Etapa,
			Tipo:        a.Tipo,
			Cuaderno:    a.Cuaderno,
		}
	}

	out := &dto.ProcesoDetalleDTO{
		IDProceso:                          p.ID,
		NumeroRadicacion:                   p.NumeroRadicacion,
		CodigoAlterno:                      p.CodigoAlterno,
		ClaseProceso:                       p.ClaseProceso,
		EtapaProcesal:                      p.EtapaProcesal,
		Estado:                             p.Estado,
		Regional:                           p.Regional,
		Tema:                               p.Tema,
		Despacho:                           p.Despacho,
		DespachoOrigen:                     p.DespachoOrigen,
		Sujetos:                            sujetos,
		Abogados:                           abogados,
		MedidasCautelares:                  medidaDTOs,
		FechaAdmisionDemanda:               dto.FormatFecha(p.FechaAdmisionDemanda),
		FechaCreacion:                      p.FechaCreacion.Format("2006-01-02"),
		FechaEntregaAbogado:                dto.FormatFecha(p.FechaEntregaAbogado),
		FechaRecepcionProceso:              dto.FormatFecha(p.FechaRecepcionProceso),
		UbicacionContrato:                  p.UbicacionContrato,
		FechaAceptacionSubrogacion:         dto.FormatFecha(p.FechaAceptacionSubrogacion),
		FechaPresentacionSubrogacion:       dto.FormatFecha(p.FechaPresentacionSubrogacion),
		MotivoNoSubrogacion:                p.MotivoNoSubrogacion,
		Calificacion:                       p.Calificacion,
		SentenciaPrimeraInstanciaResultado: p.SentenciaPrimeraInstanciaResultado,
		ActuacionesRecientes:               actuacionDTOs,
	}
	if p.SentenciaPrimeraInstanciaFecha != nil {
		f := dto.FormatFecha(p.SentenciaPrimeraInstanciaFecha)
		out.SentenciaPrimeraInstanciaFecha = &f
	}
	if len(actuaciones) > 0 {
		last := actuaciones[0]
		out.UltimaActuacionFecha = last.Fecha.Format("2006-01-02")
		out.UltimaActuacionTipo = &last.Tipo
		out.UltimaActuacionObservacion = &last.Observacion
	}
	return out
}
