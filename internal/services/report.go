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

type ReportServiceInterface interface {
	InformeInmobiliaria(ctx context.Context, sess *session.Session, inmobiliariaID uint64) ([]dto.InformeRowDTO, error)
	InformeForExport(ctx context.Context, sess *session.Session, inmobiliariaID uint64) ([]entities.InformeRow, error)
}

type ReportService struct {
	procesoRepo repositories.ProcesoRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(procesoRepo repositories.ProcesoRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{procesoRepo: procesoRepo, logger: logger}
}

// getAndAuthorizeInforme centralizes the report access rules: the caller
// needs the base view permission, and unless they can see every proceso
// they are pinned to their own inmobiliaria.
func (s *ReportService) getAndAuthorizeInforme(ctx context.Context, sess *session.Session, inmobiliariaID uint64, export bool) ([]entities.InformeRow, error) {
	if !authz.HasPermission(sess, authz.ReportsView) {
		return nil, apperrors.ErrForbidden
	}
	if export && !authz.HasPermission(sess, authz.ReportsExport) {
		return nil, apperrors.ErrForbidden
	}
	if !authz.HasPermission(sess, authz.ProcesosViewAll) && sess.InmobiliariaID != inmobiliariaID {
		s.logger.Warn("informe de inmobiliaria ajena denegado",
			zap.Uint64("userID", sess.UserID),
			zap.Uint64("inmobiliariaID", inmobiliariaID))
		return nil, apperrors.ErrForbidden
	}

	return s.procesoRepo.InformeByInmobiliaria(ctx, inmobiliariaID)
}

func (s *ReportService) InformeInmobiliaria(ctx context.Context, sess *session.Session, inmobiliariaID uint64) ([]dto.InformeRowDTO, error) {
	rows, err := s.getAndAuthorizeInforme(ctx, sess, inmobiliariaID, false)
	if err != nil {
		return nil, err
	}

	nullStr := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}

	dtos := make([]dto.InformeRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = dto.InformeRowDTO{
			IDProceso:                 r.ProcesoID,
			ClaseProceso:              nullStr(r.ClaseProceso),
			DemandadoIdentificacion:   r.DemandadoIdentificacion,
			DemandadoNombre:           r.DemandadoNombre,
			DemandanteIdentificacion:  r.DemandanteIdentificacion,
			DemandanteNombre:          r.DemandanteNombre,
			CodigoAlterno:             nullStr(r.CodigoAlterno),
			EtapaProcesal:             nullStr(r.EtapaProcesal),
			FechaRecepcionProceso:     dto.FormatFecha(r.FechaRecepcionProceso),
			SentenciaPrimeraInstancia: nullStr(r.SentenciaPrimeraInstancia),
			Despacho:                  nullStr(r.Despacho),
			NumeroRadicacion:          nullStr(r.NumeroRadicacion),
			CiudadInmueble:            r.CiudadInmueble,
		}
	}
	return dtos, nil
}

func (s *ReportService) InformeForExport(ctx context.Context, sess *session.Session, inmobiliariaID uint64) ([]entities.InformeRow, error) {
	return s.getAndAuthorizeInforme(ctx, sess, inmobiliariaID, true)
}
