package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	"github.com/JuanDPAffi/redelex-api/pkg/types"
)

type InmobiliariaServiceInterface interface {
	GetInmobiliarias(ctx context.Context, filter types.Filter) ([]dto.InmobiliariaDTO, uint64, error)
	FindInmobiliaria(ctx context.Context, id uint64) (*dto.InmobiliariaDTO, error)
	CreateInmobiliaria(ctx context.Context, payload dto.CreateInmobiliariaDTO) (*dto.InmobiliariaDTO, error)
	UpdateInmobiliaria(ctx context.Context, id uint64, payload dto.UpdateInmobiliariaDTO) (*dto.InmobiliariaDTO, error)
	DeleteInmobiliaria(ctx context.Context, id uint64) error
	ListForExport(ctx context.Context, search string) ([]entities.Inmobiliaria, error)
}

type InmobiliariaService struct {
	inmoRepo repositories.InmobiliariaRepositoryInterface
	logger   *zap.Logger
}

func NewInmobiliariaService(inmoRepo repositories.InmobiliariaRepositoryInterface, logger *zap.Logger) InmobiliariaServiceInterface {
	return &InmobiliariaService{inmoRepo: inmoRepo, logger: logger}
}

func strOrEmpty(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toInmobiliariaDTO(m *entities.Inmobiliaria) *dto.InmobiliariaDTO {
	return &dto.InmobiliariaDTO{
		ID:        m.ID,
		Nombre:    m.Nombre,
		Nit:       m.Nit,
		Codigo:    m.Codigo,
		Email:     strOrEmpty(m.Email),
		Telefono:  strOrEmpty(m.Telefono),
		Ciudad:    strOrEmpty(m.Ciudad),
		Direccion: strOrEmpty(m.Direccion),
		IsActive:  m.IsActive,
	}
}

func (s *InmobiliariaService) GetInmobiliarias(ctx context.Context, filter types.Filter) ([]dto.InmobiliariaDTO, uint64, error) {
	list, total, err := s.inmoRepo.GetInmobiliarias(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.InmobiliariaDTO, len(list))
	for i := range list {
		dtos[i] = *toInmobiliariaDTO(&list[i])
	}
	return dtos, total, nil
}

func (s *InmobiliariaService) FindInmobiliaria(ctx context.Context, id uint64) (*dto.InmobiliariaDTO, error) {
	m, err := s.inmoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInmobiliariaDTO(m), nil
}

func (s *InmobiliariaService) CreateInmobiliaria(ctx context.Context, payload dto.CreateInmobiliariaDTO) (*dto.InmobiliariaDTO, error) {
	inmo := &entities.Inmobiliaria{
		Nombre:    payload.Nombre,
		Nit:       payload.Nit,
		Codigo:    payload.Codigo,
		Email:     strOrNil(payload.Email),
		Telefono:  strOrNil(payload.Telefono),
		Ciudad:    strOrNil(payload.Ciudad),
		Direccion: strOrNil(payload.Direccion),
		IsActive:  true,
	}

	created, err := s.inmoRepo.Create(ctx, inmo)
	if err != nil {
		return nil, err
	}
	s.logger.Info("inmobiliaria creada", zap.Uint64("id", created.ID), zap.String("nit", created.Nit))
	return toInmobiliariaDTO(created), nil
}

func (s *InmobiliariaService) UpdateInmobiliaria(ctx context.Context, id uint64, payload dto.UpdateInmobiliariaDTO) (*dto.InmobiliariaDTO, error) {
	inmo, err := s.inmoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Nombre.Valid {
		inmo.Nombre = payload.Nombre.String
	}
	if payload.Nit.Valid {
		inmo.Nit = payload.Nit.String
	}
	if payload.Codigo.Valid {
		inmo.Codigo = payload.Codigo.String
	}
	if payload.Email.Valid {
		inmo.Email = strOrNil(payload.Email.String)
	}
	if payload.Telefono.Valid {
		inmo.Telefono = strOrNil(payload.Telefono.String)
	}
	if payload.Ciudad.Valid {
		inmo.Ciudad = strOrNil(payload.Ciudad.String)
	}
	if payload.Direccion.Valid {
		inmo.Direccion = strOrNil(payload.Direccion.String)
	}
	if payload.IsActive.Valid {
		inmo.IsActive = payload.IsActive.Bool
	}

	if err := s.inmoRepo.Update(ctx, inmo); err != nil {
		return nil, err
	}
	return toInmobiliariaDTO(inmo), nil
}

func (s *InmobiliariaService) DeleteInmobiliaria(ctx context.Context, id uint64) error {
	if err := s.inmoRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("inmobiliaria eliminada", zap.Uint64("id", id))
	return nil
}

// ListForExport returns every matching row without pagination.
func (s *InmobiliariaService) ListForExport(ctx context.Context, search string) ([]entities.Inmobiliaria, error) {
	list, _, err := s.inmoRepo.GetInmobiliarias(ctx, types.Filter{Search: search})
	return list, err
}
