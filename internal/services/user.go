package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/types"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	ToggleStatus(ctx context.Context, id uint64) (*dto.UserDTO, error)
	ChangeRole(ctx context.Context, id uint64, role string) (*dto.UserDTO, error)
	UpdatePermissions(ctx context.Context, id uint64, permissions []string) (*dto.UserDTO, error)
}

type UserService struct {
	userRepo     repositories.UserRepositoryInterface
	sessionStore *session.Store
	logger       *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	sessionStore *session.Store,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{userRepo: userRepo, sessionStore: sessionStore, logger: logger}
}

func toUserDTO(u *entities.User) *dto.UserDTO {
	out := &dto.UserDTO{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Permissions:   u.Permissions,
		IsActive:      u.IsActive,
		LoginAttempts: u.LoginAttempts,
	}
	if out.Permissions == nil {
		out.Permissions = []string{}
	}
	if u.NombreInmobiliaria != nil {
		out.NombreInmobiliaria = *u.NombreInmobiliaria
	}
	if u.Nit != nil {
		out.Nit = *u.Nit
	}
	if u.CodigoInmobiliaria != nil {
		out.CodigoInmobiliaria = *u.CodigoInmobiliaria
	}
	if u.CreatedAt != nil {
		out.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	return out
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]dto.UserDTO, len(users))
	for i := range users {
		dtos[i] = *toUserDTO(&users[i])
	}
	return dtos, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

// CreateUser is the operator-side account creation: the role comes from
// the payload and the account starts active, since an operator made it on
// purpose. The public register flow never reaches this path.
func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:        payload.Name,
		Email:       payload.Email,
		Password:    hash,
		Role:        payload.Role,
		Permissions: defaultPermissionsFor(payload.Role),
		IsActive:    true,
	}
	if payload.Nit != "" {
		user.Nit = &payload.Nit
	}
	if payload.CodigoInmobiliaria != "" {
		user.CodigoInmobiliaria = &payload.CodigoInmobiliaria
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("usuario creado por operador",
		zap.Uint64("userID", created.ID), zap.String("role", created.Role))
	return toUserDTO(created), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name.Valid {
		user.Name = payload.Name.String
	}
	if payload.Email.Valid {
		user.Email = payload.Email.String
	}
	if payload.NombreInmobiliaria.Valid {
		user.NombreInmobiliaria = &payload.NombreInmobiliaria.String
	}
	if payload.Nit.Valid {
		user.Nit = &payload.Nit.String
	}
	if payload.CodigoInmobiliaria.Valid {
		user.CodigoInmobiliaria = &payload.CodigoInmobiliaria.String
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.syncSession(ctx, id)
	return toUserDTO(user), nil
}

func (s *UserService) ToggleStatus(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newState := !user.IsActive
	if err := s.userRepo.SetActive(ctx, id, newState); err != nil {
		return nil, err
	}
	user.IsActive = newState

	// Deactivation revokes the live session immediately; the next request
	// with a still-valid token gets a 401 from the auth middleware.
	if !newState {
		s.sessionStore.Clear(ctx, id)
	}

	s.logger.Info("estado de usuario cambiado",
		zap.Uint64("userID", id), zap.Bool("isActive", newState))
	return toUserDTO(user), nil
}

func (s *UserService) ChangeRole(ctx context.Context, id uint64, role string) (*dto.UserDTO, error) {
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	s.syncSession(ctx, id)

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("rol cambiado", zap.Uint64("userID", id), zap.String("role", role))
	return toUserDTO(user), nil
}

func (s *UserService) UpdatePermissions(ctx context.Context, id uint64, permissions []string) (*dto.UserDTO, error) {
	for _, p := range permissions {
		if !authz.IsKnownPermission(p) {
			return nil, apperrors.NewBadRequestError("permiso desconocido: %s", p)
		}
	}

	if err := s.userRepo.UpdatePermissions(ctx, id, permissions); err != nil {
		return nil, err
	}
	s.syncSession(ctx, id)

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

// syncSession pushes role/permission changes into an active session so the
// user's next profile read sees them. Best effort: a user without a live
// session simply has nothing to refresh.
func (s *UserService) syncSession(ctx context.Context, userID uint64) {
	if s.sessionStore.Get(ctx, userID) == nil {
		return
	}
	if _, err := s.sessionStore.Refresh(ctx, userID); err != nil {
		s.logger.Warn("no se pudo refrescar la sesión tras el cambio",
			zap.Uint64("userID", userID), zap.Error(err))
	}
}
