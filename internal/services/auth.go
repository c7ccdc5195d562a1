package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	"github.com/JuanDPAffi/redelex-api/pkg/config"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*session.Session, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, string, error)
	Logout(ctx context.Context, userID uint64)
	Profile(ctx context.Context, userID uint64) (*session.Session, error)
	ActivateAccount(ctx context.Context, payload dto.ActivateAccountDTO) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, payload dto.ResetPasswordDTO) error
}

type AuthService struct {
	userRepo     repositories.UserRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	sessionStore *session.Store
	cfg          config.AuthConfig
	logger       *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	sessionStore *session.Store,
	cfg config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:     userRepo,
		cacheRepo:    cacheRepo,
		sessionStore: sessionStore,
		cfg:          cfg,
		logger:       logger,
	}
}

func rawProfileOf(user *entities.User) session.RawProfile {
	var inmoID uint64
	if user.InmobiliariaID != nil {
		inmoID = *user.InmobiliariaID
	}
	return session.RawProfile{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Permissions:    user.Permissions,
		InmobiliariaID: inmoID,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*session.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		// Same answer for unknown account and wrong password.
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkLockout(ctx, user.ID); err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, user)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.resetLoginAttempts(ctx, user)

	sess, err := s.sessionStore.Set(ctx, rawProfileOf(user))
	if err != nil {
		return nil, err
	}
	s.logger.Info("inicio de sesión",
		zap.Uint64("userID", user.ID), zap.String("role", user.Role))
	return sess, nil
}

// Register creates a self-service account. The role is not caller-chosen:
// every account created here is an inmobiliaria.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, string, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, "", err
	}

	role := string(session.RoleInmobiliaria)

	user := &entities.User{
		Name:        payload.Name,
		Email:       payload.Email,
		Password:    hash,
		Role:        role,
		Permissions: defaultPermissionsFor(role),
		// Accounts start inactive; activation happens via emailed token.
		IsActive: false,
	}
	if payload.Nit != "" {
		user.Nit = &payload.Nit
	}
	if payload.CodigoInmobiliaria != "" {
		user.CodigoInmobiliaria = &payload.CodigoInmobiliaria
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token := uuid.NewString()
	key := fmt.Sprintf("activation:%s", created.Email)
	if err := s.cacheRepo.Set(ctx, key, token, s.cfg.ActivationTokenTTL); err != nil {
		return nil, "", err
	}

	s.logger.Info("cuenta registrada", zap.Uint64("userID", created.ID), zap.String("role", role))
	return created, token, nil
}

// defaultPermissionsFor mirrors the backend's seeding: an inmobiliaria can
// see its own procesos, an affi gets the global search and reporting.
func defaultPermissionsFor(role string) []string {
	switch session.Role(role) {
	case session.RoleAffi:
		return []string{authz.ProcesosViewAll, authz.ReportsView}
	case session.RoleInmobiliaria:
		return []string{authz.ProcesosViewOwn}
	default:
		return []string{}
	}
}

// Logout clears the server-side session. It never fails from the caller's
// perspective; cache errors are logged inside the store.
func (s *AuthService) Logout(ctx context.Context, userID uint64) {
	s.sessionStore.Clear(ctx, userID)
	s.logger.Info("cierre de sesión", zap.Uint64("userID", userID))
}

// Profile refreshes the session from the system of record so role and
// permission changes made after login are picked up.
func (s *AuthService) Profile(ctx context.Context, userID uint64) (*session.Session, error) {
	sess, err := s.sessionStore.Refresh(ctx, userID)
	if err != nil {
		// Stale-but-present beats failing the shell: fall back to the
		// cached session when the refresh could not complete.
		if cached := s.sessionStore.Get(ctx, userID); cached != nil {
			return cached, nil
		}
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) ActivateAccount(ctx context.Context, payload dto.ActivateAccountDTO) error {
	key := fmt.Sprintf("activation:%s", payload.Email)
	stored, err := s.cacheRepo.Get(ctx, key)
	if err != nil || stored == "" || stored != payload.Token {
		return apperrors.NewBadRequestError("token de activación no válido o expirado")
	}

	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		return apperrors.ErrNotFound
	}
	if err := s.userRepo.SetActive(ctx, user.ID, true); err != nil {
		return err
	}
	_ = s.cacheRepo.Del(ctx, key)
	return nil
}

// RequestPasswordReset returns the one-time token so the caller can hand
// it to the mailer. Unknown emails produce no error, to avoid account
// enumeration.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return "", nil
	}
	token := uuid.NewString()
	key := fmt.Sprintf("password_reset:%s", email)
	if err := s.cacheRepo.Set(ctx, key, token, s.cfg.ResetTokenTTL); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, payload dto.ResetPasswordDTO) error {
	key := fmt.Sprintf("password_reset:%s", payload.Email)
	stored, err := s.cacheRepo.Get(ctx, key)
	if err != nil || stored == "" || stored != payload.Token {
		return apperrors.NewBadRequestError("token de restablecimiento no válido o expirado")
	}

	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		return apperrors.ErrNotFound
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	_ = s.cacheRepo.Del(ctx, key)
	s.resetLoginAttempts(ctx, user)
	return nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID uint64) error {
	lockoutKey := fmt.Sprintf("lockout:%d", userID)
	if val, _ := s.cacheRepo.Get(ctx, lockoutKey); val != "" {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, user *entities.User) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", user.ID)
	attempts, _ := s.cacheRepo.Incr(ctx, attemptsKey)
	_, _ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	_ = s.userRepo.SetLoginAttempts(ctx, user.ID, int(attempts))

	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf("lockout:%d", user.ID)
		_ = s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, attemptsKey)
		s.logger.Warn("cuenta bloqueada por intentos fallidos", zap.Uint64("userID", user.ID))
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, user *entities.User) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", user.ID)
	lockoutKey := fmt.Sprintf("lockout:%d", user.ID)
	_ = s.cacheRepo.Del(ctx, attemptsKey, lockoutKey)
	if user.LoginAttempts != 0 {
		_ = s.userRepo.SetLoginAttempts(ctx, user.ID, 0)
	}
}
