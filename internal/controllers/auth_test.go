package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/service"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

// stubAuthService keeps accounts and one-time tokens in memory, imitating the
// real service's flow: registered accounts start inactive and become usable
// only after their activation token comes back.
type stubAuthService struct {
	accounts         map[string]*stubAccount
	activationTokens map[string]string
	resetTokens      map[string]string
	nextID           uint64
}

type stubAccount struct {
	user     entities.User
	password string
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{
		accounts:         make(map[string]*stubAccount),
		activationTokens: make(map[string]string),
		resetTokens:      make(map[string]string),
	}
}

func (s *stubAuthService) Register(_ context.Context, payload dto.RegisterDTO) (*entities.User, string, error) {
	if _, exists := s.accounts[payload.Email]; exists {
		return nil, "", apperrors.NewConflictError("el correo ya está registrado")
	}
	s.nextID++
	account := &stubAccount{
		user: entities.User{
			ID:          s.nextID,
			Name:        payload.Name,
			Email:       payload.Email,
			Role:        string(session.RoleInmobiliaria),
			Permissions: []string{authz.ProcesosViewOwn},
			IsActive:    false,
		},
		password: payload.Password,
	}
	s.accounts[payload.Email] = account

	token := fmt.Sprintf("activacion-%d", account.user.ID)
	s.activationTokens[payload.Email] = token
	return &account.user, token, nil
}

func (s *stubAuthService) ActivateAccount(_ context.Context, payload dto.ActivateAccountDTO) error {
	stored, ok := s.activationTokens[payload.Email]
	if !ok || stored != payload.Token {
		return apperrors.NewBadRequestError("token de activación no válido o expirado")
	}
	delete(s.activationTokens, payload.Email)
	s.accounts[payload.Email].user.IsActive = true
	return nil
}

func (s *stubAuthService) Login(_ context.Context, payload dto.LoginDTO) (*session.Session, error) {
	account, ok := s.accounts[payload.Email]
	if !ok || account.password != payload.Password {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !account.user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}
	return &session.Session{
		UserID:      account.user.ID,
		Name:        account.user.Name,
		Email:       account.user.Email,
		Role:        session.Role(account.user.Role),
		Permissions: account.user.Permissions,
	}, nil
}

func (s *stubAuthService) Logout(_ context.Context, _ uint64) {}

func (s *stubAuthService) Profile(_ context.Context, userID uint64) (*session.Session, error) {
	for _, account := range s.accounts {
		if account.user.ID == userID {
			return &session.Session{
				UserID: account.user.ID,
				Name:   account.user.Name,
				Email:  account.user.Email,
				Role:   session.Role(account.user.Role),
			}, nil
		}
	}
	return nil, apperrors.ErrSessionNotFound
}

func (s *stubAuthService) RequestPasswordReset(_ context.Context, email string) (string, error) {
	if _, ok := s.accounts[email]; !ok {
		return "", nil
	}
	token := fmt.Sprintf("reset-%s", email)
	s.resetTokens[email] = token
	return token, nil
}

func (s *stubAuthService) ResetPassword(_ context.Context, payload dto.ResetPasswordDTO) error {
	stored, ok := s.resetTokens[payload.Email]
	if !ok || stored != payload.Token {
		return apperrors.NewBadRequestError("token de restablecimiento no válido o expirado")
	}
	delete(s.resetTokens, payload.Email)
	s.accounts[payload.Email].password = payload.Password
	return nil
}

type authCtrlFixture struct {
	ctrl *AuthController
	svc  *stubAuthService
	e    *echo.Echo
}

func newAuthCtrlFixture(t *testing.T) *authCtrlFixture {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	jwtSvc := service.NewJWTService("clave-de-prueba", time.Minute, time.Hour, zap.NewNop())
	svc := newStubAuthService()
	ctrl := NewAuthController(svc, jwtSvc, authz.NewNavigator(nil), zap.NewNop())
	return &authCtrlFixture{ctrl: ctrl, svc: svc, e: e}
}

func (f *authCtrlFixture) post(t *testing.T, path string, payload interface{}, handler echo.HandlerFunc) (*httptest.ResponseRecorder, utils.HttpResponse) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(raw)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(f.e.NewContext(req, rec)))

	var envelope utils.HttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestRegisterActivateLoginFlow(t *testing.T) {
	f := newAuthCtrlFixture(t)

	rec, envelope := f.post(t, "/api/auth/register", dto.RegisterDTO{
		Name:     "Laura Gómez",
		Email:    "laura@inmo.co",
		Password: "secreta1",
	}, f.ctrl.Register)
	require.Equal(t, http.StatusCreated, rec.Code)

	body, ok := envelope.Body.(map[string]interface{})
	require.True(t, ok)
	activationToken, _ := body["activationToken"].(string)
	require.NotEmpty(t, activationToken, "la respuesta de registro debe incluir el token de activación")

	// The account is unusable until it gets activated.
	rec, _ = f.post(t, "/api/auth/login", dto.LoginDTO{
		Email:    "laura@inmo.co",
		Password: "secreta1",
	}, f.ctrl.Login)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.post(t, "/api/auth/activate", dto.ActivateAccountDTO{
		Email: "laura@inmo.co",
		Token: activationToken,
	}, f.ctrl.ActivateAccount)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope = f.post(t, "/api/auth/login", dto.LoginDTO{
		Email:    "laura@inmo.co",
		Password: "secreta1",
	}, f.ctrl.Login)
	require.Equal(t, http.StatusOK, rec.Code)

	body, ok = envelope.Body.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, body["accessToken"])
	assert.Equal(t, authz.MisProcesosPath, body["defaultRoute"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refreshToken", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestPasswordResetFlowThroughHandlers(t *testing.T) {
	f := newAuthCtrlFixture(t)

	_, envelope := f.post(t, "/api/auth/register", dto.RegisterDTO{
		Name:     "Laura Gómez",
		Email:    "laura@inmo.co",
		Password: "secreta1",
	}, f.ctrl.Register)
	body := envelope.Body.(map[string]interface{})
	token := body["activationToken"].(string)
	rec, _ := f.post(t, "/api/auth/activate", dto.ActivateAccountDTO{Email: "laura@inmo.co", Token: token}, f.ctrl.ActivateAccount)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope = f.post(t, "/api/auth/request_password_reset", dto.RequestPasswordResetDTO{
		Email: "laura@inmo.co",
	}, f.ctrl.RequestPasswordReset)
	require.Equal(t, http.StatusOK, rec.Code)
	body, ok := envelope.Body.(map[string]interface{})
	require.True(t, ok)
	resetToken, _ := body["resetToken"].(string)
	require.NotEmpty(t, resetToken)

	rec, _ = f.post(t, "/api/auth/reset_password", dto.ResetPasswordDTO{
		Email:    "laura@inmo.co",
		Token:    resetToken,
		Password: "renovada2",
	}, f.ctrl.ResetPassword)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.post(t, "/api/auth/login", dto.LoginDTO{
		Email:    "laura@inmo.co",
		Password: "renovada2",
	}, f.ctrl.Login)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPasswordResetUnknownEmailRevealsNothing(t *testing.T) {
	f := newAuthCtrlFixture(t)

	rec, envelope := f.post(t, "/api/auth/request_password_reset", dto.RequestPasswordResetDTO{
		Email: "nadie@inmo.co",
	}, f.ctrl.RequestPasswordReset)
	assert.Equal(t, http.StatusOK, rec.Code)

	if body, ok := envelope.Body.(map[string]interface{}); ok {
		assert.NotContains(t, body, "resetToken")
	}
}
