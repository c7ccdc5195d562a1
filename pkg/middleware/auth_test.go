package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	"github.com/JuanDPAffi/redelex-api/pkg/contextkeys"
	"github.com/JuanDPAffi/redelex-api/pkg/service"
)

type memCache struct {
	data map[string]string
}

func (c *memCache) Get(_ context.Context, key string) (string, error) { return c.data[key], nil }

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s, ok := value.(string); ok {
		c.data[key] = s
	}
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type staticSource struct {
	profile session.RawProfile
}

func (s *staticSource) LoadProfile(_ context.Context, _ uint64) (session.RawProfile, error) {
	return s.profile, nil
}

func newAuthnFixture(t *testing.T) (service.JWTService, *session.Store) {
	t.Helper()
	jwtSvc := service.NewJWTService("clave-de-prueba", time.Minute, time.Hour, zap.NewNop())
	source := &staticSource{profile: session.RawProfile{
		ID:          42,
		Name:        "Laura Gómez",
		Email:       "laura@inmo.co",
		Role:        string(session.RoleInmobiliaria),
		Permissions: []string{authz.ProcesosViewOwn},
	}}
	store := session.NewStore(&memCache{data: make(map[string]string)}, source, time.Hour, zap.NewNop())
	return jwtSvc, store
}

func runAuth(t *testing.T, jwtSvc service.JWTService, store *session.Store, header string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	mw := NewAuthMiddleware(jwtSvc, store, zap.NewNop())

	handler := mw.Auth(func(c echo.Context) error {
		sess, err := session.FromContext(c.Request().Context())
		require.NoError(t, err)
		return c.JSON(http.StatusOK, map[string]uint64{"userId": sess.UserID})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/redelex/mis-procesos", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)
	return rec
}

func TestAuthPassesValidTokenWithSession(t *testing.T) {
	jwtSvc, store := newAuthnFixture(t)
	_, err := store.Refresh(context.Background(), 42)
	require.NoError(t, err)

	access, _, err := jwtSvc.GenerateTokens(42)
	require.NoError(t, err)

	rec := runAuth(t, jwtSvc, store, "Bearer "+access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
}

func TestAuthRejectsMissingAndMalformedHeader(t *testing.T) {
	jwtSvc, store := newAuthnFixture(t)

	assert.Equal(t, http.StatusUnauthorized, runAuth(t, jwtSvc, store, "").Code)
	assert.Equal(t, http.StatusUnauthorized, runAuth(t, jwtSvc, store, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, runAuth(t, jwtSvc, store, "Bearer").Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	jwtSvc, store := newAuthnFixture(t)
	rec := runAuth(t, jwtSvc, store, "Bearer no.es.un.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsRefreshTokenForAPIAccess(t *testing.T) {
	jwtSvc, store := newAuthnFixture(t)
	_, err := store.Refresh(context.Background(), 42)
	require.NoError(t, err)

	_, refresh, err := jwtSvc.GenerateTokens(42)
	require.NoError(t, err)

	rec := runAuth(t, jwtSvc, store, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsValidTokenAfterLogout(t *testing.T) {
	jwtSvc, store := newAuthnFixture(t)
	ctx := context.Background()
	_, err := store.Refresh(ctx, 42)
	require.NoError(t, err)

	access, _, err := jwtSvc.GenerateTokens(42)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, runAuth(t, jwtSvc, store, "Bearer "+access).Code)

	store.Clear(ctx, 42)
	rec := runAuth(t, jwtSvc, store, "Bearer "+access)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func guardedRequest(t *testing.T, sess *session.Session, mwFunc echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	handler := mwFunc(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	if sess != nil {
		ctx := context.WithValue(req.Context(), contextkeys.SessionKey, sess)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)
	return rec
}

func TestRequirePermissionAllowsHolder(t *testing.T) {
	guard := NewGuardMiddleware(authz.NewNavigator(nil), zap.NewNop())
	sess := &session.Session{
		UserID:      7,
		Role:        session.RoleAffi,
		Permissions: []string{authz.UsersView},
	}

	rec := guardedRequest(t, sess, guard.RequirePermission(authz.UsersView, authz.UsersManage))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermissionDeniesWithRedirect(t *testing.T) {
	guard := NewGuardMiddleware(authz.NewNavigator(nil), zap.NewNop())
	sess := &session.Session{
		UserID:         7,
		Role:           session.RoleInmobiliaria,
		Permissions:    []string{authz.ProcesosViewOwn},
		InmobiliariaID: 5,
	}

	rec := guardedRequest(t, sess, guard.RequirePermission(authz.UsersManage))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body struct {
		Status bool              `json:"status"`
		Body   map[string]string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, authz.MisProcesosPath, body.Body["redirectTo"])
}

func TestRequirePermissionAdminOverride(t *testing.T) {
	guard := NewGuardMiddleware(authz.NewNavigator(nil), zap.NewNop())
	sess := &session.Session{UserID: 1, Role: session.RoleAdmin}

	rec := guardedRequest(t, sess, guard.RequirePermission(authz.UsersManage))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermissionWithoutSessionIs401(t *testing.T) {
	guard := NewGuardMiddleware(authz.NewNavigator(nil), zap.NewNop())
	rec := guardedRequest(t, nil, guard.RequirePermission(authz.UsersView))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	guard := NewGuardMiddleware(authz.NewNavigator(nil), zap.NewNop())

	affi := &session.Session{UserID: 7, Role: session.RoleAffi}
	assert.Equal(t, http.StatusOK, guardedRequest(t, affi, guard.RequireRole(session.RoleAffi)).Code)

	inmo := &session.Session{UserID: 8, Role: session.RoleInmobiliaria, Permissions: []string{authz.ProcesosViewOwn}}
	assert.Equal(t, http.StatusForbidden, guardedRequest(t, inmo, guard.RequireRole(session.RoleAffi)).Code)
}
