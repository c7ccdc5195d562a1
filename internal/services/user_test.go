package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/pkg/types"
)

type userFixture struct {
	svc   UserServiceInterface
	users *fakeUserRepo
	store *session.Store
}

func newUserFixture(t *testing.T, users ...*entities.User) *userFixture {
	t.Helper()
	userRepo := newFakeUserRepo(users...)
	store := session.NewStore(newFakeCacheRepo(), NewProfileSource(userRepo), time.Hour, zap.NewNop())
	return &userFixture{
		svc:   NewUserService(userRepo, store, zap.NewNop()),
		users: userRepo,
		store: store,
	}
}

// login plants a live session for the user, as the auth flow would.
func (fx *userFixture) login(t *testing.T, id uint64) {
	t.Helper()
	user, err := fx.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	_, err = fx.store.Set(context.Background(), rawProfileOf(user))
	require.NoError(t, err)
}

func TestCreateUserCarriesRoleAndStartsActive(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t)

	created, err := fx.svc.CreateUser(ctx, dto.CreateUserDTO{
		Name:     "Ana Torres",
		Email:    "ana@affi.co",
		Password: "secreto1",
		Role:     string(session.RoleAffi),
	})
	require.NoError(t, err)
	assert.Equal(t, string(session.RoleAffi), created.Role)
	assert.ElementsMatch(t, []string{authz.ProcesosViewAll, authz.ReportsView}, created.Permissions)
	assert.True(t, created.IsActive)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))

	_, err := fx.svc.CreateUser(ctx, dto.CreateUserDTO{
		Name:     "Otra Laura",
		Email:    "laura@inmo.co",
		Password: "secreto1",
		Role:     string(session.RoleInmobiliaria),
	})
	assert.Error(t, err)
}

func TestGetUsersListsAll(t *testing.T) {
	fx := newUserFixture(t,
		activeUser(t, 1, "laura@inmo.co", "secreto1"),
		activeUser(t, 2, "carlos@inmo.co", "secreto1"),
	)

	list, total, err := fx.svc.GetUsers(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, list, 2)
}

func TestFindUserNotFound(t *testing.T) {
	fx := newUserFixture(t)
	_, err := fx.svc.FindUser(context.Background(), 99)
	assert.Error(t, err)
}

func TestUpdateUserAppliesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))

	updated, err := fx.svc.UpdateUser(ctx, 1, dto.UpdateUserDTO{
		Name: null.StringFrom("Laura Gómez Restrepo"),
		Nit:  null.StringFrom("900123456-7"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Laura Gómez Restrepo", updated.Name)
	assert.Equal(t, "900123456-7", updated.Nit)
	// Email was not in the payload and must survive untouched.
	assert.Equal(t, "laura@inmo.co", updated.Email)
}

func TestToggleStatusDeactivationRevokesSession(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))
	fx.login(t, 1)

	updated, err := fx.svc.ToggleStatus(ctx, 1)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Nil(t, fx.store.Get(ctx, 1))
}

func TestToggleStatusReactivationKeepsSessionAbsent(t *testing.T) {
	ctx := context.Background()
	user := activeUser(t, 1, "laura@inmo.co", "secreto1")
	user.IsActive = false
	fx := newUserFixture(t, user)

	updated, err := fx.svc.ToggleStatus(ctx, 1)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	// Reactivation does not conjure a session; the user logs in again.
	assert.Nil(t, fx.store.Get(ctx, 1))
}

func TestChangeRoleSyncsLiveSession(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))
	fx.login(t, 1)

	updated, err := fx.svc.ChangeRole(ctx, 1, string(session.RoleAffi))
	require.NoError(t, err)
	assert.Equal(t, string(session.RoleAffi), updated.Role)

	sess := fx.store.Get(ctx, 1)
	require.NotNil(t, sess)
	assert.Equal(t, session.RoleAffi, sess.Role)
}

func TestChangeRoleWithoutSessionStillPersists(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))

	_, err := fx.svc.ChangeRole(ctx, 1, string(session.RoleAdmin))
	require.NoError(t, err)

	stored, err := fx.users.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(session.RoleAdmin), stored.Role)
	assert.Nil(t, fx.store.Get(ctx, 1))
}

func TestUpdatePermissionsRejectsUnknownToken(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))

	_, err := fx.svc.UpdatePermissions(ctx, 1, []string{authz.ProcesosViewOwn, "procesos:delete"})
	require.Error(t, err)

	// Nothing was written.
	stored, _ := fx.users.FindByID(ctx, 1)
	assert.Equal(t, []string{authz.ProcesosViewOwn}, stored.Permissions)
}

func TestUpdatePermissionsSyncsLiveSession(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))
	fx.login(t, 1)

	updated, err := fx.svc.UpdatePermissions(ctx, 1, []string{authz.ProcesosViewOwn, authz.ReportsView})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{authz.ProcesosViewOwn, authz.ReportsView}, updated.Permissions)

	sess := fx.store.Get(ctx, 1)
	require.NotNil(t, sess)
	assert.Contains(t, sess.Permissions, authz.ReportsView)
}

func TestUpdatePermissionsEmptyListAllowed(t *testing.T) {
	ctx := context.Background()
	fx := newUserFixture(t, activeUser(t, 1, "laura@inmo.co", "secreto1"))

	updated, err := fx.svc.UpdatePermissions(ctx, 1, []string{})
	require.NoError(t, err)
	assert.Empty(t, updated.Permissions)
	assert.NotNil(t, updated.Permissions)
}
