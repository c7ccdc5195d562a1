package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

func sessionWith(role session.Role, inmobiliariaID uint64, perms ...string) *session.Session {
	return &session.Session{
		UserID:         7,
		Name:           "Prueba",
		Email:          "prueba@redelex.co",
		Role:           role,
		Permissions:    perms,
		InmobiliariaID: inmobiliariaID,
	}
}

func seedProcesoRepo() *fakeProcesoRepo {
	repo := newFakeProcesoRepo()
	inmoCinco := uint64(5)

	repo.porInmo[5] = []entities.ProcesoResumen{
		{ProcesoID: 100, DemandadoNombre: "Pedro Pérez", DemandadoIdentificacion: "1012345678"},
		{ProcesoID: 101, DemandadoNombre: "María López", DemandadoIdentificacion: "52987654"},
	}
	repo.resumen["1012345678"] = []entities.ProcesoResumen{
		{ProcesoID: 100, DemandadoNombre: "Pedro Pérez", DemandadoIdentificacion: "1012345678"},
	}

	clase := "Ejecutivo singular"
	repo.detalles[100] = &entities.Proceso{
		ID:              100,
		ClaseProceso:    &clase,
		DemandadoNombre: "Pedro Pérez",
		FechaCreacion:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		InmobiliariaID:  &inmoCinco,
	}
	repo.detalles[200] = &entities.Proceso{
		ID:              200,
		DemandadoNombre: "Caso Huérfano",
		FechaCreacion:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	repo.actuaciones[100] = []entities.Actuacion{
		{ProcesoID: 100, Fecha: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Tipo: "Auto", Observacion: "Auto admisorio"},
		{ProcesoID: 100, Fecha: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Tipo: "Memorial", Observacion: "Radicación demanda"},
	}
	return repo
}

func newProcesoService(repo *fakeProcesoRepo) ProcesoServiceInterface {
	return NewProcesoService(repo, zap.NewNop())
}

func TestMisProcesosListsOwnInmobiliaria(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	sess := sessionWith(session.RoleInmobiliaria, 5, authz.ProcesosViewOwn)

	list, err := svc.MisProcesos(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(100), list[0].ProcesoID)
}

func TestMisProcesosRequiresViewOwn(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	sess := sessionWith(session.RoleInmobiliaria, 5, authz.ReportsView)

	_, err := svc.MisProcesos(context.Background(), sess)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestMisProcesosUnlinkedAccountGetsEmptyList(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	sess := sessionWith(session.RoleInmobiliaria, 0, authz.ProcesosViewOwn)

	list, err := svc.MisProcesos(context.Background(), sess)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMisProcesosNilSessionDenied(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	_, err := svc.MisProcesos(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestProcesosPorIdentificacionRequiresViewAll(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())

	sess := sessionWith(session.RoleInmobiliaria, 5, authz.ProcesosViewOwn)
	_, err := svc.ProcesosPorIdentificacion(context.Background(), sess, "1012345678")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	affi := sessionWith(session.RoleAffi, 0, authz.ProcesosViewAll)
	out, err := svc.ProcesosPorIdentificacion(context.Background(), affi, "1012345678")
	require.NoError(t, err)
	assert.Equal(t, "1012345678", out.Identificacion)
	require.Len(t, out.Procesos, 1)
	assert.Equal(t, uint64(100), out.Procesos[0].ProcesoID)
}

func TestProcesosPorIdentificacionAdminOverride(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	admin := sessionWith(session.RoleAdmin, 0)

	out, err := svc.ProcesosPorIdentificacion(context.Background(), admin, "1012345678")
	require.NoError(t, err)
	assert.Len(t, out.Procesos, 1)
}

func TestProcesosPorIdentificacionEmptyArgument(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	affi := sessionWith(session.RoleAffi, 0, authz.ProcesosViewAll)

	_, err := svc.ProcesosPorIdentificacion(context.Background(), affi, "")
	assert.Error(t, err)
}

func TestProcesosPorIdentificacionNoMatches(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	affi := sessionWith(session.RoleAffi, 0, authz.ProcesosViewAll)

	out, err := svc.ProcesosPorIdentificacion(context.Background(), affi, "999999999")
	require.NoError(t, err)
	assert.Empty(t, out.Procesos)
}

func TestDetalleOwnerSeesOwnProceso(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	sess := sessionWith(session.RoleInmobiliaria, 5, authz.ProcesosViewOwn, authz.ProcesosViewDetail)

	detalle, err := svc.Detalle(context.Background(), sess, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), detalle.IDProceso)
	require.NotNil(t, detalle.ClaseProceso)
	assert.Equal(t, "Ejecutivo singular", *detalle.ClaseProceso)

	// The most recent actuación doubles as "última actuación".
	assert.Equal(t, "2024-06-10", detalle.UltimaActuacionFecha)
	require.NotNil(t, detalle.UltimaActuacionTipo)
	assert.Equal(t, "Auto", *detalle.UltimaActuacionTipo)
	assert.Len(t, detalle.ActuacionesRecientes, 2)
}

func TestDetalleDeniedForForeignProceso(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	sess := sessionWith(session.RoleInmobiliaria, 9, authz.ProcesosViewOwn, authz.ProcesosViewDetail)

	_, err := svc.Detalle(context.Background(), sess, 100)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDetalleUnassignedProcesoOnlyForViewAll(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())

	// Proceso 200 has no inmobiliaria; ownership can never match.
	sess := sessionWith(session.RoleInmobiliaria, 5, authz.ProcesosViewOwn)
	_, err := svc.Detalle(context.Background(), sess, 200)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	affi := sessionWith(session.RoleAffi, 0, authz.ProcesosViewAll)
	detalle, err := svc.Detalle(context.Background(), affi, 200)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), detalle.IDProceso)
}

func TestDetalleAdminSeesAny(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	admin := sessionWith(session.RoleAdmin, 0)

	detalle, err := svc.Detalle(context.Background(), admin, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), detalle.IDProceso)
}

func TestDetalleNilSessionUnauthorized(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	_, err := svc.Detalle(context.Background(), nil, 100)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestDetalleNotFound(t *testing.T) {
	svc := newProcesoService(seedProcesoRepo())
	admin := sessionWith(session.RoleAdmin, 0)

	_, err := svc.Detalle(context.Background(), admin, 777)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
