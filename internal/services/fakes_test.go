package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/JuanDPAffi/redelex-api/internal/entities"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/types"
)

// fakeCacheRepo is an in-memory stand-in for the Redis repository. It
// also satisfies session.Cache.
type fakeCacheRepo struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{data: make(map[string]string)}
}

func (c *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case string:
		c.data[key] = v
	default:
		c.data[key] = "locked"
	}
	return nil
}

func (c *fakeCacheRepo) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *fakeCacheRepo) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCacheRepo) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(c.data[key], 10, 64)
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *fakeCacheRepo) Expire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return true, nil
}

// fakeUserRepo keeps users in memory keyed by ID.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint64]*entities.User
	nextID uint64
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint64]*entities.User), nextID: 1}
	for _, u := range users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) clone(u *entities.User) *entities.User {
	cp := *u
	cp.Permissions = append([]string(nil), u.Permissions...)
	return &cp
}

func (r *fakeUserRepo) GetUsers(_ context.Context, _ types.Filter) ([]entities.User, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, *r.clone(u))
	}
	return list, uint64(len(list)), nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return r.clone(u), nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return r.clone(u), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, apperrors.NewConflictError("ya existe un usuario con el correo %s", user.Email)
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = r.clone(user)
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.users[user.ID] = r.clone(user)
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id uint64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.IsActive = active
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id uint64, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) UpdatePermissions(_ context.Context, id uint64, permissions []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Permissions = append([]string(nil), permissions...)
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uint64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Password = passwordHash
	return nil
}

func (r *fakeUserRepo) SetLoginAttempts(_ context.Context, id uint64, attempts int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.LoginAttempts = attempts
	return nil
}

// fakeProcesoRepo serves canned procesos.
type fakeProcesoRepo struct {
	resumen     map[string][]entities.ProcesoResumen
	porInmo     map[uint64][]entities.ProcesoResumen
	detalles    map[uint64]*entities.Proceso
	actuaciones map[uint64][]entities.Actuacion
	informes    map[uint64][]entities.InformeRow
}

func newFakeProcesoRepo() *fakeProcesoRepo {
	return &fakeProcesoRepo{
		resumen:     make(map[string][]entities.ProcesoResumen),
		porInmo:     make(map[uint64][]entities.ProcesoResumen),
		detalles:    make(map[uint64]*entities.Proceso),
		actuaciones: make(map[uint64][]entities.Actuacion),
		informes:    make(map[uint64][]entities.InformeRow),
	}
}

func (r *fakeProcesoRepo) FindResumenByIdentificacion(_ context.Context, identificacion string) ([]entities.ProcesoResumen, error) {
	return r.resumen[identificacion], nil
}

func (r *fakeProcesoRepo) ListByInmobiliaria(_ context.Context, inmobiliariaID uint64) ([]entities.ProcesoResumen, error) {
	return r.porInmo[inmobiliariaID], nil
}

func (r *fakeProcesoRepo) FindDetalle(_ context.Context, id uint64) (*entities.Proceso, error) {
	if p, ok := r.detalles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeProcesoRepo) FindSujetos(_ context.Context, _ uint64) ([]entities.Sujeto, error) {
	return nil, nil
}

func (r *fakeProcesoRepo) FindAbogados(_ context.Context, _ uint64) ([]entities.Abogado, error) {
	return nil, nil
}

func (r *fakeProcesoRepo) FindMedidas(_ context.Context, _ uint64) ([]entities.MedidaCautelar, error) {
	return nil, nil
}

func (r *fakeProcesoRepo) FindActuaciones(_ context.Context, procesoID uint64, limit int) ([]entities.Actuacion, error) {
	list := r.actuaciones[procesoID]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeProcesoRepo) InformeByInmobiliaria(_ context.Context, inmobiliariaID uint64) ([]entities.InformeRow, error) {
	return r.informes[inmobiliariaID], nil
}

// fakeInmoRepo implements the inmobiliaria repository over a map keyed by
// NIT, which is what the importer upserts on.
type fakeInmoRepo struct {
	mu     sync.Mutex
	byNit  map[string]*entities.Inmobiliaria
	nextID uint64
}

func newFakeInmoRepo() *fakeInmoRepo {
	return &fakeInmoRepo{byNit: make(map[string]*entities.Inmobiliaria), nextID: 1}
}

func (r *fakeInmoRepo) GetInmobiliarias(_ context.Context, _ types.Filter) ([]entities.Inmobiliaria, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.Inmobiliaria, 0, len(r.byNit))
	for _, m := range r.byNit {
		list = append(list, *m)
	}
	return list, uint64(len(list)), nil
}

func (r *fakeInmoRepo) FindByID(_ context.Context, id uint64) (*entities.Inmobiliaria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.byNit {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeInmoRepo) FindByNit(_ context.Context, nit string) (*entities.Inmobiliaria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.byNit[nit]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeInmoRepo) Create(_ context.Context, inmo *entities.Inmobiliaria) (*entities.Inmobiliaria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byNit[inmo.Nit]; ok {
		return nil, apperrors.NewConflictError("ya existe una inmobiliaria con NIT %s", inmo.Nit)
	}
	inmo.ID = r.nextID
	r.nextID++
	cp := *inmo
	r.byNit[inmo.Nit] = &cp
	return inmo, nil
}

func (r *fakeInmoRepo) Update(_ context.Context, inmo *entities.Inmobiliaria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for nit, m := range r.byNit {
		if m.ID == inmo.ID {
			delete(r.byNit, nit)
			cp := *inmo
			r.byNit[inmo.Nit] = &cp
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeInmoRepo) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for nit, m := range r.byNit {
		if m.ID == id {
			delete(r.byNit, nit)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeInmoRepo) Upsert(_ context.Context, inmo *entities.Inmobiliaria) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byNit[inmo.Nit]; ok {
		inmo.ID = existing.ID
		cp := *inmo
		r.byNit[inmo.Nit] = &cp
		return false, nil
	}
	inmo.ID = r.nextID
	r.nextID++
	cp := *inmo
	r.byNit[inmo.Nit] = &cp
	return true, nil
}
