package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/entities"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/types"
)

var inmobiliariaColumns = []string{
	"id", "nombre", "nit", "codigo", "email", "telefono", "ciudad", "direccion",
	"is_active", "created_at", "updated_at", "deleted_at",
}

type InmobiliariaRepositoryInterface interface {
	GetInmobiliarias(ctx context.Context, filter types.Filter) ([]entities.Inmobiliaria, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Inmobiliaria, error)
	FindByNit(ctx context.Context, nit string) (*entities.Inmobiliaria, error)
	Create(ctx context.Context, inmo *entities.Inmobiliaria) (*entities.Inmobiliaria, error)
	Update(ctx context.Context, inmo *entities.Inmobiliaria) error
	Delete(ctx context.Context, id uint64) error
	// Upsert inserts or updates by NIT, used by the spreadsheet import.
	// The bool result reports whether a new row was created.
	Upsert(ctx context.Context, inmo *entities.Inmobiliaria) (bool, error)
}

type InmobiliariaRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInmobiliariaRepository(storage *pgxpool.Pool, logger *zap.Logger) InmobiliariaRepositoryInterface {
	return &InmobiliariaRepository{storage: storage, logger: logger}
}

func scanInmobiliaria(row pgx.Row) (*entities.Inmobiliaria, error) {
	var m entities.Inmobiliaria
	err := row.Scan(
		&m.ID, &m.Nombre, &m.Nit, &m.Codigo, &m.Email, &m.Telefono, &m.Ciudad, &m.Direccion,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *InmobiliariaRepository) GetInmobiliarias(ctx context.Context, filter types.Filter) ([]entities.Inmobiliaria, uint64, error) {
	base := psql.Select().From("inmobiliarias").Where("deleted_at IS NULL")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"nombre": like},
			sq.ILike{"nit": like},
			sq.ILike{"codigo": like},
		})
	}

	countSQL, countArgs, err := base.Columns("COUNT(id)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Inmobiliaria{}, 0, nil
	}

	listBuilder := base.Columns(inmobiliariaColumns...).OrderBy("nombre ASC")
	if filter.WithPagination {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}
	listSQL, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Inmobiliaria, 0, filter.Limit)
	for rows.Next() {
		m, err := scanInmobiliaria(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *m)
	}
	return list, total, rows.Err()
}

func (r *InmobiliariaRepository) findBy(ctx context.Context, pred sq.Sqlizer) (*entities.Inmobiliaria, error) {
	query, args, err := psql.Select(inmobiliariaColumns...).
		From("inmobiliarias").
		Where("deleted_at IS NULL").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanInmobiliaria(r.storage.QueryRow(ctx, query, args...))
}

func (r *InmobiliariaRepository) FindByID(ctx context.Context, id uint64) (*entities.Inmobiliaria, error) {
	return r.findBy(ctx, sq.Eq{"id": id})
}

func (r *InmobiliariaRepository) FindByNit(ctx context.Context, nit string) (*entities.Inmobiliaria, error) {
	return r.findBy(ctx, sq.Eq{"nit": nit})
}

func (r *InmobiliariaRepository) Create(ctx context.Context, inmo *entities.Inmobiliaria) (*entities.Inmobiliaria, error) {
	query, args, err := psql.Insert("inmobiliarias").
		Columns("nombre", "nit", "codigo", "email", "telefono", "ciudad", "direccion", "is_active").
		Values(inmo.Nombre, inmo.Nit, inmo.Codigo, inmo.Email, inmo.Telefono, inmo.Ciudad, inmo.Direccion, inmo.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx, query, args...).Scan(&inmo.ID, &inmo.CreatedAt, &inmo.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError("ya existe una inmobiliaria con NIT %s", inmo.Nit)
		}
		return nil, err
	}
	return inmo, nil
}

func (r *InmobiliariaRepository) Update(ctx context.Context, inmo *entities.Inmobiliaria) error {
	query, args, err := psql.Update("inmobiliarias").
		Set("nombre", inmo.Nombre).
		Set("nit", inmo.Nit).
		Set("codigo", inmo.Codigo).
		Set("email", inmo.Email).
		Set("telefono", inmo.Telefono).
		Set("ciudad", inmo.Ciudad).
		Set("direccion", inmo.Direccion).
		Set("is_active", inmo.IsActive).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": inmo.ID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InmobiliariaRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Update("inmobiliarias").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InmobiliariaRepository) Upsert(ctx context.Context, inmo *entities.Inmobiliaria) (bool, error) {
	query, args, err := psql.Insert("inmobiliarias").
		Columns("nombre", "nit", "codigo", "email", "telefono", "ciudad", "direccion", "is_active").
		Values(inmo.Nombre, inmo.Nit, inmo.Codigo, inmo.Email, inmo.Telefono, inmo.Ciudad, inmo.Direccion, true).
		Suffix(`ON CONFLICT (nit) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			codigo = EXCLUDED.codigo,
			email = COALESCE(EXCLUDED.email, inmobiliarias.email),
			telefono = COALESCE(EXCLUDED.telefono, inmobiliarias.telefono),
			ciudad = COALESCE(EXCLUDED.ciudad, inmobiliarias.ciudad),
			direccion = COALESCE(EXCLUDED.direccion, inmobiliarias.direccion),
			updated_at = NOW()
		RETURNING id, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return false, err
	}

	var inserted bool
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&inmo.ID, &inserted); err != nil {
		return false, err
	}
	return inserted, nil
}
