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

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "name", "email", "password", "role", "permissions",
	"is_active", "login_attempts",
	"inmobiliaria_id", "nombre_inmobiliaria", "nit", "codigo_inmobiliaria",
	"created_at", "updated_at", "deleted_at",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SetActive(ctx context.Context, id uint64, active bool) error
	UpdateRole(ctx context.Context, id uint64, role string) error
	UpdatePermissions(ctx context.Context, id uint64, permissions []string) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	SetLoginAttempts(ctx context.Context, id uint64, attempts int) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Permissions,
		&u.IsActive, &u.LoginAttempts,
		&u.InmobiliariaID, &u.NombreInmobiliaria, &u.Nit, &u.CodigoInmobiliaria,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	base := psql.Select().From("users").Where("deleted_at IS NULL")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"name": like},
			sq.ILike{"email": like},
			sq.ILike{"nombre_inmobiliaria": like},
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
		return []entities.User{}, 0, nil
	}

	listBuilder := base.Columns(userColumns...).OrderBy("id DESC")
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

	users := make([]entities.User, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) findBy(ctx context.Context, pred sq.Sqlizer) (*entities.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where("deleted_at IS NULL").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findBy(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findBy(ctx, sq.Eq{"email": email})
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	query, args, err := psql.Insert("users").
		Columns("name", "email", "password", "role", "permissions", "is_active",
			"inmobiliaria_id", "nombre_inmobiliaria", "nit", "codigo_inmobiliaria").
		Values(user.Name, user.Email, user.Password, user.Role, user.Permissions, user.IsActive,
			user.InmobiliariaID, user.NombreInmobiliaria, user.Nit, user.CodigoInmobiliaria).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError("ya existe un usuario con el correo %s", user.Email)
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	query, args, err := psql.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("nombre_inmobiliaria", user.NombreInmobiliaria).
		Set("nit", user.Nit).
		Set("codigo_inmobiliaria", user.CodigoInmobiliaria).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *UserRepository) SetActive(ctx context.Context, id uint64, active bool) error {
	query, args, err := psql.Update("users").
		Set("is_active", active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uint64, role string) error {
	query, args, err := psql.Update("users").
		Set("role", role).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *UserRepository) UpdatePermissions(ctx context.Context, id uint64, permissions []string) error {
	query, args, err := psql.Update("users").
		Set("permissions", permissions).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	query, args, err := psql.Update("users").
		Set("password", passwordHash).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *UserRepository) SetLoginAttempts(ctx context.Context, id uint64, attempts int) error {
	query, args, err := psql.Update("users").
		Set("login_attempts", attempts).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *UserRepository) exec(ctx context.Context, query string, args []interface{}) error {
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
