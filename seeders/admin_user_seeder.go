package seeders

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

// seedAdminUser creates the bootstrap administrator when no account with
// its email exists. The password comes from ADMIN_PASSWORD so no hash is
// ever committed to the repository.
func seedAdminUser(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@affi.co"
	}

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existingID)
	if err == nil {
		logger.Debug("el administrador ya existe, seed omitido", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("verificando el administrador existente: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logger.Warn("ADMIN_PASSWORD no definido, no se creará el administrador inicial")
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (name, email, password, role, permissions, is_active)
              VALUES ($1, $2, $3, 'admin', '{}', TRUE)`
	if _, err := db.Exec(ctx, query, "Administrador", email, hashed); err != nil {
		return fmt.Errorf("creando el administrador inicial: %w", err)
	}

	logger.Info("administrador inicial creado", zap.String("email", email))
	return nil
}
