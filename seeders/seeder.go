package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Run applies the idempotent seeds after migrations. Today that is only
// the bootstrap admin.
func Run(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	return seedAdminUser(ctx, db, logger)
}
