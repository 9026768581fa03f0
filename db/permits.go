package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	dbtx "ruebydash/db/tx"
	"ruebydash/models"
)

type PostgresPermitsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for permits table
var permitsColumns = []string{
	"id",
	"guild_id",
	"role_id",
	"level",
	"created_at",
	"updated_at",
}

func NewPostgresPermitsRepository(db *sqlx.DB, schema string) *PostgresPermitsRepository {
	return &PostgresPermitsRepository{db: db, schema: schema}
}

// CreatePermit inserts a single permit row. A second permit for the same
// (guild, role) pair fails the unique constraint; callers detect that with
// IsUniqueViolation.
func (r *PostgresPermitsRepository) CreatePermit(
	ctx context.Context,
	permit *models.Permit,
) error {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(permitsColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.permits (id, guild_id, role_id, level)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, r.schema, returningStr)

	err := db.QueryRowxContext(ctx, query, permit.ID, permit.GuildID, permit.RoleID, permit.Level).
		StructScan(permit)
	if err != nil {
		return fmt.Errorf("failed to create permit: %w", err)
	}

	return nil
}

func (r *PostgresPermitsRepository) ListPermitsByGuildID(
	ctx context.Context,
	guildID string,
) ([]*models.Permit, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(permitsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.permits
		WHERE guild_id = $1
		ORDER BY level DESC, created_at ASC
	`, columnsStr, r.schema)

	var permits []*models.Permit
	if err := db.SelectContext(ctx, &permits, query, guildID); err != nil {
		return nil, fmt.Errorf("failed to list permits: %w", err)
	}

	return permits, nil
}

func (r *PostgresPermitsRepository) DeletePermitByID(
	ctx context.Context,
	permitID, guildID string,
) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s.permits WHERE id = $1 AND guild_id = $2`, r.schema)

	result, err := db.ExecContext(ctx, query, permitID, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to delete permit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected > 0, nil
}

// DeletePermitsByGuildID removes every permit for a guild. Used by the bulk
// replace path, which runs delete and inserts inside one transaction.
func (r *PostgresPermitsRepository) DeletePermitsByGuildID(
	ctx context.Context,
	guildID string,
) error {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s.permits WHERE guild_id = $1`, r.schema)

	if _, err := db.ExecContext(ctx, query, guildID); err != nil {
		return fmt.Errorf("failed to delete permits for guild: %w", err)
	}

	return nil
}
