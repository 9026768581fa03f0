package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"ruebydash/core"
	dbtx "ruebydash/db/tx"
	"ruebydash/models"
)

type PostgresUsersRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for users table
var usersColumns = []string{
	"id",
	"auth_provider",
	"auth_provider_id",
	"created_at",
	"updated_at",
}

func NewPostgresUsersRepository(db *sqlx.DB, schema string) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db, schema: schema}
}

// GetOrCreateUser returns the dashboard account for the given auth provider
// identity, creating it on first sight.
func (r *PostgresUsersRepository) GetOrCreateUser(
	ctx context.Context,
	authProvider, authProviderID string,
) (*models.User, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	id := core.NewID("u")
	returningStr := strings.Join(usersColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.users (id, auth_provider, auth_provider_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (auth_provider, auth_provider_id)
		DO UPDATE SET updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var user models.User
	err := db.QueryRowxContext(ctx, query, id, authProvider, authProviderID).StructScan(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}

	return &user, nil
}
