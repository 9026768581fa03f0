package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	dbtx "ruebydash/db/tx"
	"ruebydash/models"
)

// PostgresPanicStatesRepository is read-only from the dashboard's side: the
// bot runtime owns writes to panic_states.
type PostgresPanicStatesRepository struct {
	db     *sqlx.DB
	schema string
}

var panicStatesColumns = []string{
	"guild_id",
	"active",
	"updated_at",
}

func NewPostgresPanicStatesRepository(db *sqlx.DB, schema string) *PostgresPanicStatesRepository {
	return &PostgresPanicStatesRepository{db: db, schema: schema}
}

func (r *PostgresPanicStatesRepository) GetPanicStateByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.PanicState], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(panicStatesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.panic_states
		WHERE guild_id = $1
	`, columnsStr, r.schema)

	var state models.PanicState
	err := db.QueryRowxContext(ctx, query, guildID).StructScan(&state)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.PanicState](), nil
		}
		return mo.None[*models.PanicState](), fmt.Errorf("failed to get panic state: %w", err)
	}

	return mo.Some(&state), nil
}
