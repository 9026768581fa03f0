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

type PostgresGuildSettingsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for guild_settings table
var guildSettingsColumns = []string{
	"guild_id",
	"owner_id",
	"prefix",
	"timezone",
	"mute_role_id",
	"quarantine_role_id",
	"created_at",
	"updated_at",
}

func NewPostgresGuildSettingsRepository(db *sqlx.DB, schema string) *PostgresGuildSettingsRepository {
	return &PostgresGuildSettingsRepository{db: db, schema: schema}
}

// UpsertGuildSettings writes the full record, creating the row on first save.
// Subsequent upserts overwrite the prior content entirely.
func (r *PostgresGuildSettingsRepository) UpsertGuildSettings(
	ctx context.Context,
	settings *models.GuildSettings,
) (*models.GuildSettings, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(guildSettingsColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.guild_settings (
			guild_id, owner_id, prefix, timezone, mute_role_id, quarantine_role_id
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			prefix = EXCLUDED.prefix,
			timezone = EXCLUDED.timezone,
			mute_role_id = EXCLUDED.mute_role_id,
			quarantine_role_id = EXCLUDED.quarantine_role_id,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var persisted models.GuildSettings
	err := db.QueryRowxContext(
		ctx,
		query,
		settings.GuildID,
		settings.OwnerID,
		settings.Prefix,
		settings.Timezone,
		settings.MuteRoleID,
		settings.QuarantineRoleID,
	).StructScan(&persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert guild settings: %w", err)
	}

	return &persisted, nil
}

func (r *PostgresGuildSettingsRepository) GetGuildSettingsByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.GuildSettings], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(guildSettingsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guild_settings
		WHERE guild_id = $1
	`, returningStr, r.schema)

	var settings models.GuildSettings
	err := db.QueryRowxContext(ctx, query, guildID).StructScan(&settings)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.GuildSettings](), nil
		}
		return mo.None[*models.GuildSettings](), fmt.Errorf("failed to get guild settings: %w", err)
	}

	return mo.Some(&settings), nil
}
