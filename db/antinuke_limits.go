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

type PostgresAntiNukeLimitsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for antinuke_limits table
var antiNukeLimitsColumns = []string{
	"guild_id",
	"enabled",
	"minute_ban",
	"hour_ban",
	"minute_kick",
	"hour_kick",
	"minute_channel_delete",
	"hour_channel_delete",
	"minute_role_delete",
	"hour_role_delete",
	"response_ban",
	"response_kick",
	"response_channel_delete",
	"response_role_delete",
	"created_at",
	"updated_at",
}

func NewPostgresAntiNukeLimitsRepository(db *sqlx.DB, schema string) *PostgresAntiNukeLimitsRepository {
	return &PostgresAntiNukeLimitsRepository{db: db, schema: schema}
}

func (r *PostgresAntiNukeLimitsRepository) UpsertAntiNukeLimits(
	ctx context.Context,
	limits *models.AntiNukeLimits,
) (*models.AntiNukeLimits, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(antiNukeLimitsColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.antinuke_limits (
			guild_id, enabled,
			minute_ban, hour_ban,
			minute_kick, hour_kick,
			minute_channel_delete, hour_channel_delete,
			minute_role_delete, hour_role_delete,
			response_ban, response_kick, response_channel_delete, response_role_delete
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			enabled = EXCLUDED.enabled,
			minute_ban = EXCLUDED.minute_ban,
			hour_ban = EXCLUDED.hour_ban,
			minute_kick = EXCLUDED.minute_kick,
			hour_kick = EXCLUDED.hour_kick,
			minute_channel_delete = EXCLUDED.minute_channel_delete,
			hour_channel_delete = EXCLUDED.hour_channel_delete,
			minute_role_delete = EXCLUDED.minute_role_delete,
			hour_role_delete = EXCLUDED.hour_role_delete,
			response_ban = EXCLUDED.response_ban,
			response_kick = EXCLUDED.response_kick,
			response_channel_delete = EXCLUDED.response_channel_delete,
			response_role_delete = EXCLUDED.response_role_delete,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var persisted models.AntiNukeLimits
	err := db.QueryRowxContext(
		ctx,
		query,
		limits.GuildID,
		limits.Enabled,
		limits.MinuteBan,
		limits.HourBan,
		limits.MinuteKick,
		limits.HourKick,
		limits.MinuteChannelDelete,
		limits.HourChannelDelete,
		limits.MinuteRoleDelete,
		limits.HourRoleDelete,
		limits.ResponseBan,
		limits.ResponseKick,
		limits.ResponseChannelDelete,
		limits.ResponseRoleDelete,
	).StructScan(&persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert anti-nuke limits: %w", err)
	}

	return &persisted, nil
}

func (r *PostgresAntiNukeLimitsRepository) GetAntiNukeLimitsByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.AntiNukeLimits], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(antiNukeLimitsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.antinuke_limits
		WHERE guild_id = $1
	`, returningStr, r.schema)

	var limits models.AntiNukeLimits
	err := db.QueryRowxContext(ctx, query, guildID).StructScan(&limits)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.AntiNukeLimits](), nil
		}
		return mo.None[*models.AntiNukeLimits](), fmt.Errorf("failed to get anti-nuke limits: %w", err)
	}

	return mo.Some(&limits), nil
}
