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

type PostgresLogsRoutingRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for logs_routing table
var logsRoutingColumns = []string{
	"guild_id",
	"automod_channel_id",
	"antinuke_channel_id",
	"verification_channel_id",
	"joingate_channel_id",
	"joinraid_channel_id",
	"panic_channel_id",
	"reports_channel_id",
	"moderation_channel_id",
	"fallback_channel_id",
	"created_at",
	"updated_at",
}

func NewPostgresLogsRoutingRepository(db *sqlx.DB, schema string) *PostgresLogsRoutingRepository {
	return &PostgresLogsRoutingRepository{db: db, schema: schema}
}

func (r *PostgresLogsRoutingRepository) UpsertLogsRouting(
	ctx context.Context,
	routing *models.LogsRouting,
) (*models.LogsRouting, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(logsRoutingColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.logs_routing (
			guild_id,
			automod_channel_id, antinuke_channel_id, verification_channel_id,
			joingate_channel_id, joinraid_channel_id, panic_channel_id,
			reports_channel_id, moderation_channel_id, fallback_channel_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			automod_channel_id = EXCLUDED.automod_channel_id,
			antinuke_channel_id = EXCLUDED.antinuke_channel_id,
			verification_channel_id = EXCLUDED.verification_channel_id,
			joingate_channel_id = EXCLUDED.joingate_channel_id,
			joinraid_channel_id = EXCLUDED.joinraid_channel_id,
			panic_channel_id = EXCLUDED.panic_channel_id,
			reports_channel_id = EXCLUDED.reports_channel_id,
			moderation_channel_id = EXCLUDED.moderation_channel_id,
			fallback_channel_id = EXCLUDED.fallback_channel_id,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var persisted models.LogsRouting
	err := db.QueryRowxContext(
		ctx,
		query,
		routing.GuildID,
		routing.AutomodChannelID,
		routing.AntinukeChannelID,
		routing.VerificationChannelID,
		routing.JoingateChannelID,
		routing.JoinraidChannelID,
		routing.PanicChannelID,
		routing.ReportsChannelID,
		routing.ModerationChannelID,
		routing.FallbackChannelID,
	).StructScan(&persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert logs routing: %w", err)
	}

	return &persisted, nil
}

func (r *PostgresLogsRoutingRepository) GetLogsRoutingByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.LogsRouting], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(logsRoutingColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.logs_routing
		WHERE guild_id = $1
	`, returningStr, r.schema)

	var routing models.LogsRouting
	err := db.QueryRowxContext(ctx, query, guildID).StructScan(&routing)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.LogsRouting](), nil
		}
		return mo.None[*models.LogsRouting](), fmt.Errorf("failed to get logs routing: %w", err)
	}

	return mo.Some(&routing), nil
}
