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

type PostgresHeatConfigsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for heat_configs table
var heatConfigsColumns = []string{
	"guild_id",
	"enabled",
	"weight_message_rate",
	"weight_duplicates",
	"weight_mass_mentions",
	"weight_links",
	"weight_attachments",
	"weight_emoji_spam",
	"weight_suspicious_unicode",
	"weight_webhook_messages",
	"threshold_t1",
	"threshold_t2",
	"threshold_t3",
	"threshold_t4",
	"action_t1",
	"action_t2",
	"action_t3",
	"action_t4",
	"panic_threshold",
	"panic_window_seconds",
	"panic_duration_minutes",
	"created_at",
	"updated_at",
}

func NewPostgresHeatConfigsRepository(db *sqlx.DB, schema string) *PostgresHeatConfigsRepository {
	return &PostgresHeatConfigsRepository{db: db, schema: schema}
}

func (r *PostgresHeatConfigsRepository) UpsertHeatConfig(
	ctx context.Context,
	cfg *models.HeatConfig,
) (*models.HeatConfig, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(heatConfigsColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.heat_configs (
			guild_id, enabled,
			weight_message_rate, weight_duplicates, weight_mass_mentions, weight_links,
			weight_attachments, weight_emoji_spam, weight_suspicious_unicode, weight_webhook_messages,
			threshold_t1, threshold_t2, threshold_t3, threshold_t4,
			action_t1, action_t2, action_t3, action_t4,
			panic_threshold, panic_window_seconds, panic_duration_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			enabled = EXCLUDED.enabled,
			weight_message_rate = EXCLUDED.weight_message_rate,
			weight_duplicates = EXCLUDED.weight_duplicates,
			weight_mass_mentions = EXCLUDED.weight_mass_mentions,
			weight_links = EXCLUDED.weight_links,
			weight_attachments = EXCLUDED.weight_attachments,
			weight_emoji_spam = EXCLUDED.weight_emoji_spam,
			weight_suspicious_unicode = EXCLUDED.weight_suspicious_unicode,
			weight_webhook_messages = EXCLUDED.weight_webhook_messages,
			threshold_t1 = EXCLUDED.threshold_t1,
			threshold_t2 = EXCLUDED.threshold_t2,
			threshold_t3 = EXCLUDED.threshold_t3,
			threshold_t4 = EXCLUDED.threshold_t4,
			action_t1 = EXCLUDED.action_t1,
			action_t2 = EXCLUDED.action_t2,
			action_t3 = EXCLUDED.action_t3,
			action_t4 = EXCLUDED.action_t4,
			panic_threshold = EXCLUDED.panic_threshold,
			panic_window_seconds = EXCLUDED.panic_window_seconds,
			panic_duration_minutes = EXCLUDED.panic_duration_minutes,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var persisted models.HeatConfig
	err := db.QueryRowxContext(
		ctx,
		query,
		cfg.GuildID,
		cfg.Enabled,
		cfg.WeightMessageRate,
		cfg.WeightDuplicates,
		cfg.WeightMassMentions,
		cfg.WeightLinks,
		cfg.WeightAttachments,
		cfg.WeightEmojiSpam,
		cfg.WeightSuspiciousUnicode,
		cfg.WeightWebhookMessages,
		cfg.ThresholdT1,
		cfg.ThresholdT2,
		cfg.ThresholdT3,
		cfg.ThresholdT4,
		cfg.ActionT1,
		cfg.ActionT2,
		cfg.ActionT3,
		cfg.ActionT4,
		cfg.PanicThreshold,
		cfg.PanicWindowSeconds,
		cfg.PanicDurationMinutes,
	).StructScan(&persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert heat config: %w", err)
	}

	return &persisted, nil
}

func (r *PostgresHeatConfigsRepository) GetHeatConfigByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.HeatConfig], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(heatConfigsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.heat_configs
		WHERE guild_id = $1
	`, returningStr, r.schema)

	var cfg models.HeatConfig
	err := db.QueryRowxContext(ctx, query, guildID).StructScan(&cfg)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.HeatConfig](), nil
		}
		return mo.None[*models.HeatConfig](), fmt.Errorf("failed to get heat config: %w", err)
	}

	return mo.Some(&cfg), nil
}
