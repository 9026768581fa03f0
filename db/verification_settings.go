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

type PostgresVerificationSettingsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for verification_settings table
var verificationSettingsColumns = []string{
	"guild_id",
	"enabled",
	"mode",
	"target",
	"verification_channel_id",
	"verified_role_id",
	"action_on_fail",
	"captcha_timeout",
	"captcha_max_attempts",
	"welcome_message",
	"success_message",
	"fail_message",
	"created_at",
	"updated_at",
}

func NewPostgresVerificationSettingsRepository(
	db *sqlx.DB,
	schema string,
) *PostgresVerificationSettingsRepository {
	return &PostgresVerificationSettingsRepository{db: db, schema: schema}
}

func (r *PostgresVerificationSettingsRepository) UpsertVerificationSettings(
	ctx context.Context,
	settings *models.VerificationSettings,
) (*models.VerificationSettings, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(verificationSettingsColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.verification_settings (
			guild_id, enabled, mode, target,
			verification_channel_id, verified_role_id, action_on_fail,
			captcha_timeout, captcha_max_attempts,
			welcome_message, success_message, fail_message
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			enabled = EXCLUDED.enabled,
			mode = EXCLUDED.mode,
			target = EXCLUDED.target,
			verification_channel_id = EXCLUDED.verification_channel_id,
			verified_role_id = EXCLUDED.verified_role_id,
			action_on_fail = EXCLUDED.action_on_fail,
			captcha_timeout = EXCLUDED.captcha_timeout,
			captcha_max_attempts = EXCLUDED.captcha_max_attempts,
			welcome_message = EXCLUDED.welcome_message,
			success_message = EXCLUDED.success_message,
			fail_message = EXCLUDED.fail_message,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var persisted models.VerificationSettings
	err := db.QueryRowxContext(
		ctx,
		query,
		settings.GuildID,
		settings.Enabled,
		settings.Mode,
		settings.Target,
		settings.VerificationChannelID,
		settings.VerifiedRoleID,
		settings.ActionOnFail,
		settings.CaptchaTimeout,
		settings.CaptchaMaxAttempts,
		settings.WelcomeMessage,
		settings.SuccessMessage,
		settings.FailMessage,
	).StructScan(&persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert verification settings: %w", err)
	}

	return &persisted, nil
}

func (r *PostgresVerificationSettingsRepository) GetVerificationSettingsByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.VerificationSettings], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(verificationSettingsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.verification_settings
		WHERE guild_id = $1
	`, returningStr, r.schema)

	var settings models.VerificationSettings
	err := db.QueryRowxContext(ctx, query, guildID).StructScan(&settings)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.VerificationSettings](), nil
		}
		return mo.None[*models.VerificationSettings](), fmt.Errorf("failed to get verification settings: %w", err)
	}

	return mo.Some(&settings), nil
}
