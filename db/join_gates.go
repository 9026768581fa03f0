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

type PostgresJoinGatesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for join_gates table
var joinGatesColumns = []string{
	"guild_id",
	"enabled",
	"account_age_min_days",
	"avatar_required",
	"bot_addition_policy",
	"unverified_bot_policy",
	"advertising_profile_rule",
	"action_account_age",
	"action_avatar",
	"action_bot",
	"action_advertising",
	"created_at",
	"updated_at",
}

func NewPostgresJoinGatesRepository(db *sqlx.DB, schema string) *PostgresJoinGatesRepository {
	return &PostgresJoinGatesRepository{db: db, schema: schema}
}

func (r *PostgresJoinGatesRepository) UpsertJoinGate(
	ctx context.Context,
	gate *models.JoinGate,
) (*models.JoinGate, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(joinGatesColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.join_gates (
			guild_id, enabled, account_age_min_days, avatar_required,
			bot_addition_policy, unverified_bot_policy, advertising_profile_rule,
			action_account_age, action_avatar, action_bot, action_advertising
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			enabled = EXCLUDED.enabled,
			account_age_min_days = EXCLUDED.account_age_min_days,
			avatar_required = EXCLUDED.avatar_required,
			bot_addition_policy = EXCLUDED.bot_addition_policy,
			unverified_bot_policy = EXCLUDED.unverified_bot_policy,
			advertising_profile_rule = EXCLUDED.advertising_profile_rule,
			action_account_age = EXCLUDED.action_account_age,
			action_avatar = EXCLUDED.action_avatar,
			action_bot = EXCLUDED.action_bot,
			action_advertising = EXCLUDED.action_advertising,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var persisted models.JoinGate
	err := db.QueryRowxContext(
		ctx,
		query,
		gate.GuildID,
		gate.Enabled,
		gate.AccountAgeMinDays,
		gate.AvatarRequired,
		gate.BotAdditionPolicy,
		gate.UnverifiedBotPolicy,
		gate.AdvertisingProfileRule,
		gate.ActionAccountAge,
		gate.ActionAvatar,
		gate.ActionBot,
		gate.ActionAdvertising,
	).StructScan(&persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert join gate: %w", err)
	}

	return &persisted, nil
}

func (r *PostgresJoinGatesRepository) GetJoinGateByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.JoinGate], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(joinGatesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.join_gates
		WHERE guild_id = $1
	`, returningStr, r.schema)

	var gate models.JoinGate
	err := db.QueryRowxContext(ctx, query, guildID).StructScan(&gate)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.JoinGate](), nil
		}
		return mo.None[*models.JoinGate](), fmt.Errorf("failed to get join gate: %w", err)
	}

	return mo.Some(&gate), nil
}
