package models

import (
	"time"
)

// Join-gate policy enums. Values mirror what the dashboard forms submit.
const (
	BotAdditionAllow        = "allow"
	BotAdditionBlock        = "block"
	BotAdditionVerifiedOnly = "verified_only"

	UnverifiedBotAllow = "allow"
	UnverifiedBotKick  = "kick"
	UnverifiedBotBan   = "ban"

	AdvertisingIgnore = "ignore"
	AdvertisingWarn   = "warn"
	AdvertisingStrict = "strict"
)

var (
	BotAdditionPolicies   = []string{BotAdditionAllow, BotAdditionBlock, BotAdditionVerifiedOnly}
	UnverifiedBotPolicies = []string{UnverifiedBotAllow, UnverifiedBotKick, UnverifiedBotBan}
	AdvertisingRules      = []string{AdvertisingIgnore, AdvertisingWarn, AdvertisingStrict}
)

// DefaultAccountAgeMinDays is substituted when the submitted account age is
// absent or does not parse.
const DefaultAccountAgeMinDays = 7

// JoinGate filters new members before they can access the server: minimum
// account age, avatar requirement, bot addition policy and per-trigger
// response actions.
type JoinGate struct {
	GuildID                string `db:"guild_id"                 json:"guild_id"`
	Enabled                bool   `db:"enabled"                  json:"enabled"`
	AccountAgeMinDays      int    `db:"account_age_min_days"     json:"account_age_min_days"`
	AvatarRequired         bool   `db:"avatar_required"          json:"avatar_required"`
	BotAdditionPolicy      string `db:"bot_addition_policy"      json:"bot_addition_policy"`
	UnverifiedBotPolicy    string `db:"unverified_bot_policy"    json:"unverified_bot_policy"`
	AdvertisingProfileRule string `db:"advertising_profile_rule" json:"advertising_profile_rule"`

	// Per-trigger response actions, each one of ModerationPolicies.
	ActionAccountAge  string `db:"action_account_age"  json:"action_account_age"`
	ActionAvatar      string `db:"action_avatar"       json:"action_avatar"`
	ActionBot         string `db:"action_bot"          json:"action_bot"`
	ActionAdvertising string `db:"action_advertising"  json:"action_advertising"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
