package models

import (
	"fmt"
	"time"
)

// Default heat signal weights, substituted when a submitted weight is absent
// or does not parse.
const (
	DefaultWeightMessageRate       = 1.0
	DefaultWeightDuplicates        = 2.0
	DefaultWeightMassMentions      = 3.0
	DefaultWeightLinks             = 1.5
	DefaultWeightAttachments       = 0.5
	DefaultWeightEmojiSpam         = 1.0
	DefaultWeightSuspiciousUnicode = 2.0
	DefaultWeightWebhookMessages   = 2.5
)

// Default heat thresholds and per-threshold actions.
const (
	DefaultThresholdT1 = 10
	DefaultThresholdT2 = 25
	DefaultThresholdT3 = 50
	DefaultThresholdT4 = 100
)

// Default panic mode tuning: N distinct users crossing T3 within the window
// puts the guild into panic mode for the configured duration.
const (
	DefaultPanicThreshold       = 5
	DefaultPanicWindowSeconds   = 60
	DefaultPanicDurationMinutes = 10
)

// HeatConfig is the per-guild automod scoring configuration: signal weights,
// escalation thresholds with their actions, and panic mode tuning. Scoring
// itself happens in the bot runtime; this record only parameterizes it.
type HeatConfig struct {
	GuildID string `db:"guild_id" json:"guild_id"`
	Enabled bool   `db:"enabled"  json:"enabled"`

	WeightMessageRate       float64 `db:"weight_message_rate"       json:"weight_message_rate"`
	WeightDuplicates        float64 `db:"weight_duplicates"         json:"weight_duplicates"`
	WeightMassMentions      float64 `db:"weight_mass_mentions"      json:"weight_mass_mentions"`
	WeightLinks             float64 `db:"weight_links"              json:"weight_links"`
	WeightAttachments       float64 `db:"weight_attachments"        json:"weight_attachments"`
	WeightEmojiSpam         float64 `db:"weight_emoji_spam"         json:"weight_emoji_spam"`
	WeightSuspiciousUnicode float64 `db:"weight_suspicious_unicode" json:"weight_suspicious_unicode"`
	WeightWebhookMessages   float64 `db:"weight_webhook_messages"   json:"weight_webhook_messages"`

	ThresholdT1 int `db:"threshold_t1" json:"threshold_t1"`
	ThresholdT2 int `db:"threshold_t2" json:"threshold_t2"`
	ThresholdT3 int `db:"threshold_t3" json:"threshold_t3"`
	ThresholdT4 int `db:"threshold_t4" json:"threshold_t4"`

	ActionT1 string `db:"action_t1" json:"action_t1"`
	ActionT2 string `db:"action_t2" json:"action_t2"`
	ActionT3 string `db:"action_t3" json:"action_t3"`
	ActionT4 string `db:"action_t4" json:"action_t4"`

	PanicThreshold       int `db:"panic_threshold"        json:"panic_threshold"`
	PanicWindowSeconds   int `db:"panic_window_seconds"   json:"panic_window_seconds"`
	PanicDurationMinutes int `db:"panic_duration_minutes" json:"panic_duration_minutes"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Validate checks the cross-field invariants the normalizer deliberately does
// not: thresholds must be strictly increasing and positive, panic tuning must
// be positive. Callers run this before activating a config (enabled=true);
// a disabled config may hold any ordering.
func (c *HeatConfig) Validate() error {
	if c.ThresholdT1 <= 0 {
		return fmt.Errorf("threshold T1 must be positive, got %d", c.ThresholdT1)
	}
	if !(c.ThresholdT1 < c.ThresholdT2 && c.ThresholdT2 < c.ThresholdT3 && c.ThresholdT3 < c.ThresholdT4) {
		return fmt.Errorf("thresholds must be strictly increasing: T1=%d T2=%d T3=%d T4=%d",
			c.ThresholdT1, c.ThresholdT2, c.ThresholdT3, c.ThresholdT4)
	}
	if c.PanicThreshold <= 0 || c.PanicWindowSeconds <= 0 || c.PanicDurationMinutes <= 0 {
		return fmt.Errorf("panic mode settings must be positive")
	}
	return nil
}
