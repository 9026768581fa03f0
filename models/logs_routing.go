package models

import (
	"time"
)

// LogsRouting directs each security event category to a channel. Every field
// is optional; the bot runtime falls back to FallbackChannelID for categories
// without a route, and drops the event if that is unset too.
type LogsRouting struct {
	GuildID string `db:"guild_id" json:"guild_id"`

	AutomodChannelID      *string `db:"automod_channel_id"      json:"automod_channel_id,omitempty"`
	AntinukeChannelID     *string `db:"antinuke_channel_id"     json:"antinuke_channel_id,omitempty"`
	VerificationChannelID *string `db:"verification_channel_id" json:"verification_channel_id,omitempty"`
	JoingateChannelID     *string `db:"joingate_channel_id"     json:"joingate_channel_id,omitempty"`
	JoinraidChannelID     *string `db:"joinraid_channel_id"     json:"joinraid_channel_id,omitempty"`
	PanicChannelID        *string `db:"panic_channel_id"        json:"panic_channel_id,omitempty"`
	ReportsChannelID      *string `db:"reports_channel_id"      json:"reports_channel_id,omitempty"`
	ModerationChannelID   *string `db:"moderation_channel_id"   json:"moderation_channel_id,omitempty"`
	FallbackChannelID     *string `db:"fallback_channel_id"     json:"fallback_channel_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
