package models

import (
	"time"
)

// PanicState mirrors whether a guild is currently in panic mode. The bot
// runtime is the only writer; the dashboard reads it for display.
type PanicState struct {
	GuildID   string    `db:"guild_id"   json:"guild_id"`
	Active    bool      `db:"active"     json:"active"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
