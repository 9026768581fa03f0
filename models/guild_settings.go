package models

import (
	"time"
)

// GuildSettings holds the core per-guild bot configuration. One row per
// guild, created lazily on first save.
type GuildSettings struct {
	GuildID          string    `db:"guild_id"           json:"guild_id"`
	OwnerID          string    `db:"owner_id"           json:"owner_id"`
	Prefix           string    `db:"prefix"             json:"prefix"`
	Timezone         string    `db:"timezone"           json:"timezone"`
	MuteRoleID       *string   `db:"mute_role_id"       json:"mute_role_id,omitempty"`
	QuarantineRoleID *string   `db:"quarantine_role_id" json:"quarantine_role_id,omitempty"`
	CreatedAt        time.Time `db:"created_at"         json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"         json:"updated_at"`
}

const (
	DefaultPrefix   = "!"
	DefaultTimezone = "UTC"

	// MaxPrefixLength bounds the command prefix; anything longer is cut back
	// to the default during normalization.
	MaxPrefixLength = 5
)
