package models

import (
	"time"
)

// PermitLevel is a staff authority tier, L1 (lowest) through L5 (highest).
type PermitLevel string

const (
	PermitL1 PermitLevel = "L1"
	PermitL2 PermitLevel = "L2"
	PermitL3 PermitLevel = "L3"
	PermitL4 PermitLevel = "L4"
	PermitL5 PermitLevel = "L5"
)

// PermitLevels lists the valid tiers lowest to highest.
var PermitLevels = []PermitLevel{PermitL1, PermitL2, PermitL3, PermitL4, PermitL5}

// IsValidPermitLevel reports whether s names a known tier.
func IsValidPermitLevel(s string) bool {
	for _, l := range PermitLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// Permit grants a guild role a moderation authority tier. At most one permit
// per (guild, role) pair.
type Permit struct {
	ID        string      `db:"id"         json:"id"`
	GuildID   string      `db:"guild_id"   json:"guild_id"`
	RoleID    string      `db:"role_id"    json:"role_id"`
	Level     PermitLevel `db:"level"      json:"level"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// PermitGrant is the caller-supplied shape for bulk permit replacement.
type PermitGrant struct {
	RoleID string      `json:"role_id"`
	Level  PermitLevel `json:"level"`
}
