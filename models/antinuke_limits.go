package models

import (
	"fmt"
	"time"
)

// AntiNukeAction identifies one of the audited destructive action kinds the
// anti-nuke engine rate-limits.
type AntiNukeAction string

const (
	AntiNukeBan           AntiNukeAction = "ban"
	AntiNukeKick          AntiNukeAction = "kick"
	AntiNukeChannelDelete AntiNukeAction = "channelDelete"
	AntiNukeRoleDelete    AntiNukeAction = "roleDelete"
)

// AntiNukeActions lists the audited action kinds in display order.
var AntiNukeActions = []AntiNukeAction{
	AntiNukeBan,
	AntiNukeKick,
	AntiNukeChannelDelete,
	AntiNukeRoleDelete,
}

// AntiNukeDefaults maps each audited action to its default minute/hour
// limits, substituted when a submitted value does not parse.
var AntiNukeDefaults = map[AntiNukeAction]struct{ Minute, Hour int }{
	AntiNukeBan:           {Minute: 5, Hour: 20},
	AntiNukeKick:          {Minute: 10, Hour: 50},
	AntiNukeChannelDelete: {Minute: 3, Hour: 10},
	AntiNukeRoleDelete:    {Minute: 3, Hour: 10},
}

// AntiNukeLimits is the per-guild anti-nuke configuration: per-action rate
// limits plus the response policy applied when a limit trips. The limits are
// enforced by the bot runtime, not by this dashboard.
type AntiNukeLimits struct {
	GuildID string `db:"guild_id" json:"guild_id"`
	Enabled bool   `db:"enabled"  json:"enabled"`

	MinuteBan           int `db:"minute_ban"            json:"minute_ban"`
	HourBan             int `db:"hour_ban"              json:"hour_ban"`
	MinuteKick          int `db:"minute_kick"           json:"minute_kick"`
	HourKick            int `db:"hour_kick"             json:"hour_kick"`
	MinuteChannelDelete int `db:"minute_channel_delete" json:"minute_channel_delete"`
	HourChannelDelete   int `db:"hour_channel_delete"   json:"hour_channel_delete"`
	MinuteRoleDelete    int `db:"minute_role_delete"    json:"minute_role_delete"`
	HourRoleDelete      int `db:"hour_role_delete"      json:"hour_role_delete"`

	ResponseBan           string `db:"response_ban"            json:"response_ban"`
	ResponseKick          string `db:"response_kick"           json:"response_kick"`
	ResponseChannelDelete string `db:"response_channel_delete" json:"response_channel_delete"`
	ResponseRoleDelete    string `db:"response_role_delete"    json:"response_role_delete"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LimitsFor returns the minute and hour limit stored for the given action.
func (l *AntiNukeLimits) LimitsFor(action AntiNukeAction) (minute, hour int) {
	switch action {
	case AntiNukeBan:
		return l.MinuteBan, l.HourBan
	case AntiNukeKick:
		return l.MinuteKick, l.HourKick
	case AntiNukeChannelDelete:
		return l.MinuteChannelDelete, l.HourChannelDelete
	case AntiNukeRoleDelete:
		return l.MinuteRoleDelete, l.HourRoleDelete
	}
	return 0, 0
}

// Warnings reports advisory consistency issues: an hour limit lower than the
// corresponding minute limit is almost certainly a mistake, but historical
// configs contain such rows so saves are never rejected for it.
func (l *AntiNukeLimits) Warnings() []string {
	var warnings []string
	for _, action := range AntiNukeActions {
		minute, hour := l.LimitsFor(action)
		if hour < minute {
			warnings = append(warnings, fmt.Sprintf(
				"%s: hour limit %d is below minute limit %d", action, hour, minute))
		}
	}
	return warnings
}
