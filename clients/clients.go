package clients

import (
	"context"
)

// DiscordChannel is the slice of channel data the dashboard needs for its
// channel pickers.
type DiscordChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

// ChannelTypeGuildText matches the Discord API channel type for text
// channels, the only kind the config forms offer.
const ChannelTypeGuildText = 0

// DiscordRole is the slice of role data the dashboard needs for role pickers
// and for the lockdown permission routine.
type DiscordRole struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Permissions int64  `json:"permissions"`
	Position    int    `json:"position"`
}

// MessageButton is a single interactive button attached to a posted message.
type MessageButton struct {
	Label    string `json:"label"`
	CustomID string `json:"custom_id"`
	Emoji    string `json:"emoji,omitempty"`
}

// MessageEmbed is the embed portion of a posted panel message.
type MessageEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
	FooterText  string `json:"footer_text,omitempty"`
}

// ChannelMessage is a message with an embed and optional buttons, as sent to
// a guild channel by the bot.
type ChannelMessage struct {
	Embed   *MessageEmbed   `json:"embed"`
	Buttons []MessageButton `json:"buttons,omitempty"`
}

// DiscordClient is the gateway surface the configuration layer consumes.
// Every call is a fallible remote operation with no built-in retry: a failure
// surfaces as an error and the caller's save/action aborts. Implementations
// hold no state beyond credentials; nothing is cached across requests.
type DiscordClient interface {
	GetGuildChannels(ctx context.Context, guildID string) ([]DiscordChannel, error)
	GetGuildRoles(ctx context.Context, guildID string) ([]DiscordRole, error)
	PostMessage(ctx context.Context, channelID string, message *ChannelMessage) error
	PatchRolePermissions(ctx context.Context, guildID, roleID string, permissions int64) error
	PutChannelPermissionOverwrite(ctx context.Context, channelID, roleID string, allow, deny int64) error
}
