package discord

import (
	"context"
	"fmt"
	"net/http"

	"ruebydash/clients"

	"github.com/bwmarrin/discordgo"
)

// DiscordClient implements the clients.DiscordClient interface using the
// Discord REST API via discordgo.
type DiscordClient struct {
	httpClient *http.Client
	// botToken is the Discord bot token used for API requests
	botToken string
}

// NewDiscordClient creates a new Discord client backed by the bot token
func NewDiscordClient(httpClient *http.Client, botToken string) clients.DiscordClient {
	return &DiscordClient{
		httpClient: httpClient,
		botToken:   botToken,
	}
}

func (c *DiscordClient) session() (*discordgo.Session, error) {
	sdkClient, err := discordgo.New("Bot " + c.botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	sdkClient.Client = c.httpClient
	return sdkClient, nil
}

// GetGuildChannels fetches all channels in a guild
func (c *DiscordClient) GetGuildChannels(ctx context.Context, guildID string) ([]clients.DiscordChannel, error) {
	sdkClient, err := c.session()
	if err != nil {
		return nil, err
	}

	discordChannels, err := sdkClient.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild channels: %w", err)
	}

	channels := make([]clients.DiscordChannel, 0, len(discordChannels))
	for _, ch := range discordChannels {
		channels = append(channels, clients.DiscordChannel{
			ID:   ch.ID,
			Name: ch.Name,
			Type: int(ch.Type),
		})
	}
	return channels, nil
}

// GetGuildRoles fetches all roles in a guild
func (c *DiscordClient) GetGuildRoles(ctx context.Context, guildID string) ([]clients.DiscordRole, error) {
	sdkClient, err := c.session()
	if err != nil {
		return nil, err
	}

	discordRoles, err := sdkClient.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild roles: %w", err)
	}

	roles := make([]clients.DiscordRole, 0, len(discordRoles))
	for _, role := range discordRoles {
		roles = append(roles, clients.DiscordRole{
			ID:          role.ID,
			Name:        role.Name,
			Color:       role.Color,
			Permissions: role.Permissions,
			Position:    role.Position,
		})
	}
	return roles, nil
}

// PostMessage sends an embed message with optional buttons to a channel
func (c *DiscordClient) PostMessage(ctx context.Context, channelID string, message *clients.ChannelMessage) error {
	sdkClient, err := c.session()
	if err != nil {
		return err
	}

	send := &discordgo.MessageSend{}
	if message.Embed != nil {
		embed := &discordgo.MessageEmbed{
			Title:       message.Embed.Title,
			Description: message.Embed.Description,
			Color:       message.Embed.Color,
		}
		if message.Embed.FooterText != "" {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: message.Embed.FooterText}
		}
		send.Embeds = []*discordgo.MessageEmbed{embed}
	}
	if len(message.Buttons) > 0 {
		buttons := make([]discordgo.MessageComponent, 0, len(message.Buttons))
		for _, btn := range message.Buttons {
			component := discordgo.Button{
				Label:    btn.Label,
				Style:    discordgo.SuccessButton,
				CustomID: btn.CustomID,
			}
			if btn.Emoji != "" {
				component.Emoji = &discordgo.ComponentEmoji{Name: btn.Emoji}
			}
			buttons = append(buttons, component)
		}
		send.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}

	if _, err := sdkClient.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send channel message: %w", err)
	}
	return nil
}

// PatchRolePermissions replaces a role's permission bitset
func (c *DiscordClient) PatchRolePermissions(ctx context.Context, guildID, roleID string, permissions int64) error {
	sdkClient, err := c.session()
	if err != nil {
		return err
	}

	params := &discordgo.RoleParams{Permissions: &permissions}
	if _, err := sdkClient.GuildRoleEdit(guildID, roleID, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit role permissions: %w", err)
	}
	return nil
}

// PutChannelPermissionOverwrite creates or replaces a role permission
// overwrite on a channel
func (c *DiscordClient) PutChannelPermissionOverwrite(
	ctx context.Context,
	channelID, roleID string,
	allow, deny int64,
) error {
	sdkClient, err := c.session()
	if err != nil {
		return err
	}

	err = sdkClient.ChannelPermissionSet(
		channelID,
		roleID,
		discordgo.PermissionOverwriteTypeRole,
		allow,
		deny,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to set channel permission overwrite: %w", err)
	}
	return nil
}
