package discordguild

import (
	"context"
	"fmt"
	"log"
	"sort"

	"ruebydash/clients"
	"ruebydash/core"
	"ruebydash/models"
)

// DiscordGuildService reads channel and role listings from Discord for the
// dashboard's form pickers. Nothing is cached; every call hits the API.
type DiscordGuildService struct {
	discordClient clients.DiscordClient
}

func NewDiscordGuildService(discordClient clients.DiscordClient) *DiscordGuildService {
	return &DiscordGuildService{discordClient: discordClient}
}

// ListTextChannels returns the guild's text channels sorted by name.
func (s *DiscordGuildService) ListTextChannels(
	ctx context.Context,
	guildID string,
) ([]models.GuildChannel, error) {
	log.Printf("📋 Starting to list text channels for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	discordChannels, err := s.discordClient.GetGuildChannels(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channels from Discord: %w", err)
	}

	channels := make([]models.GuildChannel, 0, len(discordChannels))
	for _, ch := range discordChannels {
		if ch.Type != clients.ChannelTypeGuildText {
			continue
		}
		channels = append(channels, models.GuildChannel{
			ID:   ch.ID,
			Name: ch.Name,
		})
	}
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].Name < channels[j].Name
	})

	log.Printf("📋 Completed successfully - listed %d text channels for guild: %s", len(channels), guildID)
	return channels, nil
}

// ListRoles returns the guild's roles sorted by position, highest first.
func (s *DiscordGuildService) ListRoles(
	ctx context.Context,
	guildID string,
) ([]models.GuildRole, error) {
	log.Printf("📋 Starting to list roles for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	discordRoles, err := s.discordClient.GetGuildRoles(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles from Discord: %w", err)
	}

	roles := make([]models.GuildRole, 0, len(discordRoles))
	for _, role := range discordRoles {
		roles = append(roles, models.GuildRole{
			ID:       role.ID,
			Name:     role.Name,
			Color:    role.Color,
			Position: role.Position,
		})
	}
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].Position > roles[j].Position
	})

	log.Printf("📋 Completed successfully - listed %d roles for guild: %s", len(roles), guildID)
	return roles, nil
}
