package guildsettings

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
)

type GuildSettingsService struct {
	settingsRepo *db.PostgresGuildSettingsRepository
}

func NewGuildSettingsService(repo *db.PostgresGuildSettingsRepository) *GuildSettingsService {
	return &GuildSettingsService{settingsRepo: repo}
}

func (s *GuildSettingsService) UpsertGuildSettings(
	ctx context.Context,
	settings *models.GuildSettings,
) (*models.GuildSettings, error) {
	log.Printf("📋 Starting to upsert guild settings for guild: %s", settings.GuildID)
	if !core.IsValidSnowflake(settings.GuildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	saved, err := s.settingsRepo.UpsertGuildSettings(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert guild settings: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted guild settings for guild: %s", saved.GuildID)
	return saved, nil
}

func (s *GuildSettingsService) GetGuildSettings(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.GuildSettings], error) {
	log.Printf("📋 Starting to get guild settings for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return mo.None[*models.GuildSettings](), fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeSettings, err := s.settingsRepo.GetGuildSettingsByGuildID(ctx, guildID)
	if err != nil {
		return mo.None[*models.GuildSettings](), fmt.Errorf("failed to get guild settings: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved guild settings for guild: %s", guildID)
	return maybeSettings, nil
}
