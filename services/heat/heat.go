package heat

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
)

type HeatService struct {
	heatConfigsRepo *db.PostgresHeatConfigsRepository
}

func NewHeatService(repo *db.PostgresHeatConfigsRepository) *HeatService {
	return &HeatService{heatConfigsRepo: repo}
}

func (s *HeatService) UpsertHeatConfig(
	ctx context.Context,
	cfg *models.HeatConfig,
) (*models.HeatConfig, error) {
	log.Printf("📋 Starting to upsert heat config for guild: %s", cfg.GuildID)
	if !core.IsValidSnowflake(cfg.GuildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	// A disabled config may hold any threshold ordering while the operator
	// drafts it; only activation requires a coherent escalation ladder.
	if cfg.Enabled {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("cannot enable heat tracking: %w", err)
		}
	}

	saved, err := s.heatConfigsRepo.UpsertHeatConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert heat config: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted heat config for guild: %s", saved.GuildID)
	return saved, nil
}

func (s *HeatService) GetHeatConfig(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.HeatConfig], error) {
	log.Printf("📋 Starting to get heat config for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return mo.None[*models.HeatConfig](), fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeConfig, err := s.heatConfigsRepo.GetHeatConfigByGuildID(ctx, guildID)
	if err != nil {
		return mo.None[*models.HeatConfig](), fmt.Errorf("failed to get heat config: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved heat config for guild: %s", guildID)
	return maybeConfig, nil
}
