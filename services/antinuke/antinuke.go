package antinuke

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
)

type AntiNukeService struct {
	limitsRepo *db.PostgresAntiNukeLimitsRepository
}

func NewAntiNukeService(repo *db.PostgresAntiNukeLimitsRepository) *AntiNukeService {
	return &AntiNukeService{limitsRepo: repo}
}

func (s *AntiNukeService) UpsertAntiNukeLimits(
	ctx context.Context,
	limits *models.AntiNukeLimits,
) (*models.AntiNukeLimits, error) {
	log.Printf("📋 Starting to upsert anti-nuke limits for guild: %s", limits.GuildID)
	if !core.IsValidSnowflake(limits.GuildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	// Hour windows below minute windows are legal but almost always a
	// misconfiguration, so they get logged rather than rejected.
	for _, warning := range limits.Warnings() {
		log.Printf("⚠️ Anti-nuke limits for guild %s: %s", limits.GuildID, warning)
	}

	saved, err := s.limitsRepo.UpsertAntiNukeLimits(ctx, limits)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert anti-nuke limits: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted anti-nuke limits for guild: %s", saved.GuildID)
	return saved, nil
}

func (s *AntiNukeService) GetAntiNukeLimits(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.AntiNukeLimits], error) {
	log.Printf("📋 Starting to get anti-nuke limits for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return mo.None[*models.AntiNukeLimits](), fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeLimits, err := s.limitsRepo.GetAntiNukeLimitsByGuildID(ctx, guildID)
	if err != nil {
		return mo.None[*models.AntiNukeLimits](), fmt.Errorf("failed to get anti-nuke limits: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved anti-nuke limits for guild: %s", guildID)
	return maybeLimits, nil
}
