package logsrouting

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
)

type LogsRoutingService struct {
	logsRoutingRepo *db.PostgresLogsRoutingRepository
}

func NewLogsRoutingService(repo *db.PostgresLogsRoutingRepository) *LogsRoutingService {
	return &LogsRoutingService{logsRoutingRepo: repo}
}

func (s *LogsRoutingService) UpsertLogsRouting(
	ctx context.Context,
	routing *models.LogsRouting,
) (*models.LogsRouting, error) {
	log.Printf("📋 Starting to upsert logs routing for guild: %s", routing.GuildID)
	if !core.IsValidSnowflake(routing.GuildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	saved, err := s.logsRoutingRepo.UpsertLogsRouting(ctx, routing)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert logs routing: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted logs routing for guild: %s", saved.GuildID)
	return saved, nil
}

func (s *LogsRoutingService) GetLogsRouting(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.LogsRouting], error) {
	log.Printf("📋 Starting to get logs routing for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return mo.None[*models.LogsRouting](), fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeRouting, err := s.logsRoutingRepo.GetLogsRoutingByGuildID(ctx, guildID)
	if err != nil {
		return mo.None[*models.LogsRouting](), fmt.Errorf("failed to get logs routing: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved logs routing for guild: %s", guildID)
	return maybeRouting, nil
}
