package joingate

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
)

type JoinGateService struct {
	joinGatesRepo *db.PostgresJoinGatesRepository
}

func NewJoinGateService(repo *db.PostgresJoinGatesRepository) *JoinGateService {
	return &JoinGateService{joinGatesRepo: repo}
}

func (s *JoinGateService) UpsertJoinGate(
	ctx context.Context,
	gate *models.JoinGate,
) (*models.JoinGate, error) {
	log.Printf("📋 Starting to upsert join gate for guild: %s", gate.GuildID)
	if !core.IsValidSnowflake(gate.GuildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	saved, err := s.joinGatesRepo.UpsertJoinGate(ctx, gate)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert join gate: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted join gate for guild: %s", saved.GuildID)
	return saved, nil
}

func (s *JoinGateService) GetJoinGate(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.JoinGate], error) {
	log.Printf("📋 Starting to get join gate for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return mo.None[*models.JoinGate](), fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeGate, err := s.joinGatesRepo.GetJoinGateByGuildID(ctx, guildID)
	if err != nil {
		return mo.None[*models.JoinGate](), fmt.Errorf("failed to get join gate: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved join gate for guild: %s", guildID)
	return maybeGate, nil
}
