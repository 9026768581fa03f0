package panic

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
)

// PanicService exposes the bot-maintained panic mode flag to the dashboard.
// The dashboard never writes it; the bot flips it when raid thresholds trip.
type PanicService struct {
	panicStatesRepo *db.PostgresPanicStatesRepository
}

func NewPanicService(repo *db.PostgresPanicStatesRepository) *PanicService {
	return &PanicService{panicStatesRepo: repo}
}

func (s *PanicService) GetPanicState(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.PanicState], error) {
	log.Printf("📋 Starting to get panic state for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return mo.None[*models.PanicState](), fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeState, err := s.panicStatesRepo.GetPanicStateByGuildID(ctx, guildID)
	if err != nil {
		return mo.None[*models.PanicState](), fmt.Errorf("failed to get panic state: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved panic state for guild: %s", guildID)
	return maybeState, nil
}
