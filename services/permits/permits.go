package permits

import (
	"context"
	"fmt"
	"log"

	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
	"ruebydash/services"
)

type PermitsService struct {
	permitsRepo *db.PostgresPermitsRepository
	txManager   services.TransactionManager
}

func NewPermitsService(
	repo *db.PostgresPermitsRepository,
	txManager services.TransactionManager,
) *PermitsService {
	return &PermitsService{
		permitsRepo: repo,
		txManager:   txManager,
	}
}

// AddPermit grants a permit level to a role. Granting a role that already
// holds a permit is a no-op, not an error.
func (s *PermitsService) AddPermit(ctx context.Context, guildID string, grant models.PermitGrant) error {
	log.Printf("📋 Starting to add permit for role %s in guild: %s", grant.RoleID, guildID)
	if !core.IsValidSnowflake(guildID) {
		return fmt.Errorf("guild ID must be a valid Discord snowflake")
	}
	if !core.IsValidSnowflake(grant.RoleID) {
		return fmt.Errorf("role ID must be a valid Discord snowflake")
	}
	if !models.IsValidPermitLevel(string(grant.Level)) {
		return fmt.Errorf("invalid permit level: %s", grant.Level)
	}

	permit := &models.Permit{
		ID:      core.NewID("pm"),
		GuildID: guildID,
		RoleID:  grant.RoleID,
		Level:   grant.Level,
	}
	if err := s.permitsRepo.CreatePermit(ctx, permit); err != nil {
		if db.IsUniqueViolation(err) {
			log.Printf("⚠️ Role %s already has a permit in guild %s, skipping", grant.RoleID, guildID)
			return nil
		}
		return fmt.Errorf("failed to create permit: %w", err)
	}

	log.Printf("📋 Completed successfully - added permit %s for role %s", permit.ID, grant.RoleID)
	return nil
}

// RemovePermit deletes a permit by ID. Returns false when no permit with that
// ID exists in the guild.
func (s *PermitsService) RemovePermit(ctx context.Context, guildID, permitID string) (bool, error) {
	log.Printf("📋 Starting to remove permit %s in guild: %s", permitID, guildID)
	if !core.IsValidSnowflake(guildID) {
		return false, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}
	if !core.IsValidULID(permitID) {
		return false, fmt.Errorf("permit ID must be a valid ULID")
	}

	deleted, err := s.permitsRepo.DeletePermitByID(ctx, permitID, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to delete permit: %w", err)
	}

	log.Printf("📋 Completed successfully - removed permit %s: %t", permitID, deleted)
	return deleted, nil
}

func (s *PermitsService) ListPermits(ctx context.Context, guildID string) ([]*models.Permit, error) {
	log.Printf("📋 Starting to list permits for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	guildPermits, err := s.permitsRepo.ListPermitsByGuildID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permits: %w", err)
	}

	log.Printf("📋 Completed successfully - listed %d permits for guild: %s", len(guildPermits), guildID)
	return guildPermits, nil
}

// ReplacePermits swaps the guild's entire permit set for the given grants.
// Delete and re-insert run in one transaction so readers never observe the
// empty intermediate state.
func (s *PermitsService) ReplacePermits(
	ctx context.Context,
	guildID string,
	grants []models.PermitGrant,
) error {
	log.Printf("📋 Starting to replace permits for guild: %s with %d grants", guildID, len(grants))
	if !core.IsValidSnowflake(guildID) {
		return fmt.Errorf("guild ID must be a valid Discord snowflake")
	}
	// Last grant wins for a repeated role. A duplicate insert would abort
	// the whole transaction, so the set is deduplicated up front.
	deduped := make([]models.PermitGrant, 0, len(grants))
	seenRoles := make(map[string]int)
	for _, grant := range grants {
		if !core.IsValidSnowflake(grant.RoleID) {
			return fmt.Errorf("role ID must be a valid Discord snowflake")
		}
		if !models.IsValidPermitLevel(string(grant.Level)) {
			return fmt.Errorf("invalid permit level: %s", grant.Level)
		}
		if idx, ok := seenRoles[grant.RoleID]; ok {
			log.Printf("⚠️ Duplicate role %s in permit grants for guild %s, keeping last", grant.RoleID, guildID)
			deduped[idx] = grant
			continue
		}
		seenRoles[grant.RoleID] = len(deduped)
		deduped = append(deduped, grant)
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.permitsRepo.DeletePermitsByGuildID(txCtx, guildID); err != nil {
			return fmt.Errorf("failed to clear existing permits: %w", err)
		}
		for _, grant := range deduped {
			permit := &models.Permit{
				ID:      core.NewID("pm"),
				GuildID: guildID,
				RoleID:  grant.RoleID,
				Level:   grant.Level,
			}
			if err := s.permitsRepo.CreatePermit(txCtx, permit); err != nil {
				return fmt.Errorf("failed to create permit: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace permits: %w", err)
	}

	log.Printf("📋 Completed successfully - replaced permits for guild: %s", guildID)
	return nil
}
