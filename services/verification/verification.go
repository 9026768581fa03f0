package verification

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"ruebydash/clients"
	"ruebydash/core"
	"ruebydash/db"
	"ruebydash/models"
)

// Discord permission bits used by the lockdown routine.
const (
	PermissionViewChannel        = int64(1) << 10
	PermissionReadMessageHistory = int64(1) << 16
)

const (
	panelEmbedColor  = 0xE11D48
	panelFooterText  = "Rueby Security"
	panelButtonID    = "verify"
	panelButtonLabel = "Verify Me"
)

type VerificationService struct {
	verificationRepo *db.PostgresVerificationSettingsRepository
	discordClient    clients.DiscordClient
}

func NewVerificationService(
	repo *db.PostgresVerificationSettingsRepository,
	discordClient clients.DiscordClient,
) *VerificationService {
	return &VerificationService{
		verificationRepo: repo,
		discordClient:    discordClient,
	}
}

func (s *VerificationService) UpsertVerificationSettings(
	ctx context.Context,
	settings *models.VerificationSettings,
) (*models.VerificationSettings, error) {
	log.Printf("📋 Starting to upsert verification settings for guild: %s", settings.GuildID)
	if !core.IsValidSnowflake(settings.GuildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	saved, err := s.verificationRepo.UpsertVerificationSettings(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert verification settings: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted verification settings for guild: %s", saved.GuildID)
	return saved, nil
}

func (s *VerificationService) GetVerificationSettings(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.VerificationSettings], error) {
	log.Printf("📋 Starting to get verification settings for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return mo.None[*models.VerificationSettings](), fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeSettings, err := s.verificationRepo.GetVerificationSettingsByGuildID(ctx, guildID)
	if err != nil {
		return mo.None[*models.VerificationSettings](), fmt.Errorf("failed to get verification settings: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved verification settings for guild: %s", guildID)
	return maybeSettings, nil
}

// SendVerificationPanel posts the verification embed with its button into the
// configured verification channel. Requires verification to be enabled and a
// channel to be configured; a Discord failure surfaces as an error with no
// retry.
func (s *VerificationService) SendVerificationPanel(ctx context.Context, guildID string) error {
	log.Printf("📋 Starting to send verification panel for guild: %s", guildID)

	settings, err := s.requireSettings(ctx, guildID)
	if err != nil {
		return err
	}
	if !settings.Enabled {
		return fmt.Errorf("verification is not enabled for guild %s", guildID)
	}
	if settings.VerificationChannelID == nil {
		return fmt.Errorf("no verification channel configured for guild %s", guildID)
	}

	description := "Click the button below to verify yourself and gain access to the server."
	if settings.WelcomeMessage != nil && *settings.WelcomeMessage != "" {
		description = *settings.WelcomeMessage
	}

	message := &clients.ChannelMessage{
		Embed: &clients.MessageEmbed{
			Title:       "Server Verification",
			Description: description,
			Color:       panelEmbedColor,
			FooterText:  panelFooterText,
		},
		Buttons: []clients.MessageButton{
			{Label: panelButtonLabel, CustomID: panelButtonID},
		},
	}
	if err := s.discordClient.PostMessage(ctx, *settings.VerificationChannelID, message); err != nil {
		return fmt.Errorf("failed to send verification panel: %w", err)
	}

	log.Printf("📋 Completed successfully - sent verification panel for guild: %s", guildID)
	return nil
}

// SetupLockdown strips VIEW_CHANNEL from @everyone, grants it to the verified
// role, and opens the verification channel to @everyone so unverified members
// can only see the panel. Each role is patched only when its bitmask would
// change, so re-running is a no-op.
func (s *VerificationService) SetupLockdown(ctx context.Context, guildID string) error {
	log.Printf("📋 Starting lockdown setup for guild: %s", guildID)

	settings, err := s.requireSettings(ctx, guildID)
	if err != nil {
		return err
	}
	if settings.VerifiedRoleID == nil {
		return fmt.Errorf("no verified role configured for guild %s", guildID)
	}
	if settings.VerificationChannelID == nil {
		return fmt.Errorf("no verification channel configured for guild %s", guildID)
	}
	verifiedRoleID := *settings.VerifiedRoleID
	verificationChannelID := *settings.VerificationChannelID

	roles, err := s.discordClient.GetGuildRoles(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to fetch roles for lockdown: %w", err)
	}

	for _, role := range roles {
		var want int64
		switch role.ID {
		case verifiedRoleID:
			want = role.Permissions | PermissionViewChannel
		case guildID: // the @everyone role shares the guild's ID
			want = role.Permissions &^ PermissionViewChannel
		default:
			continue
		}
		if want == role.Permissions {
			continue
		}
		if err := s.discordClient.PatchRolePermissions(ctx, guildID, role.ID, want); err != nil {
			return fmt.Errorf("failed to patch permissions for role %s: %w", role.ID, err)
		}
	}

	// Unverified members still need to see the panel itself.
	allow := PermissionViewChannel | PermissionReadMessageHistory
	if err := s.discordClient.PutChannelPermissionOverwrite(ctx, verificationChannelID, guildID, allow, 0); err != nil {
		return fmt.Errorf("failed to open verification channel: %w", err)
	}

	log.Printf("📋 Completed successfully - lockdown setup for guild: %s", guildID)
	return nil
}

func (s *VerificationService) requireSettings(
	ctx context.Context,
	guildID string,
) (*models.VerificationSettings, error) {
	if !core.IsValidSnowflake(guildID) {
		return nil, fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	maybeSettings, err := s.verificationRepo.GetVerificationSettingsByGuildID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get verification settings: %w", err)
	}
	settings, ok := maybeSettings.Get()
	if !ok {
		return nil, fmt.Errorf("verification is not configured for guild %s: %w", guildID, core.ErrNotFound)
	}
	return settings, nil
}
