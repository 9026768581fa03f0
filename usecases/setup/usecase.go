package setup

import (
	"context"
	"fmt"
	"log"
	"time"

	"ruebydash/core"
	"ruebydash/forms"
	"ruebydash/models"
	"ruebydash/services"
)

// SetupUseCase persists the setup wizard's combined draft. All database
// writes happen in one transaction; the Discord follow-ups (panel message,
// lockdown) run after commit and cannot undo the saved configuration.
type SetupUseCase struct {
	txManager            services.TransactionManager
	guildSettingsService services.GuildSettingsService
	verificationService  services.VerificationService
	joinGateService      services.JoinGateService
	logsRoutingService   services.LogsRoutingService
	permitsService       services.PermitsService
}

func NewSetupUseCase(
	txManager services.TransactionManager,
	guildSettingsService services.GuildSettingsService,
	verificationService services.VerificationService,
	joinGateService services.JoinGateService,
	logsRoutingService services.LogsRoutingService,
	permitsService services.PermitsService,
) *SetupUseCase {
	return &SetupUseCase{
		txManager:            txManager,
		guildSettingsService: guildSettingsService,
		verificationService:  verificationService,
		joinGateService:      joinGateService,
		logsRoutingService:   logsRoutingService,
		permitsService:       permitsService,
	}
}

func (u *SetupUseCase) CompleteSetup(ctx context.Context, guildID string, draft *models.SetupDraft) error {
	log.Printf("📋 Starting setup completion for guild: %s", guildID)
	if !core.IsValidSnowflake(guildID) {
		return fmt.Errorf("guild ID must be a valid Discord snowflake")
	}

	settings := draftGuildSettings(guildID, draft)
	verification := draftVerification(guildID, draft)
	joinGate := draftJoinGate(guildID, draft)
	logsRouting := draftLogsRouting(guildID, draft)

	err := u.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := u.guildSettingsService.UpsertGuildSettings(txCtx, settings); err != nil {
			return fmt.Errorf("failed to save guild settings: %w", err)
		}
		if _, err := u.verificationService.UpsertVerificationSettings(txCtx, verification); err != nil {
			return fmt.Errorf("failed to save verification settings: %w", err)
		}
		if _, err := u.joinGateService.UpsertJoinGate(txCtx, joinGate); err != nil {
			return fmt.Errorf("failed to save join gate: %w", err)
		}
		if _, err := u.logsRoutingService.UpsertLogsRouting(txCtx, logsRouting); err != nil {
			return fmt.Errorf("failed to save logs routing: %w", err)
		}
		if err := u.permitsService.ReplacePermits(txCtx, guildID, draft.Permits); err != nil {
			return fmt.Errorf("failed to save permits: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to persist setup draft: %w", err)
	}

	// Configuration is committed at this point. The Discord follow-ups are
	// best-effort: a failure surfaces to the caller but leaves the saved
	// config in place.
	if draft.Verification.Enabled {
		if err := u.verificationService.SendVerificationPanel(ctx, guildID); err != nil {
			return fmt.Errorf("setup saved but sending verification panel failed: %w", err)
		}
		if draft.Verification.Lockdown {
			if err := u.verificationService.SetupLockdown(ctx, guildID); err != nil {
				return fmt.Errorf("setup saved but lockdown failed: %w", err)
			}
		}
	}

	log.Printf("📋 Completed successfully - setup for guild: %s", guildID)
	return nil
}

func draftGuildSettings(guildID string, draft *models.SetupDraft) *models.GuildSettings {
	prefix := draft.Prefix
	if prefix == "" || len(prefix) > models.MaxPrefixLength {
		prefix = models.DefaultPrefix
	}
	timezone := draft.Timezone
	if _, err := time.LoadLocation(timezone); timezone == "" || err != nil {
		timezone = models.DefaultTimezone
	}
	return &models.GuildSettings{
		GuildID:  guildID,
		Prefix:   prefix,
		Timezone: timezone,
	}
}

func draftVerification(guildID string, draft *models.SetupDraft) *models.VerificationSettings {
	v := draft.Verification
	return &models.VerificationSettings{
		GuildID:               guildID,
		Enabled:               v.Enabled,
		Mode:                  forms.ParseEnum(v.Mode, models.VerificationModeButton, models.VerificationModes),
		Target:                models.VerificationTargetAll,
		VerificationChannelID: optionalID(v.ChannelID),
		VerifiedRoleID:        optionalID(v.RoleID),
		ActionOnFail:          forms.ParseEnum(v.FailAction, models.VerificationFailNone, models.VerificationFailActions),
		CaptchaTimeout:        models.DefaultCaptchaTimeout,
		CaptchaMaxAttempts:    models.DefaultCaptchaMaxAttempts,
	}
}

func draftJoinGate(guildID string, draft *models.SetupDraft) *models.JoinGate {
	g := draft.JoinGate
	accountAge := g.AccountAgeMinDays
	if accountAge <= 0 {
		accountAge = models.DefaultAccountAgeMinDays
	}
	return &models.JoinGate{
		GuildID:                guildID,
		Enabled:                g.Enabled,
		AccountAgeMinDays:      accountAge,
		AvatarRequired:         g.AvatarRequired,
		BotAdditionPolicy:      forms.ParseEnum(g.BotAdditionPolicy, models.BotAdditionAllow, models.BotAdditionPolicies),
		UnverifiedBotPolicy:    models.UnverifiedBotKick,
		AdvertisingProfileRule: models.AdvertisingIgnore,
		ActionAccountAge:       string(models.PolicyQuarantine),
		ActionAvatar:           string(models.PolicyQuarantine),
		ActionBot:              string(models.PolicyQuarantine),
		ActionAdvertising:      string(models.PolicyQuarantine),
	}
}

func draftLogsRouting(guildID string, draft *models.SetupDraft) *models.LogsRouting {
	l := draft.Logs
	return &models.LogsRouting{
		GuildID:               guildID,
		AntinukeChannelID:     optionalID(l.AntinukeChannelID),
		ModerationChannelID:   optionalID(l.ModerationChannelID),
		VerificationChannelID: optionalID(l.VerificationChannelID),
		FallbackChannelID:     optionalID(l.FallbackChannelID),
	}
}

func optionalID(id string) *string {
	if !core.IsValidSnowflake(id) {
		return nil
	}
	return &id
}
