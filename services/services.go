package services

import (
	"context"

	"github.com/samber/mo"

	"ruebydash/models"
)

// UsersService defines the interface for user-related operations
type UsersService interface {
	GetOrCreateUser(ctx context.Context, authProvider, authProviderID string) (*models.User, error)
}

// GuildSettingsService defines the interface for core guild settings operations
type GuildSettingsService interface {
	UpsertGuildSettings(ctx context.Context, settings *models.GuildSettings) (*models.GuildSettings, error)
	GetGuildSettings(ctx context.Context, guildID string) (mo.Option[*models.GuildSettings], error)
}

// AntiNukeService defines the interface for anti-nuke limit operations
type AntiNukeService interface {
	UpsertAntiNukeLimits(ctx context.Context, limits *models.AntiNukeLimits) (*models.AntiNukeLimits, error)
	GetAntiNukeLimits(ctx context.Context, guildID string) (mo.Option[*models.AntiNukeLimits], error)
}

// JoinGateService defines the interface for join gate operations
type JoinGateService interface {
	UpsertJoinGate(ctx context.Context, gate *models.JoinGate) (*models.JoinGate, error)
	GetJoinGate(ctx context.Context, guildID string) (mo.Option[*models.JoinGate], error)
}

// VerificationService defines the interface for verification settings and the
// Discord-side verification actions
type VerificationService interface {
	UpsertVerificationSettings(
		ctx context.Context,
		settings *models.VerificationSettings,
	) (*models.VerificationSettings, error)
	GetVerificationSettings(ctx context.Context, guildID string) (mo.Option[*models.VerificationSettings], error)
	SendVerificationPanel(ctx context.Context, guildID string) error
	SetupLockdown(ctx context.Context, guildID string) error
}

// HeatService defines the interface for heat configuration operations
type HeatService interface {
	UpsertHeatConfig(ctx context.Context, cfg *models.HeatConfig) (*models.HeatConfig, error)
	GetHeatConfig(ctx context.Context, guildID string) (mo.Option[*models.HeatConfig], error)
}

// LogsRoutingService defines the interface for log channel routing operations
type LogsRoutingService interface {
	UpsertLogsRouting(ctx context.Context, routing *models.LogsRouting) (*models.LogsRouting, error)
	GetLogsRouting(ctx context.Context, guildID string) (mo.Option[*models.LogsRouting], error)
}

// PermitsService defines the interface for permit role grant operations
type PermitsService interface {
	AddPermit(ctx context.Context, guildID string, grant models.PermitGrant) error
	RemovePermit(ctx context.Context, guildID, permitID string) (bool, error)
	ListPermits(ctx context.Context, guildID string) ([]*models.Permit, error)
	ReplacePermits(ctx context.Context, guildID string, grants []models.PermitGrant) error
}

// PanicService defines the interface for reading panic mode state
type PanicService interface {
	GetPanicState(ctx context.Context, guildID string) (mo.Option[*models.PanicState], error)
}

// DiscordGuildService defines the interface for listing guild channels and roles
type DiscordGuildService interface {
	ListTextChannels(ctx context.Context, guildID string) ([]models.GuildChannel, error)
	ListRoles(ctx context.Context, guildID string) ([]models.GuildRole, error)
}

// TransactionManager defines the interface for managing database transactions
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	BeginTransaction(ctx context.Context) (context.Context, error)
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error
}
