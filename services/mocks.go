package services

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"ruebydash/models"
)

// MockUsersService is a mock implementation of UsersService
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) GetOrCreateUser(
	ctx context.Context,
	authProvider, authProviderID string,
) (*models.User, error) {
	args := m.Called(ctx, authProvider, authProviderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockGuildSettingsService is a mock implementation of GuildSettingsService
type MockGuildSettingsService struct {
	mock.Mock
}

func (m *MockGuildSettingsService) UpsertGuildSettings(
	ctx context.Context,
	settings *models.GuildSettings,
) (*models.GuildSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsService) GetGuildSettings(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.GuildSettings], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.GuildSettings]), args.Error(1)
}

// MockAntiNukeService is a mock implementation of AntiNukeService
type MockAntiNukeService struct {
	mock.Mock
}

func (m *MockAntiNukeService) UpsertAntiNukeLimits(
	ctx context.Context,
	limits *models.AntiNukeLimits,
) (*models.AntiNukeLimits, error) {
	args := m.Called(ctx, limits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AntiNukeLimits), args.Error(1)
}

func (m *MockAntiNukeService) GetAntiNukeLimits(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.AntiNukeLimits], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.AntiNukeLimits]), args.Error(1)
}

// MockJoinGateService is a mock implementation of JoinGateService
type MockJoinGateService struct {
	mock.Mock
}

func (m *MockJoinGateService) UpsertJoinGate(
	ctx context.Context,
	gate *models.JoinGate,
) (*models.JoinGate, error) {
	args := m.Called(ctx, gate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JoinGate), args.Error(1)
}

func (m *MockJoinGateService) GetJoinGate(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.JoinGate], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.JoinGate]), args.Error(1)
}

// MockVerificationService is a mock implementation of VerificationService
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) UpsertVerificationSettings(
	ctx context.Context,
	settings *models.VerificationSettings,
) (*models.VerificationSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationSettings), args.Error(1)
}

func (m *MockVerificationService) GetVerificationSettings(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.VerificationSettings], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.VerificationSettings]), args.Error(1)
}

func (m *MockVerificationService) SendVerificationPanel(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockVerificationService) SetupLockdown(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

// MockHeatService is a mock implementation of HeatService
type MockHeatService struct {
	mock.Mock
}

func (m *MockHeatService) UpsertHeatConfig(
	ctx context.Context,
	cfg *models.HeatConfig,
) (*models.HeatConfig, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HeatConfig), args.Error(1)
}

func (m *MockHeatService) GetHeatConfig(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.HeatConfig], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.HeatConfig]), args.Error(1)
}

// MockLogsRoutingService is a mock implementation of LogsRoutingService
type MockLogsRoutingService struct {
	mock.Mock
}

func (m *MockLogsRoutingService) UpsertLogsRouting(
	ctx context.Context,
	routing *models.LogsRouting,
) (*models.LogsRouting, error) {
	args := m.Called(ctx, routing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LogsRouting), args.Error(1)
}

func (m *MockLogsRoutingService) GetLogsRouting(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.LogsRouting], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.LogsRouting]), args.Error(1)
}

// MockPermitsService is a mock implementation of PermitsService
type MockPermitsService struct {
	mock.Mock
}

func (m *MockPermitsService) AddPermit(ctx context.Context, guildID string, grant models.PermitGrant) error {
	args := m.Called(ctx, guildID, grant)
	return args.Error(0)
}

func (m *MockPermitsService) RemovePermit(ctx context.Context, guildID, permitID string) (bool, error) {
	args := m.Called(ctx, guildID, permitID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermitsService) ListPermits(ctx context.Context, guildID string) ([]*models.Permit, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Permit), args.Error(1)
}

func (m *MockPermitsService) ReplacePermits(
	ctx context.Context,
	guildID string,
	grants []models.PermitGrant,
) error {
	args := m.Called(ctx, guildID, grants)
	return args.Error(0)
}

// MockPanicService is a mock implementation of PanicService
type MockPanicService struct {
	mock.Mock
}

func (m *MockPanicService) GetPanicState(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.PanicState], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.PanicState]), args.Error(1)
}

// MockDiscordGuildService is a mock implementation of DiscordGuildService
type MockDiscordGuildService struct {
	mock.Mock
}

func (m *MockDiscordGuildService) ListTextChannels(
	ctx context.Context,
	guildID string,
) ([]models.GuildChannel, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GuildChannel), args.Error(1)
}

func (m *MockDiscordGuildService) ListRoles(
	ctx context.Context,
	guildID string,
) ([]models.GuildRole, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GuildRole), args.Error(1)
}
