package setup

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ruebydash/models"
	"ruebydash/services"
)

// passthroughTxManager runs the transactional function directly, standing in
// for a real transaction in unit tests.
type passthroughTxManager struct {
	calls int
}

func (p *passthroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func (p *passthroughTxManager) BeginTransaction(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

func (p *passthroughTxManager) CommitTransaction(ctx context.Context) error { return nil }

func (p *passthroughTxManager) RollbackTransaction(ctx context.Context) error { return nil }

const (
	testGuildID   = "904467951327887411"
	testChannelID = "704467951327887400"
	testRoleID    = "804467951327887433"
)

// setupUseCaseMocks contains all mock dependencies
type setupUseCaseMocks struct {
	txManager     *passthroughTxManager
	guildSettings *services.MockGuildSettingsService
	verification  *services.MockVerificationService
	joinGate      *services.MockJoinGateService
	logsRouting   *services.MockLogsRoutingService
	permits       *services.MockPermitsService
}

func setupTest() (*SetupUseCase, *setupUseCaseMocks) {
	mocks := &setupUseCaseMocks{
		txManager:     &passthroughTxManager{},
		guildSettings: new(services.MockGuildSettingsService),
		verification:  new(services.MockVerificationService),
		joinGate:      new(services.MockJoinGateService),
		logsRouting:   new(services.MockLogsRoutingService),
		permits:       new(services.MockPermitsService),
	}
	useCase := NewSetupUseCase(
		mocks.txManager,
		mocks.guildSettings,
		mocks.verification,
		mocks.joinGate,
		mocks.logsRouting,
		mocks.permits,
	)
	return useCase, mocks
}

func basicDraft() *models.SetupDraft {
	return &models.SetupDraft{
		Prefix:   "?",
		Timezone: "Europe/Sofia",
		JoinGate: models.SetupJoinGate{
			Enabled:           true,
			AccountAgeMinDays: 14,
			AvatarRequired:    true,
			BotAdditionPolicy: models.BotAdditionVerifiedOnly,
		},
		Logs: models.SetupLogs{
			AntinukeChannelID: testChannelID,
			FallbackChannelID: testChannelID,
		},
		Permits: []models.PermitGrant{
			{RoleID: testRoleID, Level: models.PermitL3},
		},
	}
}

func TestCompleteSetup_PersistsAllEntities(t *testing.T) {
	useCase, mocks := setupTest()
	ctx := context.Background()
	draft := basicDraft()

	mocks.guildSettings.On("UpsertGuildSettings", mock.Anything, mock.MatchedBy(func(s *models.GuildSettings) bool {
		return s.GuildID == testGuildID && s.Prefix == "?" && s.Timezone == "Europe/Sofia"
	})).Return(&models.GuildSettings{GuildID: testGuildID}, nil)
	mocks.verification.On("UpsertVerificationSettings", mock.Anything, mock.MatchedBy(func(v *models.VerificationSettings) bool {
		return v.GuildID == testGuildID && !v.Enabled
	})).Return(&models.VerificationSettings{GuildID: testGuildID}, nil)
	mocks.joinGate.On("UpsertJoinGate", mock.Anything, mock.MatchedBy(func(g *models.JoinGate) bool {
		return g.GuildID == testGuildID &&
			g.AccountAgeMinDays == 14 &&
			g.AvatarRequired &&
			g.BotAdditionPolicy == models.BotAdditionVerifiedOnly
	})).Return(&models.JoinGate{GuildID: testGuildID}, nil)
	mocks.logsRouting.On("UpsertLogsRouting", mock.Anything, mock.MatchedBy(func(l *models.LogsRouting) bool {
		return l.GuildID == testGuildID &&
			l.AntinukeChannelID != nil && *l.AntinukeChannelID == testChannelID &&
			l.ModerationChannelID == nil
	})).Return(&models.LogsRouting{GuildID: testGuildID}, nil)
	mocks.permits.On("ReplacePermits", mock.Anything, testGuildID, draft.Permits).Return(nil)

	err := useCase.CompleteSetup(ctx, testGuildID, draft)

	require.NoError(t, err)
	mocks.guildSettings.AssertExpectations(t)
	mocks.verification.AssertExpectations(t)
	mocks.joinGate.AssertExpectations(t)
	mocks.logsRouting.AssertExpectations(t)
	mocks.permits.AssertExpectations(t)
	// Verification was disabled, so no Discord traffic
	mocks.verification.AssertNotCalled(t, "SendVerificationPanel", mock.Anything, mock.Anything)
	mocks.verification.AssertNotCalled(t, "SetupLockdown", mock.Anything, mock.Anything)
}

func TestCompleteSetup_NormalizesDraftValues(t *testing.T) {
	useCase, mocks := setupTest()
	ctx := context.Background()
	draft := basicDraft()
	draft.Prefix = "toolong"
	draft.Timezone = "Mars/Olympus"
	draft.JoinGate.AccountAgeMinDays = -3
	draft.JoinGate.BotAdditionPolicy = "whatever"

	mocks.guildSettings.On("UpsertGuildSettings", mock.Anything, mock.MatchedBy(func(s *models.GuildSettings) bool {
		return s.Prefix == models.DefaultPrefix && s.Timezone == models.DefaultTimezone
	})).Return(&models.GuildSettings{GuildID: testGuildID}, nil)
	mocks.verification.On("UpsertVerificationSettings", mock.Anything, mock.Anything).
		Return(&models.VerificationSettings{GuildID: testGuildID}, nil)
	mocks.joinGate.On("UpsertJoinGate", mock.Anything, mock.MatchedBy(func(g *models.JoinGate) bool {
		return g.AccountAgeMinDays == models.DefaultAccountAgeMinDays &&
			g.BotAdditionPolicy == models.BotAdditionAllow &&
			g.AdvertisingProfileRule == models.AdvertisingIgnore
	})).Return(&models.JoinGate{GuildID: testGuildID}, nil)
	mocks.logsRouting.On("UpsertLogsRouting", mock.Anything, mock.Anything).
		Return(&models.LogsRouting{GuildID: testGuildID}, nil)
	mocks.permits.On("ReplacePermits", mock.Anything, testGuildID, mock.Anything).Return(nil)

	err := useCase.CompleteSetup(ctx, testGuildID, draft)

	require.NoError(t, err)
	mocks.guildSettings.AssertExpectations(t)
	mocks.joinGate.AssertExpectations(t)
}

func TestCompleteSetup_SendsPanelAndLockdown(t *testing.T) {
	useCase, mocks := setupTest()
	ctx := context.Background()
	draft := basicDraft()
	draft.Verification = models.SetupVerification{
		Enabled:   true,
		Mode:      models.VerificationModeCaptcha,
		ChannelID: testChannelID,
		RoleID:    testRoleID,
		Lockdown:  true,
	}

	mocks.guildSettings.On("UpsertGuildSettings", mock.Anything, mock.Anything).
		Return(&models.GuildSettings{GuildID: testGuildID}, nil)
	mocks.verification.On("UpsertVerificationSettings", mock.Anything, mock.MatchedBy(func(v *models.VerificationSettings) bool {
		return v.Enabled &&
			v.Mode == models.VerificationModeCaptcha &&
			v.VerificationChannelID != nil && *v.VerificationChannelID == testChannelID &&
			v.VerifiedRoleID != nil && *v.VerifiedRoleID == testRoleID
	})).Return(&models.VerificationSettings{GuildID: testGuildID}, nil)
	mocks.joinGate.On("UpsertJoinGate", mock.Anything, mock.Anything).
		Return(&models.JoinGate{GuildID: testGuildID}, nil)
	mocks.logsRouting.On("UpsertLogsRouting", mock.Anything, mock.Anything).
		Return(&models.LogsRouting{GuildID: testGuildID}, nil)
	mocks.permits.On("ReplacePermits", mock.Anything, testGuildID, mock.Anything).Return(nil)
	mocks.verification.On("SendVerificationPanel", mock.Anything, testGuildID).Return(nil)
	mocks.verification.On("SetupLockdown", mock.Anything, testGuildID).Return(nil)

	err := useCase.CompleteSetup(ctx, testGuildID, draft)

	require.NoError(t, err)
	mocks.verification.AssertExpectations(t)
}

func TestCompleteSetup_DiscordFailureAfterPersist(t *testing.T) {
	useCase, mocks := setupTest()
	ctx := context.Background()
	draft := basicDraft()
	draft.Verification.Enabled = true
	draft.Verification.ChannelID = testChannelID

	mocks.guildSettings.On("UpsertGuildSettings", mock.Anything, mock.Anything).
		Return(&models.GuildSettings{GuildID: testGuildID}, nil)
	mocks.verification.On("UpsertVerificationSettings", mock.Anything, mock.Anything).
		Return(&models.VerificationSettings{GuildID: testGuildID}, nil)
	mocks.joinGate.On("UpsertJoinGate", mock.Anything, mock.Anything).
		Return(&models.JoinGate{GuildID: testGuildID}, nil)
	mocks.logsRouting.On("UpsertLogsRouting", mock.Anything, mock.Anything).
		Return(&models.LogsRouting{GuildID: testGuildID}, nil)
	mocks.permits.On("ReplacePermits", mock.Anything, testGuildID, mock.Anything).Return(nil)
	mocks.verification.On("SendVerificationPanel", mock.Anything, testGuildID).
		Return(fmt.Errorf("discord is down"))

	err := useCase.CompleteSetup(ctx, testGuildID, draft)

	// Persistence succeeded; the Discord failure still surfaces
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setup saved but")
	mocks.permits.AssertExpectations(t)
	mocks.verification.AssertNotCalled(t, "SetupLockdown", mock.Anything, mock.Anything)
}

func TestCompleteSetup_PersistFailureStopsEverything(t *testing.T) {
	useCase, mocks := setupTest()
	ctx := context.Background()
	draft := basicDraft()
	draft.Verification.Enabled = true

	mocks.guildSettings.On("UpsertGuildSettings", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("database unavailable"))

	err := useCase.CompleteSetup(ctx, testGuildID, draft)

	require.Error(t, err)
	mocks.verification.AssertNotCalled(t, "SendVerificationPanel", mock.Anything, mock.Anything)
}

func TestCompleteSetup_InvalidGuildID(t *testing.T) {
	useCase, mocks := setupTest()

	err := useCase.CompleteSetup(context.Background(), "not-a-snowflake", basicDraft())

	require.Error(t, err)
	assert.Equal(t, 0, mocks.txManager.calls)
}
