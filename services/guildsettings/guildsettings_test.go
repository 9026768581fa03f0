package guildsettings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruebydash/db"
	"ruebydash/models"
	"ruebydash/testutils"
)

func setupGuildSettingsTest(t *testing.T) (*GuildSettingsService, func()) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err)

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to create database connection")

	repo := db.NewPostgresGuildSettingsRepository(dbConn, cfg.DatabaseSchema)
	service := NewGuildSettingsService(repo)

	cleanup := func() {
		dbConn.Close()
	}
	return service, cleanup
}

func TestGuildSettings_UpsertAndGet(t *testing.T) {
	service, cleanup := setupGuildSettingsTest(t)
	defer cleanup()
	ctx := context.Background()
	guildID := testutils.GenerateGuildID()

	saved, err := service.UpsertGuildSettings(ctx, &models.GuildSettings{
		GuildID:  guildID,
		Prefix:   "?",
		Timezone: "Europe/Sofia",
	})
	require.NoError(t, err)
	assert.Equal(t, "?", saved.Prefix)
	assert.False(t, saved.CreatedAt.IsZero())

	// Second save overwrites prefix and timezone
	muteRole := testutils.GenerateRoleID()
	saved, err = service.UpsertGuildSettings(ctx, &models.GuildSettings{
		GuildID:    guildID,
		Prefix:     "!",
		Timezone:   "UTC",
		MuteRoleID: &muteRole,
	})
	require.NoError(t, err)
	assert.Equal(t, "!", saved.Prefix)
	require.NotNil(t, saved.MuteRoleID)
	assert.Equal(t, muteRole, *saved.MuteRoleID)

	maybeSettings, err := service.GetGuildSettings(ctx, guildID)
	require.NoError(t, err)
	settings, ok := maybeSettings.Get()
	require.True(t, ok)
	assert.Equal(t, "!", settings.Prefix)
}

func TestGetGuildSettings_NotConfigured(t *testing.T) {
	service, cleanup := setupGuildSettingsTest(t)
	defer cleanup()

	maybeSettings, err := service.GetGuildSettings(context.Background(), testutils.GenerateGuildID())
	require.NoError(t, err)
	assert.True(t, maybeSettings.IsAbsent())
}

func TestGuildSettings_InvalidGuildID(t *testing.T) {
	service, cleanup := setupGuildSettingsTest(t)
	defer cleanup()

	_, err := service.UpsertGuildSettings(context.Background(), &models.GuildSettings{GuildID: "abc"})
	require.Error(t, err)

	_, err = service.GetGuildSettings(context.Background(), "abc")
	require.Error(t, err)
}
