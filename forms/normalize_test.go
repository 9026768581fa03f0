package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"ruebydash/models"
)

const testGuildID = "123456789012345678"

func TestNormalizeGuildSettings(t *testing.T) {
	t.Run("keeps submitted values", func(t *testing.T) {
		values := url.Values{}
		values.Set("prefix", "?!")
		values.Set("timezone", "Europe/Paris")
		values.Set("muteRole", "234567890123456789")

		settings := NormalizeGuildSettings(testGuildID, values)
		assert.Equal(t, testGuildID, settings.GuildID)
		assert.Equal(t, "?!", settings.Prefix)
		assert.Equal(t, "Europe/Paris", settings.Timezone)
		assert.NotNil(t, settings.MuteRoleID)
		assert.Nil(t, settings.QuarantineRoleID)
	})

	t.Run("empty prefix falls back to default", func(t *testing.T) {
		settings := NormalizeGuildSettings(testGuildID, url.Values{})
		assert.Equal(t, models.DefaultPrefix, settings.Prefix)
	})

	t.Run("overlong prefix falls back to default", func(t *testing.T) {
		values := url.Values{}
		values.Set("prefix", "!!!!!!!")
		settings := NormalizeGuildSettings(testGuildID, values)
		assert.Equal(t, models.DefaultPrefix, settings.Prefix)
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		values := url.Values{}
		values.Set("timezone", "Mars/Olympus_Mons")
		settings := NormalizeGuildSettings(testGuildID, values)
		assert.Equal(t, models.DefaultTimezone, settings.Timezone)
	})
}

func TestNormalizeAntiNuke(t *testing.T) {
	t.Run("parses valid limits", func(t *testing.T) {
		values := url.Values{}
		values.Set("enabled", "on")
		values.Set("minute_ban", "2")
		values.Set("hour_ban", "8")

		limits := NormalizeAntiNuke(testGuildID, values)
		assert.True(t, limits.Enabled)
		assert.Equal(t, 2, limits.MinuteBan)
		assert.Equal(t, 8, limits.HourBan)
	})

	t.Run("malformed limit resolves to per-action default", func(t *testing.T) {
		values := url.Values{}
		values.Set("minute_ban", "abc")

		limits := NormalizeAntiNuke(testGuildID, values)
		assert.Equal(t, 5, limits.MinuteBan)
	})

	t.Run("absent fields resolve to defaults", func(t *testing.T) {
		limits := NormalizeAntiNuke(testGuildID, url.Values{})
		assert.False(t, limits.Enabled)
		assert.Equal(t, 5, limits.MinuteBan)
		assert.Equal(t, 20, limits.HourBan)
		assert.Equal(t, 10, limits.MinuteKick)
		assert.Equal(t, 50, limits.HourKick)
		assert.Equal(t, 3, limits.MinuteChannelDelete)
		assert.Equal(t, 10, limits.HourChannelDelete)
		assert.Equal(t, 3, limits.MinuteRoleDelete)
		assert.Equal(t, 10, limits.HourRoleDelete)
	})

	t.Run("zero is a valid limit, not falsy", func(t *testing.T) {
		values := url.Values{}
		values.Set("minute_channelDelete", "0")
		limits := NormalizeAntiNuke(testGuildID, values)
		assert.Equal(t, 0, limits.MinuteChannelDelete)
	})

	t.Run("response policies default to quarantine", func(t *testing.T) {
		values := url.Values{}
		values.Set("response_ban", "ban")
		values.Set("response_kick", "obliterate")

		limits := NormalizeAntiNuke(testGuildID, values)
		assert.Equal(t, "ban", limits.ResponseBan)
		assert.Equal(t, "quarantine", limits.ResponseKick)
		assert.Equal(t, "quarantine", limits.ResponseChannelDelete)
	})

	t.Run("hour below minute is kept, flagged as warning", func(t *testing.T) {
		values := url.Values{}
		values.Set("minute_ban", "10")
		values.Set("hour_ban", "2")

		limits := NormalizeAntiNuke(testGuildID, values)
		assert.Equal(t, 2, limits.HourBan)
		assert.Len(t, limits.Warnings(), 1)
	})
}

func TestNormalizeJoinGate(t *testing.T) {
	t.Run("defaults on empty submission", func(t *testing.T) {
		gate := NormalizeJoinGate(testGuildID, url.Values{})
		assert.False(t, gate.Enabled)
		assert.Equal(t, 7, gate.AccountAgeMinDays)
		assert.False(t, gate.AvatarRequired)
		assert.Equal(t, models.BotAdditionAllow, gate.BotAdditionPolicy)
		assert.Equal(t, models.AdvertisingIgnore, gate.AdvertisingProfileRule)
		assert.Equal(t, "quarantine", gate.ActionAccountAge)
	})

	t.Run("checkbox sentinel drives booleans", func(t *testing.T) {
		values := url.Values{}
		values.Set("enabled", "on")
		values.Set("avatarRequired", "true")

		gate := NormalizeJoinGate(testGuildID, values)
		assert.True(t, gate.Enabled)
		assert.False(t, gate.AvatarRequired, "'true' is not the sentinel")
	})

	t.Run("malformed account age falls back to 7", func(t *testing.T) {
		values := url.Values{}
		values.Set("accountAgeMinDays", "several")
		gate := NormalizeJoinGate(testGuildID, values)
		assert.Equal(t, 7, gate.AccountAgeMinDays)
	})

	t.Run("policies validate against their enums", func(t *testing.T) {
		values := url.Values{}
		values.Set("botAdditionPolicy", "verified_only")
		values.Set("unverifiedBotPolicy", "vaporize")
		values.Set("action_bot", "ban")

		gate := NormalizeJoinGate(testGuildID, values)
		assert.Equal(t, models.BotAdditionVerifiedOnly, gate.BotAdditionPolicy)
		assert.Equal(t, models.UnverifiedBotKick, gate.UnverifiedBotPolicy)
		assert.Equal(t, "ban", gate.ActionBot)
	})
}

func TestNormalizeVerification(t *testing.T) {
	t.Run("defaults on empty submission", func(t *testing.T) {
		settings := NormalizeVerification(testGuildID, url.Values{})
		assert.False(t, settings.Enabled)
		assert.Equal(t, models.VerificationModeButton, settings.Mode)
		assert.Equal(t, models.VerificationTargetAll, settings.Target)
		assert.Equal(t, models.VerificationFailNone, settings.ActionOnFail)
		assert.Equal(t, 300, settings.CaptchaTimeout)
		assert.Equal(t, 3, settings.CaptchaMaxAttempts)
		assert.Nil(t, settings.VerificationChannelID)
		assert.Nil(t, settings.VerifiedRoleID)
	})

	t.Run("zero captcha timeout resolves to default", func(t *testing.T) {
		values := url.Values{}
		values.Set("mode", "CAPTCHA")
		values.Set("captchaTimeout", "0")

		settings := NormalizeVerification(testGuildID, values)
		assert.Equal(t, models.VerificationModeCaptcha, settings.Mode)
		assert.Equal(t, 300, settings.CaptchaTimeout)
	})

	t.Run("channel and role stay optional even when mode is set", func(t *testing.T) {
		values := url.Values{}
		values.Set("enabled", "on")
		values.Set("mode", "BUTTON")

		settings := NormalizeVerification(testGuildID, values)
		assert.True(t, settings.Enabled)
		assert.Nil(t, settings.VerificationChannelID)
	})

	t.Run("messages pass through", func(t *testing.T) {
		values := url.Values{}
		values.Set("welcomeMessage", "Welcome to the server!")

		settings := NormalizeVerification(testGuildID, values)
		assert.NotNil(t, settings.WelcomeMessage)
		assert.Equal(t, "Welcome to the server!", *settings.WelcomeMessage)
		assert.Nil(t, settings.SuccessMessage)
	})
}

func TestNormalizeHeatConfig(t *testing.T) {
	t.Run("defaults on empty submission", func(t *testing.T) {
		cfg := NormalizeHeatConfig(testGuildID, url.Values{})
		assert.Equal(t, 1.0, cfg.WeightMessageRate)
		assert.Equal(t, 2.0, cfg.WeightDuplicates)
		assert.Equal(t, 3.0, cfg.WeightMassMentions)
		assert.Equal(t, 1.5, cfg.WeightLinks)
		assert.Equal(t, 0.5, cfg.WeightAttachments)
		assert.Equal(t, 1.0, cfg.WeightEmojiSpam)
		assert.Equal(t, 2.0, cfg.WeightSuspiciousUnicode)
		assert.Equal(t, 2.5, cfg.WeightWebhookMessages)
		assert.Equal(t, 10, cfg.ThresholdT1)
		assert.Equal(t, 25, cfg.ThresholdT2)
		assert.Equal(t, 50, cfg.ThresholdT3)
		assert.Equal(t, 100, cfg.ThresholdT4)
		assert.Equal(t, "warn", cfg.ActionT1)
		assert.Equal(t, "timeout", cfg.ActionT2)
		assert.Equal(t, "kick", cfg.ActionT3)
		assert.Equal(t, "ban", cfg.ActionT4)
		assert.Equal(t, 5, cfg.PanicThreshold)
		assert.Equal(t, 60, cfg.PanicWindowSeconds)
		assert.Equal(t, 10, cfg.PanicDurationMinutes)
	})

	t.Run("malformed weights resolve to defaults", func(t *testing.T) {
		values := url.Values{}
		values.Set("w_messageRate", "fast")
		values.Set("w_links", "2.25")

		cfg := NormalizeHeatConfig(testGuildID, values)
		assert.Equal(t, 1.0, cfg.WeightMessageRate)
		assert.Equal(t, 2.25, cfg.WeightLinks)
	})

	t.Run("arbitrary threshold orderings are accepted without error", func(t *testing.T) {
		values := url.Values{}
		values.Set("t_T1", "100")
		values.Set("t_T2", "50")
		values.Set("t_T3", "25")
		values.Set("t_T4", "10")

		cfg := NormalizeHeatConfig(testGuildID, values)
		assert.Equal(t, 100, cfg.ThresholdT1)
		assert.Equal(t, 10, cfg.ThresholdT4)
		assert.Error(t, cfg.Validate(), "ordering is a caller-side check")
	})

	t.Run("unknown actions resolve to tier defaults", func(t *testing.T) {
		values := url.Values{}
		values.Set("a_T1", "quarantine")
		values.Set("a_T4", "kick")

		cfg := NormalizeHeatConfig(testGuildID, values)
		assert.Equal(t, "warn", cfg.ActionT1, "quarantine is not a heat policy")
		assert.Equal(t, "kick", cfg.ActionT4)
	})
}

func TestNormalizeLogsRouting(t *testing.T) {
	t.Run("set and unset channels", func(t *testing.T) {
		values := url.Values{}
		values.Set("antinukeChannel", "345678901234567890")
		values.Set("fallbackChannelId", "456789012345678901")
		values.Set("automodChannel", "")

		routing := NormalizeLogsRouting(testGuildID, values)
		assert.NotNil(t, routing.AntinukeChannelID)
		assert.Equal(t, "345678901234567890", *routing.AntinukeChannelID)
		assert.NotNil(t, routing.FallbackChannelID)
		assert.Nil(t, routing.AutomodChannelID)
		assert.Nil(t, routing.PanicChannelID)
	})
}

func TestHeatConfigValidate(t *testing.T) {
	valid := NormalizeHeatConfig(testGuildID, url.Values{})
	assert.NoError(t, valid.Validate())

	t.Run("rejects equal thresholds", func(t *testing.T) {
		cfg := NormalizeHeatConfig(testGuildID, url.Values{})
		cfg.ThresholdT2 = cfg.ThresholdT1
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive panic settings", func(t *testing.T) {
		cfg := NormalizeHeatConfig(testGuildID, url.Values{})
		cfg.PanicWindowSeconds = 0
		assert.Error(t, cfg.Validate())
	})
}
