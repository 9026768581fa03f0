package forms

import (
	"net/url"
	"strings"
	"time"

	"ruebydash/models"
)

// NormalizeGuildSettings builds a GuildSettings record from submitted form
// values. Prefix falls back to the default when empty or over length;
// timezone falls back when it is not a loadable IANA identifier.
func NormalizeGuildSettings(guildID string, values url.Values) *models.GuildSettings {
	prefix := strings.TrimSpace(values.Get("prefix"))
	if prefix == "" || len(prefix) > models.MaxPrefixLength {
		prefix = models.DefaultPrefix
	}

	timezone := strings.TrimSpace(values.Get("timezone"))
	if timezone == "" || !isValidTimezone(timezone) {
		timezone = models.DefaultTimezone
	}

	return &models.GuildSettings{
		GuildID:          guildID,
		Prefix:           prefix,
		Timezone:         timezone,
		MuteRoleID:       ParseOptionalID(values, "muteRole"),
		QuarantineRoleID: ParseOptionalID(values, "quarantineRole"),
	}
}

func isValidTimezone(name string) bool {
	_, err := time.LoadLocation(name)
	return err == nil
}

// NormalizeAntiNuke builds an AntiNukeLimits record. Each minute/hour limit
// parses as a non-negative integer with a per-action default; response
// policies fall back to quarantine. Hour-below-minute inconsistencies are not
// rejected here; see AntiNukeLimits.Warnings.
func NormalizeAntiNuke(guildID string, values url.Values) *models.AntiNukeLimits {
	limits := &models.AntiNukeLimits{
		GuildID: guildID,
		Enabled: ParseCheckbox(values, "enabled"),
	}

	ban := models.AntiNukeDefaults[models.AntiNukeBan]
	kick := models.AntiNukeDefaults[models.AntiNukeKick]
	chDel := models.AntiNukeDefaults[models.AntiNukeChannelDelete]
	roleDel := models.AntiNukeDefaults[models.AntiNukeRoleDelete]

	limits.MinuteBan = ParseIntWithDefault(values.Get("minute_ban"), ban.Minute)
	limits.HourBan = ParseIntWithDefault(values.Get("hour_ban"), ban.Hour)
	limits.MinuteKick = ParseIntWithDefault(values.Get("minute_kick"), kick.Minute)
	limits.HourKick = ParseIntWithDefault(values.Get("hour_kick"), kick.Hour)
	limits.MinuteChannelDelete = ParseIntWithDefault(values.Get("minute_channelDelete"), chDel.Minute)
	limits.HourChannelDelete = ParseIntWithDefault(values.Get("hour_channelDelete"), chDel.Hour)
	limits.MinuteRoleDelete = ParseIntWithDefault(values.Get("minute_roleDelete"), roleDel.Minute)
	limits.HourRoleDelete = ParseIntWithDefault(values.Get("hour_roleDelete"), roleDel.Hour)

	defPolicy := string(models.PolicyQuarantine)
	limits.ResponseBan = ParseEnum(values.Get("response_ban"), defPolicy, models.ModerationPolicies)
	limits.ResponseKick = ParseEnum(values.Get("response_kick"), defPolicy, models.ModerationPolicies)
	limits.ResponseChannelDelete = ParseEnum(values.Get("response_channelDelete"), defPolicy, models.ModerationPolicies)
	limits.ResponseRoleDelete = ParseEnum(values.Get("response_roleDelete"), defPolicy, models.ModerationPolicies)

	return limits
}

// NormalizeJoinGate builds a JoinGate record. Boolean fields use the "on"
// checkbox sentinel; account age falls back to 7 days when absent, malformed
// or zero.
func NormalizeJoinGate(guildID string, values url.Values) *models.JoinGate {
	defPolicy := string(models.PolicyQuarantine)

	return &models.JoinGate{
		GuildID:                guildID,
		Enabled:                ParseCheckbox(values, "enabled"),
		AccountAgeMinDays:      ParsePositiveIntWithDefault(values.Get("accountAgeMinDays"), models.DefaultAccountAgeMinDays),
		AvatarRequired:         ParseCheckbox(values, "avatarRequired"),
		BotAdditionPolicy:      ParseEnum(values.Get("botAdditionPolicy"), models.BotAdditionAllow, models.BotAdditionPolicies),
		UnverifiedBotPolicy:    ParseEnum(values.Get("unverifiedBotPolicy"), models.UnverifiedBotKick, models.UnverifiedBotPolicies),
		AdvertisingProfileRule: ParseEnum(values.Get("advertisingProfileRule"), models.AdvertisingIgnore, models.AdvertisingRules),
		ActionAccountAge:       ParseEnum(values.Get("action_accountAge"), defPolicy, models.ModerationPolicies),
		ActionAvatar:           ParseEnum(values.Get("action_avatar"), defPolicy, models.ModerationPolicies),
		ActionBot:              ParseEnum(values.Get("action_bot"), defPolicy, models.ModerationPolicies),
		ActionAdvertising:      ParseEnum(values.Get("action_advertising"), defPolicy, models.ModerationPolicies),
	}
}

// NormalizeVerification builds a VerificationSettings record. Captcha tuning
// uses the falsy-zero contract, so a submitted "0" timeout resolves to the
// default 300 seconds.
func NormalizeVerification(guildID string, values url.Values) *models.VerificationSettings {
	return &models.VerificationSettings{
		GuildID:               guildID,
		Enabled:               ParseCheckbox(values, "enabled"),
		Mode:                  ParseEnum(values.Get("mode"), models.VerificationModeButton, models.VerificationModes),
		Target:                ParseEnum(values.Get("target"), models.VerificationTargetAll, models.VerificationTargets),
		VerificationChannelID: ParseOptionalID(values, "verificationChannelId"),
		VerifiedRoleID:        ParseOptionalID(values, "verifiedRoleId"),
		ActionOnFail:          ParseEnum(values.Get("actionOnFail"), models.VerificationFailNone, models.VerificationFailActions),
		CaptchaTimeout:        ParsePositiveIntWithDefault(values.Get("captchaTimeout"), models.DefaultCaptchaTimeout),
		CaptchaMaxAttempts:    ParsePositiveIntWithDefault(values.Get("captchaMaxAttempts"), models.DefaultCaptchaMaxAttempts),
		WelcomeMessage:        ParseOptionalText(values, "welcomeMessage"),
		SuccessMessage:        ParseOptionalText(values, "successMessage"),
		FailMessage:           ParseOptionalText(values, "failMessage"),
	}
}

// NormalizeHeatConfig builds a HeatConfig record. No cross-field ordering is
// enforced here; HeatConfig.Validate runs before a config is activated.
func NormalizeHeatConfig(guildID string, values url.Values) *models.HeatConfig {
	cfg := &models.HeatConfig{
		GuildID: guildID,
		Enabled: ParseCheckbox(values, "enabled"),

		WeightMessageRate:       ParsePositiveFloatWithDefault(values.Get("w_messageRate"), models.DefaultWeightMessageRate),
		WeightDuplicates:        ParsePositiveFloatWithDefault(values.Get("w_duplicates"), models.DefaultWeightDuplicates),
		WeightMassMentions:      ParsePositiveFloatWithDefault(values.Get("w_massMentions"), models.DefaultWeightMassMentions),
		WeightLinks:             ParsePositiveFloatWithDefault(values.Get("w_links"), models.DefaultWeightLinks),
		WeightAttachments:       ParsePositiveFloatWithDefault(values.Get("w_attachments"), models.DefaultWeightAttachments),
		WeightEmojiSpam:         ParsePositiveFloatWithDefault(values.Get("w_emojiSpam"), models.DefaultWeightEmojiSpam),
		WeightSuspiciousUnicode: ParsePositiveFloatWithDefault(values.Get("w_suspiciousUnicode"), models.DefaultWeightSuspiciousUnicode),
		WeightWebhookMessages:   ParsePositiveFloatWithDefault(values.Get("w_webhookMessages"), models.DefaultWeightWebhookMessages),

		ThresholdT1: ParsePositiveIntWithDefault(values.Get("t_T1"), models.DefaultThresholdT1),
		ThresholdT2: ParsePositiveIntWithDefault(values.Get("t_T2"), models.DefaultThresholdT2),
		ThresholdT3: ParsePositiveIntWithDefault(values.Get("t_T3"), models.DefaultThresholdT3),
		ThresholdT4: ParsePositiveIntWithDefault(values.Get("t_T4"), models.DefaultThresholdT4),

		PanicThreshold:       ParsePositiveIntWithDefault(values.Get("panicThreshold"), models.DefaultPanicThreshold),
		PanicWindowSeconds:   ParsePositiveIntWithDefault(values.Get("panicWindowSeconds"), models.DefaultPanicWindowSeconds),
		PanicDurationMinutes: ParsePositiveIntWithDefault(values.Get("panicDurationMinutes"), models.DefaultPanicDurationMinutes),
	}

	heatDefaults := []string{
		string(models.PolicyWarn),
		string(models.PolicyTimeout),
		string(models.PolicyKick),
		string(models.PolicyBan),
	}
	cfg.ActionT1 = ParseEnum(values.Get("a_T1"), heatDefaults[0], models.HeatPolicies)
	cfg.ActionT2 = ParseEnum(values.Get("a_T2"), heatDefaults[1], models.HeatPolicies)
	cfg.ActionT3 = ParseEnum(values.Get("a_T3"), heatDefaults[2], models.HeatPolicies)
	cfg.ActionT4 = ParseEnum(values.Get("a_T4"), heatDefaults[3], models.HeatPolicies)

	return cfg
}

// NormalizeLogsRouting builds a LogsRouting record. Every field is optional;
// empty selections clear the route.
func NormalizeLogsRouting(guildID string, values url.Values) *models.LogsRouting {
	return &models.LogsRouting{
		GuildID:               guildID,
		AutomodChannelID:      ParseOptionalID(values, "automodChannel"),
		AntinukeChannelID:     ParseOptionalID(values, "antinukeChannel"),
		VerificationChannelID: ParseOptionalID(values, "verificationChannel"),
		JoingateChannelID:     ParseOptionalID(values, "joingateChannel"),
		JoinraidChannelID:     ParseOptionalID(values, "joinraidChannel"),
		PanicChannelID:        ParseOptionalID(values, "panicChannel"),
		ReportsChannelID:      ParseOptionalID(values, "reportsChannel"),
		ModerationChannelID:   ParseOptionalID(values, "moderationChannel"),
		FallbackChannelID:     ParseOptionalID(values, "fallbackChannelId"),
	}
}
