package models

// SetupDraft is the combined payload the setup wizard submits once on its
// final step. The client accumulates answers across steps and serializes the
// whole draft; the backend persists everything in one pass.
type SetupDraft struct {
	Prefix       string            `json:"prefix"`
	Timezone     string            `json:"timezone"`
	Verification SetupVerification `json:"verification"`
	JoinGate     SetupJoinGate     `json:"join_gate"`
	Logs         SetupLogs         `json:"logs"`
	Permits      []PermitGrant     `json:"permits"`
}

type SetupVerification struct {
	Enabled    bool   `json:"enabled"`
	Mode       string `json:"mode"`
	ChannelID  string `json:"channel_id"`
	RoleID     string `json:"role_id"`
	FailAction string `json:"fail_action"`
	// Lockdown requests the permission rewrite that hides channels from
	// unverified members after the wizard completes.
	Lockdown bool `json:"lockdown"`
}

type SetupJoinGate struct {
	Enabled           bool   `json:"enabled"`
	AccountAgeMinDays int    `json:"account_age_min_days"`
	AvatarRequired    bool   `json:"avatar_required"`
	BotAdditionPolicy string `json:"bot_addition_policy"`
}

type SetupLogs struct {
	AntinukeChannelID     string `json:"antinuke_channel_id"`
	ModerationChannelID   string `json:"moderation_channel_id"`
	VerificationChannelID string `json:"verification_channel_id"`
	FallbackChannelID     string `json:"fallback_channel_id"`
}
