package models

import (
	"time"
)

// Verification mode, target and fail-action enums. The uppercase values are
// what the bot runtime stores and the dashboard submits.
const (
	VerificationModeNone    = "NONE"
	VerificationModeButton  = "BUTTON"
	VerificationModeCaptcha = "CAPTCHA"
	VerificationModeWeb     = "WEB"

	VerificationTargetAll        = "ALL"
	VerificationTargetSuspicious = "SUSPICIOUS"

	VerificationFailNone       = "NONE"
	VerificationFailQuarantine = "QUARANTINE"
	VerificationFailKick       = "KICK"
	VerificationFailBan        = "BAN"
)

var (
	VerificationModes       = []string{VerificationModeNone, VerificationModeButton, VerificationModeCaptcha, VerificationModeWeb}
	VerificationTargets     = []string{VerificationTargetAll, VerificationTargetSuspicious}
	VerificationFailActions = []string{VerificationFailNone, VerificationFailQuarantine, VerificationFailKick, VerificationFailBan}
)

const (
	DefaultCaptchaTimeout     = 300
	DefaultCaptchaMaxAttempts = 3
)

// VerificationSettings configures the member verification flow. Channel and
// role are optional at save time; sending the verification panel requires
// both to be set.
type VerificationSettings struct {
	GuildID               string    `db:"guild_id"                json:"guild_id"`
	Enabled               bool      `db:"enabled"                 json:"enabled"`
	Mode                  string    `db:"mode"                    json:"mode"`
	Target                string    `db:"target"                  json:"target"`
	VerificationChannelID *string   `db:"verification_channel_id" json:"verification_channel_id,omitempty"`
	VerifiedRoleID        *string   `db:"verified_role_id"        json:"verified_role_id,omitempty"`
	ActionOnFail          string    `db:"action_on_fail"          json:"action_on_fail"`
	CaptchaTimeout        int       `db:"captcha_timeout"         json:"captcha_timeout"`
	CaptchaMaxAttempts    int       `db:"captcha_max_attempts"    json:"captcha_max_attempts"`
	WelcomeMessage        *string   `db:"welcome_message"         json:"welcome_message,omitempty"`
	SuccessMessage        *string   `db:"success_message"         json:"success_message,omitempty"`
	FailMessage           *string   `db:"fail_message"            json:"fail_message,omitempty"`
	CreatedAt             time.Time `db:"created_at"              json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"              json:"updated_at"`
}
