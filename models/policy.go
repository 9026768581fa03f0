package models

// ResponsePolicy is the action the bot runtime takes when a protection rule
// trips. Not every policy is valid for every subsystem; each config type
// documents its accepted subset.
type ResponsePolicy string

const (
	PolicyQuarantine ResponsePolicy = "quarantine"
	PolicyKick       ResponsePolicy = "kick"
	PolicyBan        ResponsePolicy = "ban"
	PolicyWarn       ResponsePolicy = "warn"
	PolicyTimeout    ResponsePolicy = "timeout"
)

// ModerationPolicies is the subset accepted by anti-nuke responses and
// join-gate actions.
var ModerationPolicies = []string{
	string(PolicyQuarantine),
	string(PolicyKick),
	string(PolicyBan),
}

// HeatPolicies is the subset accepted by heat threshold actions.
var HeatPolicies = []string{
	string(PolicyWarn),
	string(PolicyTimeout),
	string(PolicyKick),
	string(PolicyBan),
}
