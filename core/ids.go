package core

// IsValidSnowflake checks whether the given string looks like a Discord
// snowflake ID: all digits, 17 to 20 characters. Guild, channel and role IDs
// arriving from the dashboard are validated with this before hitting storage
// or the Discord API.
func IsValidSnowflake(id string) bool {
	if len(id) < 17 || len(id) > 20 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
