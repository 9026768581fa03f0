package models

// GuildChannel is a text channel as presented to the dashboard channel pickers.
type GuildChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GuildRole is a role as presented to the dashboard role pickers.
type GuildRole struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    int    `json:"color"`
	Position int    `json:"position"`
}
