package domain

// SettingsKey is the fixed identity of the singleton bot configuration row.
const SettingsKey = "bot_config"

// DefaultContext seeds the configuration on first start.
const DefaultContext = `
YOU ARE: The Customer Support AI for "AirCloud Store".
TONE: Professional, polite, UK English.
ROLE: Assist customers with products, shipping, and returns.

[SHIPPING & RETURNS]
- Processing: 1-2 days. Delivery: 3-5 days.
- Returns: 14 days if unused. Customer pays postage.
- Issues: Report damaged items within 48h with photos.
`

// BotConfig is the singleton record controlling the bot's system prompt
// and enabled/disabled state.
type BotConfig struct {
	Key      string `json:"key"`
	Context  string `json:"context"`
	IsActive bool   `json:"isActive"`
}

// UpdateSettingsRequest is the request to replace the bot configuration.
// Both fields replace the stored values unconditionally; an empty context
// is a legal (if unwise) admin choice.
type UpdateSettingsRequest struct {
	Context  string `json:"context"`
	IsActive bool   `json:"isActive"`
}
