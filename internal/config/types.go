package config

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Turso     TursoConfig
	Moderator ModeratorConfig
	Gemini    GeminiConfig
	Slack     SlackConfig
	ProjectID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// ModeratorConfig is the single moderator credential pair. There are no
// per-moderator accounts.
type ModeratorConfig struct {
	Username string
	Password string
}

type GeminiConfig struct {
	APIKey string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}
