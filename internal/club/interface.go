package club

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	AuthenticatePlayer(playerID, password string) (Player, error)
	AuthenticateModerator(username, password string) error
	GetPlayerDashboard(playerID string) (DashboardData, error)
	ListPlayers() ([]Player, error)
	AddPlayer(playerID, name, password string) error
	GetStatsForEditing(playerID string) (StatSheet, error)
	UpdateStats(playerID string, sheet StatSheet) error
	ListTeamNews() ([]TeamNewsItem, error)
	PublishNews(title string) (TeamNewsItem, error)
	GetSchedule() ([]MatchInfo, error)
	UpdateSchedule(matches []MatchInfo) error
	GetClubLeaders() (ClubLeadersData, error)
	Seed() error
	Clear()
}
