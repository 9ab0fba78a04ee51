package club

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for the club.
type store struct {
	db  *sql.DB
	mod ModeratorCredentials
	mu  sync.RWMutex
}

// ModeratorCredentials is the single credential pair accepted by
// AuthenticateModerator. There are no per-moderator accounts.
type ModeratorCredentials struct {
	Username string
	Password string
}

// Player is the public view of a roster member, with the password stripped.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StatLine is a single labeled statistic. Values are free-form text so the
// sheet can hold counts ("4"), percentages ("85%") and ratings ("8.1") alike.
type StatLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// StatSheet holds both stat collections owned by one player.
type StatSheet struct {
	SeasonStats  []StatLine `json:"season_stats"`
	AllTimeStats []StatLine `json:"all_time_stats"`
}

// MatchInfo is one entry in the match schedule. Score is set only for
// matches already played.
type MatchInfo struct {
	Opponent    string `json:"opponent"`
	Competition string `json:"competition"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Score       string `json:"score,omitempty"`
}

// TeamNewsItem is one bulletin announcement. IDs increase monotonically in
// publish order.
type TeamNewsItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// DashboardData is everything the player portal shows after login.
type DashboardData struct {
	SeasonStats  []StatLine     `json:"season_stats"`
	AllTimeStats []StatLine     `json:"all_time_stats"`
	NextMatch    MatchInfo      `json:"next_match"`
	TeamNews     []TeamNewsItem `json:"team_news"`
}

// ClubLeader is one entry on the leaders board.
type ClubLeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ClubLeadersData is the derived leaders board, recomputed from season stats
// on every read.
type ClubLeadersData struct {
	TopScorer   ClubLeader `json:"top_scorer"`
	TopAssister ClubLeader `json:"top_assister"`
	TopGA       ClubLeader `json:"top_ga"`
}

// dateLayout is the schedule's calendar date format.
const dateLayout = "2006-01-02"

func parseMatchDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}
