package club

import (
	"database/sql"

	"github.com/charmbracelet/log"
)

// DefaultSeasonStats is the stat sheet every new player starts the season with.
func DefaultSeasonStats() []StatLine {
	return []StatLine{
		{Label: "Matches Played", Value: "0"},
		{Label: "Goals", Value: "0"},
		{Label: "Assists", Value: "0"},
		{Label: "G/A", Value: "0"},
		{Label: "Shots on Target", Value: "0"},
		{Label: "Pass Accuracy", Value: "0%"},
		{Label: "Tackles Won", Value: "0"},
		{Label: "Rating", Value: "N/A"},
	}
}

// DefaultAllTimeStats is the career sheet every new player starts with.
func DefaultAllTimeStats() []StatLine {
	return []StatLine{
		{Label: "Appearances", Value: "0"},
		{Label: "Goals", Value: "0"},
		{Label: "Assists", Value: "0"},
		{Label: "Trophies", Value: "0"},
	}
}

type seedPlayer struct {
	id       string
	name     string
	password string
	season   []StatLine // nil means the default sheet
}

var seedRoster = []seedPlayer{
	{id: "1002022", name: "Abdur Rakib", password: "abdurrakib10s2022", season: []StatLine{
		{Label: "Matches Played", Value: "5"},
		{Label: "Goals", Value: "4"},
		{Label: "Assists", Value: "2"},
		{Label: "G/A", Value: "6"},
		{Label: "Shots on Target", Value: "8"},
		{Label: "Pass Accuracy", Value: "85%"},
		{Label: "Tackles Won", Value: "10"},
		{Label: "Rating", Value: "8.1"},
	}},
	{id: "4002022", name: "Abdur Razzak", password: "razzakc2022", season: []StatLine{
		{Label: "Matches Played", Value: "5"},
		{Label: "Goals", Value: "1"},
		{Label: "Assists", Value: "5"},
		{Label: "G/A", Value: "6"},
		{Label: "Shots on Target", Value: "3"},
		{Label: "Pass Accuracy", Value: "92%"},
		{Label: "Tackles Won", Value: "15"},
		{Label: "Rating", Value: "7.8"},
	}},
	{id: "6902024", name: "Raiyan JR", password: "raiyanjrc2024", season: []StatLine{
		{Label: "Matches Played", Value: "4"},
		{Label: "Goals", Value: "3"},
		{Label: "Assists", Value: "3"},
		{Label: "G/A", Value: "6"},
		{Label: "Shots on Target", Value: "5"},
		{Label: "Pass Accuracy", Value: "88%"},
		{Label: "Tackles Won", Value: "7"},
		{Label: "Rating", Value: "7.9"},
	}},
	{id: "9002023", name: "Raiyan Amin", password: "raiyanaminc2023"},
	{id: "8002023", name: "Sami Ahmed", password: "samiahmedc2023"},
	{id: "5002025", name: "Sahil", password: "sahilc2025"},
	{id: "3002023", name: "Atif Shahil", password: "atifshahilc2023"},
	{id: "6002023", name: "Tanvir", password: "tanvirc2023"},
	{id: "1902024", name: "Rafi", password: "rafic2024"},
	{id: "2002024", name: "Abid", password: "abidc2024"},
}

var seedSchedule = []MatchInfo{
	{Opponent: "Rival FC", Competition: "Premier League", Date: "2024-08-28", Time: "15:00 GMT", Venue: "Flameunter Stadium (Home)", Score: "3 - 1"},
	{Opponent: "Oceanic Wanderers", Competition: "FA Cup - 3rd Round", Date: "2024-09-01", Time: "19:45 GMT", Venue: "The Coral Arena (Away)", Score: "2 - 2"},
	{Opponent: "Mountain Giants", Competition: "Premier League", Date: "2024-09-05", Time: "16:30 GMT", Venue: "The Summit Ground (Away)"},
	{Opponent: "City United", Competition: "Premier League", Date: "2024-09-11", Time: "15:00 GMT", Venue: "Flameunter Stadium (Home)"},
}

var seedNews = []TeamNewsItem{
	{ID: 1, Title: "Training session moved to 11 AM tomorrow."},
	{ID: 2, Title: "Pre-match press conference at 2 PM on Friday."},
	{ID: 3, Title: "Physio report available in the medical room."},
}

// Seed loads the initial roster, schedule and bulletin into an empty store.
// It is a no-op when players already exist, so restarts against a shared
// database do not duplicate the roster.
func (s *store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Info("Store already populated, skipping seed", "players", count)
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := seedTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Seeded store", "players", len(seedRoster), "matches", len(seedSchedule), "news", len(seedNews))
	return nil
}

func seedTx(tx *sql.Tx) error {
	for _, p := range seedRoster {
		if _, err := tx.Exec("INSERT INTO players (id, name, password) VALUES (?, ?, ?)", p.id, p.name, p.password); err != nil {
			return err
		}
		season := p.season
		if season == nil {
			season = DefaultSeasonStats()
		}
		if err := insertStatLines(tx, p.id, scopeSeason, season); err != nil {
			return err
		}
		if err := insertStatLines(tx, p.id, scopeAllTime, DefaultAllTimeStats()); err != nil {
			return err
		}
	}
	for i, m := range seedSchedule {
		_, err := tx.Exec(
			"INSERT INTO schedule (position, opponent, competition, match_date, kickoff, venue, score) VALUES (?, ?, ?, ?, ?, ?, ?)",
			i, m.Opponent, m.Competition, m.Date, m.Time, m.Venue, m.Score,
		)
		if err != nil {
			return err
		}
	}
	for _, n := range seedNews {
		if _, err := tx.Exec("INSERT INTO team_news (id, title) VALUES (?, ?)", n.ID, n.Title); err != nil {
			return err
		}
	}
	return nil
}
