package club

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new ClubStore on top of an initialized database.
func New(db *sql.DB, mod ModeratorCredentials) ClubStore {
	return &store{
		db:  db,
		mod: mod,
	}
}

// AuthenticatePlayer verifies a player id/password pair with an exact,
// case-sensitive match and returns the public view on success.
func (s *store) AuthenticatePlayer(playerID, password string) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	err := s.db.QueryRow("SELECT id, name FROM players WHERE id = ? AND password = ?", playerID, password).Scan(&p.ID, &p.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Rejected player login", "playerID", playerID)
			return Player{}, fmt.Errorf("invalid player id or password: %w", ErrInvalidCredentials)
		}
		log.Error("Failed to query player credentials", "error", err, "playerID", playerID)
		return Player{}, fmt.Errorf("database error: %w", err)
	}
	return p, nil
}

// AuthenticateModerator verifies the single moderator credential pair.
func (s *store) AuthenticateModerator(username, password string) error {
	if username != s.mod.Username || password != s.mod.Password {
		log.Info("Rejected moderator login", "username", username)
		return fmt.Errorf("invalid moderator credentials: %w", ErrInvalidCredentials)
	}
	return nil
}

// GetPlayerDashboard assembles the player portal view: both stat sheets, the
// next fixture and the full bulletin.
func (s *store) GetPlayerDashboard(playerID string) (DashboardData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if exists, err := s.playerExists(playerID); err != nil {
		return DashboardData{}, err
	} else if !exists {
		return DashboardData{}, fmt.Errorf("no data for player %s: %w", playerID, ErrPlayerNotFound)
	}

	sheet, err := s.readStatSheet(playerID)
	if err != nil {
		return DashboardData{}, err
	}
	matches, err := s.readSchedule()
	if err != nil {
		return DashboardData{}, err
	}
	news, err := s.readTeamNews()
	if err != nil {
		return DashboardData{}, err
	}

	return DashboardData{
		SeasonStats:  sheet.SeasonStats,
		AllTimeStats: sheet.AllTimeStats,
		NextMatch:    NextFixture(matches, time.Now()),
		TeamNews:     news,
	}, nil
}

// NextFixture picks the first schedule entry on or after today at local
// midnight. Entries with unparsable dates are skipped. If nothing is
// upcoming, the last entry in schedule order is returned.
func NextFixture(matches []MatchInfo, today time.Time) MatchInfo {
	if len(matches) == 0 {
		return MatchInfo{}
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	for _, m := range matches {
		matchDate, err := parseMatchDate(m.Date)
		if err != nil {
			log.Warn("Skipping fixture with unparsable date", "date", m.Date, "opponent", m.Opponent)
			continue
		}
		if !matchDate.Before(midnight) {
			return m
		}
	}
	return matches[len(matches)-1]
}

// ListPlayers returns the roster in joining order, passwords stripped.
func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM players ORDER BY rowid")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// AddPlayer inserts a new credential record together with a default stat
// sheet. The insert is transactional, so a duplicate id leaves the store
// untouched.
func (s *store) AddPlayer(playerID, name, password string) error {
	if strings.TrimSpace(playerID) == "" || strings.TrimSpace(name) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("player id, name and password are all required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists); err != nil {
		tx.Rollback()
		return err
	}
	if exists {
		tx.Rollback()
		return fmt.Errorf("player with id %s already exists: %w", playerID, ErrDuplicateID)
	}

	if _, err := tx.Exec("INSERT INTO players (id, name, password) VALUES (?, ?, ?)", playerID, name, password); err != nil {
		tx.Rollback()
		return err
	}
	if err := insertStatLines(tx, playerID, scopeSeason, DefaultSeasonStats()); err != nil {
		tx.Rollback()
		return err
	}
	if err := insertStatLines(tx, playerID, scopeAllTime, DefaultAllTimeStats()); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Added new player to the roster", "playerID", playerID, "name", name)
	return nil
}

// GetStatsForEditing returns a copy of both stat collections for the
// moderator's stats editor.
func (s *store) GetStatsForEditing(playerID string) (StatSheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if exists, err := s.playerExists(playerID); err != nil {
		return StatSheet{}, err
	} else if !exists {
		return StatSheet{}, fmt.Errorf("no stats for player %s: %w", playerID, ErrPlayerNotFound)
	}
	return s.readStatSheet(playerID)
}

// UpdateStats replaces both stat collections wholesale. Lines whose label or
// value is blank after trimming are discarded.
func (s *store) UpdateStats(playerID string, sheet StatSheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists); err != nil {
		tx.Rollback()
		return err
	}
	if !exists {
		tx.Rollback()
		return fmt.Errorf("player with id %s not found: %w", playerID, ErrPlayerNotFound)
	}

	if _, err := tx.Exec("DELETE FROM player_stats WHERE player_id = ?", playerID); err != nil {
		tx.Rollback()
		return err
	}
	if err := insertStatLines(tx, playerID, scopeSeason, filterBlankLines(sheet.SeasonStats)); err != nil {
		tx.Rollback()
		return err
	}
	if err := insertStatLines(tx, playerID, scopeAllTime, filterBlankLines(sheet.AllTimeStats)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Replaced player stat sheet", "playerID", playerID)
	return nil
}

// ListTeamNews returns the bulletin in publish order, oldest first.
func (s *store) ListTeamNews() ([]TeamNewsItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readTeamNews()
}

// PublishNews appends a bulletin item with id = current max + 1.
func (s *store) PublishNews(title string) (TeamNewsItem, error) {
	if strings.TrimSpace(title) == "" {
		return TeamNewsItem{}, fmt.Errorf("news title is required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return TeamNewsItem{}, err
	}

	var nextID int
	if err := tx.QueryRow("SELECT COALESCE(MAX(id), 0) + 1 FROM team_news").Scan(&nextID); err != nil {
		tx.Rollback()
		return TeamNewsItem{}, err
	}
	if _, err := tx.Exec("INSERT INTO team_news (id, title) VALUES (?, ?)", nextID, title); err != nil {
		tx.Rollback()
		return TeamNewsItem{}, err
	}
	if err := tx.Commit(); err != nil {
		return TeamNewsItem{}, err
	}

	item := TeamNewsItem{ID: nextID, Title: title}
	log.Info("Published team news", "id", item.ID, "title", item.Title)
	return item, nil
}

// GetSchedule returns the full schedule in schedule order.
func (s *store) GetSchedule() ([]MatchInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readSchedule()
}

// UpdateSchedule replaces the entire schedule with the editor's snapshot.
// Entries have no identity; order is the given order.
func (s *store) UpdateSchedule(matches []MatchInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM schedule"); err != nil {
		tx.Rollback()
		return err
	}
	for i, m := range matches {
		_, err := tx.Exec(
			"INSERT INTO schedule (position, opponent, competition, match_date, kickoff, venue, score) VALUES (?, ?, ?, ?, ?, ?, ?)",
			i, m.Opponent, m.Competition, m.Date, m.Time, m.Venue, m.Score,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Replaced match schedule", "matches", len(matches))
	return nil
}

// Tracked leaders-board metrics, looked up by stat label in season sheets.
const (
	labelGoals   = "Goals"
	labelAssists = "Assists"
	labelGA      = "G/A"
)

// GetClubLeaders recomputes the leaders board by scanning every player's
// season stats in roster order. Strict maxima only: a later player with an
// equal value never displaces the current leader. If no player has a positive
// value for a metric its leader stays at {"N/A", "0"}.
func (s *store) GetClubLeaders() (ClubLeadersData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.name, ps.label, ps.value
		FROM players p
		LEFT JOIN player_stats ps ON ps.player_id = p.id AND ps.scope = ?
		ORDER BY p.rowid, ps.position
	`, scopeSeason)
	if err != nil {
		log.Error("Failed to query season stats for leaders board", "error", err)
		return ClubLeadersData{}, err
	}
	defer rows.Close()

	leaders := ClubLeadersData{
		TopScorer:   ClubLeader{Name: "N/A", Value: "0"},
		TopAssister: ClubLeader{Name: "N/A", Value: "0"},
		TopGA:       ClubLeader{Name: "N/A", Value: "0"},
	}
	var maxGoals, maxAssists, maxGA int

	var (
		currentID   string
		currentName string
		sheet       []StatLine
		started     bool
	)
	flush := func() {
		updateLeader(&leaders.TopScorer, &maxGoals, currentName, sheet, labelGoals)
		updateLeader(&leaders.TopAssister, &maxAssists, currentName, sheet, labelAssists)
		updateLeader(&leaders.TopGA, &maxGA, currentName, sheet, labelGA)
	}
	for rows.Next() {
		var id, name string
		var label, value sql.NullString
		if err := rows.Scan(&id, &name, &label, &value); err != nil {
			return ClubLeadersData{}, err
		}
		if started && id != currentID {
			flush()
			sheet = sheet[:0]
		}
		started = true
		currentID = id
		currentName = name
		if label.Valid {
			sheet = append(sheet, StatLine{Label: label.String, Value: value.String})
		}
	}
	if err := rows.Err(); err != nil {
		return ClubLeadersData{}, err
	}
	if started {
		flush()
	}
	return leaders, nil
}

// updateLeader applies one player's sheet to a single tracked metric.
func updateLeader(leader *ClubLeader, best *int, name string, sheet []StatLine, label string) {
	var raw string
	for _, line := range sheet {
		if line.Label == label {
			raw = line.Value
			break
		}
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		value = 0
	}
	if value > *best {
		*best = value
		leader.Name = name
		leader.Value = raw
	}
}

// Clear empties every table. Used by tests and the admin reset endpoint.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}
	for _, table := range []string{"player_stats", "schedule", "team_news", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

// --- helpers --- //

const (
	scopeSeason  = "season"
	scopeAllTime = "all_time"
)

func (s *store) playerExists(playerID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return false, err
	}
	return exists, nil
}

func (s *store) readStatSheet(playerID string) (StatSheet, error) {
	season, err := s.readStatLines(playerID, scopeSeason)
	if err != nil {
		return StatSheet{}, err
	}
	allTime, err := s.readStatLines(playerID, scopeAllTime)
	if err != nil {
		return StatSheet{}, err
	}
	return StatSheet{SeasonStats: season, AllTimeStats: allTime}, nil
}

func (s *store) readStatLines(playerID, scope string) ([]StatLine, error) {
	rows, err := s.db.Query("SELECT label, value FROM player_stats WHERE player_id = ? AND scope = ? ORDER BY position", playerID, scope)
	if err != nil {
		log.Error("Failed to query stat lines", "error", err, "playerID", playerID, "scope", scope)
		return nil, err
	}
	defer rows.Close()

	var lines []StatLine
	for rows.Next() {
		var line StatLine
		if err := rows.Scan(&line.Label, &line.Value); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *store) readSchedule() ([]MatchInfo, error) {
	rows, err := s.db.Query("SELECT opponent, competition, match_date, kickoff, venue, score FROM schedule ORDER BY position")
	if err != nil {
		log.Error("Failed to query schedule", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []MatchInfo
	for rows.Next() {
		var m MatchInfo
		var score sql.NullString
		if err := rows.Scan(&m.Opponent, &m.Competition, &m.Date, &m.Time, &m.Venue, &score); err != nil {
			return nil, err
		}
		m.Score = score.String
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *store) readTeamNews() ([]TeamNewsItem, error) {
	rows, err := s.db.Query("SELECT id, title FROM team_news ORDER BY id")
	if err != nil {
		log.Error("Failed to query team news", "error", err)
		return nil, err
	}
	defer rows.Close()

	var items []TeamNewsItem
	for rows.Next() {
		var item TeamNewsItem
		if err := rows.Scan(&item.ID, &item.Title); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func insertStatLines(tx *sql.Tx, playerID, scope string, lines []StatLine) error {
	for i, line := range lines {
		_, err := tx.Exec(
			"INSERT INTO player_stats (player_id, scope, position, label, value) VALUES (?, ?, ?, ?, ?)",
			playerID, scope, i, line.Label, line.Value,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func filterBlankLines(lines []StatLine) []StatLine {
	kept := make([]StatLine, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.Label) == "" || strings.TrimSpace(line.Value) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
