package club

import "sync"

var _ ClubStore = (*MockStore)(nil)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AuthenticatePlayerFunc    func(playerID, password string) (Player, error)
	AuthenticateModeratorFunc func(username, password string) error
	GetPlayerDashboardFunc    func(playerID string) (DashboardData, error)
	ListPlayersFunc           func() ([]Player, error)
	AddPlayerFunc             func(playerID, name, password string) error
	GetStatsForEditingFunc    func(playerID string) (StatSheet, error)
	UpdateStatsFunc           func(playerID string, sheet StatSheet) error
	ListTeamNewsFunc          func() ([]TeamNewsItem, error)
	PublishNewsFunc           func(title string) (TeamNewsItem, error)
	GetScheduleFunc           func() ([]MatchInfo, error)
	UpdateScheduleFunc        func(matches []MatchInfo) error
	GetClubLeadersFunc        func() (ClubLeadersData, error)
	SeedFunc                  func() error
	ClearFunc                 func()

	// Call records
	AuthenticatePlayerCalls []struct{ PlayerID, Password string }
	AddPlayerCalls          []struct{ PlayerID, Name, Password string }
	UpdateStatsCalls        []struct {
		PlayerID string
		Sheet    StatSheet
	}
	PublishNewsCalls    []string
	UpdateScheduleCalls [][]MatchInfo
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AuthenticatePlayerCalls = nil
	m.AddPlayerCalls = nil
	m.UpdateStatsCalls = nil
	m.PublishNewsCalls = nil
	m.UpdateScheduleCalls = nil
}

func (m *MockStore) AuthenticatePlayer(playerID, password string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AuthenticatePlayerCalls = append(m.AuthenticatePlayerCalls, struct{ PlayerID, Password string }{playerID, password})
	if m.AuthenticatePlayerFunc != nil {
		return m.AuthenticatePlayerFunc(playerID, password)
	}
	return Player{}, nil
}

func (m *MockStore) AuthenticateModerator(username, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AuthenticateModeratorFunc != nil {
		return m.AuthenticateModeratorFunc(username, password)
	}
	return nil
}

func (m *MockStore) GetPlayerDashboard(playerID string) (DashboardData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerDashboardFunc != nil {
		return m.GetPlayerDashboardFunc(playerID)
	}
	return DashboardData{}, nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) AddPlayer(playerID, name, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, struct{ PlayerID, Name, Password string }{playerID, name, password})
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(playerID, name, password)
	}
	return nil
}

func (m *MockStore) GetStatsForEditing(playerID string) (StatSheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetStatsForEditingFunc != nil {
		return m.GetStatsForEditingFunc(playerID)
	}
	return StatSheet{}, nil
}

func (m *MockStore) UpdateStats(playerID string, sheet StatSheet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatsCalls = append(m.UpdateStatsCalls, struct {
		PlayerID string
		Sheet    StatSheet
	}{playerID, sheet})
	if m.UpdateStatsFunc != nil {
		return m.UpdateStatsFunc(playerID, sheet)
	}
	return nil
}

func (m *MockStore) ListTeamNews() ([]TeamNewsItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTeamNewsFunc != nil {
		return m.ListTeamNewsFunc()
	}
	return nil, nil
}

func (m *MockStore) PublishNews(title string) (TeamNewsItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishNewsCalls = append(m.PublishNewsCalls, title)
	if m.PublishNewsFunc != nil {
		return m.PublishNewsFunc(title)
	}
	return TeamNewsItem{}, nil
}

func (m *MockStore) GetSchedule() ([]MatchInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetScheduleFunc != nil {
		return m.GetScheduleFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateSchedule(matches []MatchInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateScheduleCalls = append(m.UpdateScheduleCalls, matches)
	if m.UpdateScheduleFunc != nil {
		return m.UpdateScheduleFunc(matches)
	}
	return nil
}

func (m *MockStore) GetClubLeaders() (ClubLeadersData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetClubLeadersFunc != nil {
		return m.GetClubLeadersFunc()
	}
	return ClubLeadersData{}, nil
}

func (m *MockStore) Seed() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SeedFunc != nil {
		return m.SeedFunc()
	}
	return nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
