package metrics

import "sync"

var _ Metrics = (*MockMetrics)(nil)

// MockMetrics is a no-op Metrics implementation that counts calls for tests.
// It is safe for concurrent use.
type MockMetrics struct {
	mu sync.Mutex

	PlayerLoginCalls    []bool
	ModeratorLoginCalls []bool
	NewsPublishedCount  int
	ScheduleUpdateCount int
	GenAICallCalls      []string
	GenAIFailureCalls   []string
	SlackSentCount      int
	SlackFailedCount    int
	StartupTimes        []float64
}

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncPlayerLogins(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayerLoginCalls = append(m.PlayerLoginCalls, success)
}

func (m *MockMetrics) IncModeratorLogins(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ModeratorLoginCalls = append(m.ModeratorLoginCalls, success)
}

func (m *MockMetrics) IncNewsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NewsPublishedCount++
}

func (m *MockMetrics) IncScheduleUpdates() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScheduleUpdateCount++
}

func (m *MockMetrics) IncGenAICalls(capability string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenAICallCalls = append(m.GenAICallCalls, capability)
}

func (m *MockMetrics) IncGenAIFailures(capability string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenAIFailureCalls = append(m.GenAIFailureCalls, capability)
}

func (m *MockMetrics) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackSentCount++
}

func (m *MockMetrics) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackFailedCount++
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
