package notifier

import (
	"sync"

	"github.com/flameunter/fanclub/internal/club"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendNewsNotificationFunc         func(item club.TeamNewsItem, dryRun bool) error
	SendScheduleNotificationFunc     func(matches []club.MatchInfo, dryRun bool) error
	SendPlayerJoinedNotificationFunc func(player club.Player, dryRun bool) error

	// Call records
	SendNewsNotificationCalls         []club.TeamNewsItem
	SendScheduleNotificationCalls     [][]club.MatchInfo
	SendPlayerJoinedNotificationCalls []club.Player
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendNewsNotificationCalls = nil
	m.SendScheduleNotificationCalls = nil
	m.SendPlayerJoinedNotificationCalls = nil
}

func (m *Mock) SendNewsNotification(item club.TeamNewsItem, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendNewsNotificationCalls = append(m.SendNewsNotificationCalls, item)
	if m.SendNewsNotificationFunc != nil {
		return m.SendNewsNotificationFunc(item, dryRun)
	}
	return nil
}

func (m *Mock) SendScheduleNotification(matches []club.MatchInfo, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScheduleNotificationCalls = append(m.SendScheduleNotificationCalls, matches)
	if m.SendScheduleNotificationFunc != nil {
		return m.SendScheduleNotificationFunc(matches, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerJoinedNotification(player club.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerJoinedNotificationCalls = append(m.SendPlayerJoinedNotificationCalls, player)
	if m.SendPlayerJoinedNotificationFunc != nil {
		return m.SendPlayerJoinedNotificationFunc(player, dryRun)
	}
	return nil
}
