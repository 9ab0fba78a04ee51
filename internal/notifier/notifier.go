package notifier

import "github.com/flameunter/fanclub/internal/club"

// Notifier defines a high-level interface for announcing club events to fans.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For moderator actions
	SendNewsNotification(item club.TeamNewsItem, dryRun bool) error
	SendScheduleNotification(matches []club.MatchInfo, dryRun bool) error
	SendPlayerJoinedNotification(player club.Player, dryRun bool) error
}
