package slack

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/metrics"
	"github.com/flameunter/fanclub/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending club announcements to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	_, _, err := s.api.PostMessageContext(context.Background(), s.channelID, slack.MsgOptionBlocks(message.Blocks.BlockSet...))
	if err != nil {
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		s.metrics.IncSlackNotifFailed()
		return err
	}
	s.metrics.IncSlackNotifSent()
	return nil
}

// SendNewsNotification announces a freshly published bulletin item.
func (s *Notifier) SendNewsNotification(item club.TeamNewsItem, dryRun bool) error {
	return s.sendMessage(formatNewsNotification(item), dryRun)
}

// SendScheduleNotification announces a replaced match schedule.
func (s *Notifier) SendScheduleNotification(matches []club.MatchInfo, dryRun bool) error {
	return s.sendMessage(formatScheduleNotification(matches), dryRun)
}

// SendPlayerJoinedNotification announces a new roster member.
func (s *Notifier) SendPlayerJoinedNotification(player club.Player, dryRun bool) error {
	return s.sendMessage(formatPlayerJoinedNotification(player), dryRun)
}
