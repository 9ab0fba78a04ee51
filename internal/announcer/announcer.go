package announcer

import (
	"github.com/charmbracelet/log"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/metrics"
	"github.com/flameunter/fanclub/internal/notifier"
	"github.com/flameunter/fanclub/internal/pubsub"
	"github.com/google/uuid"
)

// Announcer fans a committed moderator action out to fans: a Slack
// notification plus a Pub/Sub event. Fan-out is best effort; the store
// mutation has already committed, so failures are logged and swallowed.
type Announcer struct {
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}

// New creates a new Announcer.
func New(notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Announcer {
	return &Announcer{
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// AnnounceNews broadcasts a freshly published bulletin item.
func (a *Announcer) AnnounceNews(item club.TeamNewsItem, dryRun bool) {
	a.metrics.IncNewsPublished()
	if err := a.notifier.SendNewsNotification(item, dryRun); err != nil {
		log.Error("Failed to send news notification", "error", err, "newsID", item.ID)
	}
	a.publish(pubsub.EventNewsPublished, pubsub.NewsPublishedEvent{EventID: uuid.NewString(), Item: item}, dryRun)
}

// AnnounceSchedule broadcasts a replaced match schedule.
func (a *Announcer) AnnounceSchedule(matches []club.MatchInfo, dryRun bool) {
	a.metrics.IncScheduleUpdates()
	if err := a.notifier.SendScheduleNotification(matches, dryRun); err != nil {
		log.Error("Failed to send schedule notification", "error", err)
	}
	a.publish(pubsub.EventScheduleUpdated, pubsub.ScheduleUpdatedEvent{EventID: uuid.NewString(), Matches: matches}, dryRun)
}

// AnnouncePlayerJoined broadcasts a new roster member.
func (a *Announcer) AnnouncePlayerJoined(player club.Player, dryRun bool) {
	if err := a.notifier.SendPlayerJoinedNotification(player, dryRun); err != nil {
		log.Error("Failed to send player joined notification", "error", err, "playerID", player.ID)
	}
	a.publish(pubsub.EventPlayerAdded, pubsub.PlayerAddedEvent{EventID: uuid.NewString(), Player: player}, dryRun)
}

func (a *Announcer) publish(topic pubsub.EventType, data any, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would publish event", "topic", topic)
		return
	}
	if err := a.pubsub.SendMessage(topic, data); err != nil {
		log.Error("Failed to publish event", "error", err, "topic", topic)
	}
}
