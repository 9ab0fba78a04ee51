package pubsub

import "github.com/flameunter/fanclub/internal/club"

// EventType names a Pub/Sub topic for one kind of club event.
type EventType string

const (
	EventNewsPublished   EventType = "fanclub.news.published"
	EventScheduleUpdated EventType = "fanclub.schedule.updated"
	EventPlayerAdded     EventType = "fanclub.player.added"
)

// NewsPublishedEvent is the payload for EventNewsPublished.
type NewsPublishedEvent struct {
	EventID string            `msgpack:"event_id"`
	Item    club.TeamNewsItem `msgpack:"item"`
}

// ScheduleUpdatedEvent is the payload for EventScheduleUpdated. It carries
// the full replacement snapshot, mirroring the store's update semantics.
type ScheduleUpdatedEvent struct {
	EventID string           `msgpack:"event_id"`
	Matches []club.MatchInfo `msgpack:"matches"`
}

// PlayerAddedEvent is the payload for EventPlayerAdded. Only the public view
// crosses the wire.
type PlayerAddedEvent struct {
	EventID string      `msgpack:"event_id"`
	Player  club.Player `msgpack:"player"`
}
