package services

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Routing keys of published content events.
const (
	EventShowCreated      = "show.created"
	EventEpisodePublished = "episode.published"
)

// EventPublisher delivers content events to downstream consumers.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ContentEvent describes a newly created show or episode.
type ContentEvent struct {
	Type       string    `json:"type"`
	ShowID     string    `json:"show_id"`
	EpisodeID  string    `json:"episode_id,omitempty"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent is best effort: the entity write has already succeeded and
// is never rolled back because of a broker failure.
func publishEvent(pub EventPublisher, log *zap.Logger, event ContentEvent) {
	if pub == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Warn("failed to marshal content event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	if err := pub.Publish(event.Type, body); err != nil {
		log.Warn("failed to publish content event",
			zap.String("type", event.Type),
			zap.String("show_id", event.ShowID),
			zap.Error(err))
	}
}
