package service

import (
	"context"
	"time"
)

// Profile event kinds published after successful mutations.
const (
	ProfileEventCreated          = "profile.created"
	ProfileEventUpdated          = "profile.updated"
	ProfileEventFavoritesChanged = "profile.favorites_changed"
)

// ProfileEvent describes a persisted profile mutation for downstream
// consumers (analytics, cache invalidation).
type ProfileEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	Kind            string    `json:"kind"`
	UID             string    `json:"uid"`
	Email           string    `json:"email,omitempty"`
	FavoriteTeams   int       `json:"favorite_teams"`
	FavoritePlayers int       `json:"favorite_players"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishProfileEvent publishes a profile event for async processing.
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
