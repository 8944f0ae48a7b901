// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// DirectoryQueue is the durable queue directory events are published to.
const DirectoryQueue = "directory.events"

// Event types.
const (
	VenueCreated  = "venue.created"
	VenueUpdated  = "venue.updated"
	VenueDeleted  = "venue.deleted"
	ArtistCreated = "artist.created"
	ArtistUpdated = "artist.updated"
	ArtistDeleted = "artist.deleted"
	ShowCreated   = "show.created"
)

// DirectoryEvent is published after a venue, artist or show write has
// been committed. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type DirectoryEvent struct {
	Type       string `json:"type"`
	VenueID    uint64 `json:"venue_id,omitempty"`
	ArtistID   uint64 `json:"artist_id,omitempty"`
	Name       string `json:"name,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// NewEvent stamps an event of the given type with the current UTC time.
func NewEvent(typ string) DirectoryEvent {
	return DirectoryEvent{Type: typ, OccurredAt: time.Now().UTC().Format(time.RFC3339)}
}
