// Package service implements the directory's use cases on top of the
// repositories: listing, search, detail pages with shows partitioned
// around the current time, and validated create/update/delete.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/monitoring"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// VenueStore persists venues.
type VenueStore interface {
	List(ctx context.Context) ([]model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]model.Venue, error)
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	Create(ctx context.Context, v *model.Venue) error
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, id uint64) error
}

// ArtistStore persists artists.
type ArtistStore interface {
	List(ctx context.Context) ([]model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]model.Artist, error)
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	Create(ctx context.Context, a *model.Artist) error
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, id uint64) error
}

// ShowStore persists shows and lists them joined with both sides.
type ShowStore interface {
	ListAll(ctx context.Context) ([]model.ShowListing, error)
	ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error)
	ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error)
	Create(ctx context.Context, s *model.Show) error
}

// EventPublisher delivers directory events after a committed write.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.DirectoryEvent) error
}

// Options carries the collaborators shared by all services. Zero
// values are replaced with a discarding logger, no event publishing
// and time.Now.
type Options struct {
	Log    *slog.Logger
	Events EventPublisher
	Now    func() time.Time
}

type core struct {
	log    *slog.Logger
	events EventPublisher
	now    func() time.Time
}

func newCore(o Options) core {
	c := core{log: o.Log, events: o.Events, now: o.Now}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// publish sends ev if a publisher is configured. Failures are logged
// only; the write has already been committed.
func (c core) publish(ctx context.Context, ev queue.DirectoryEvent) {
	if c.events == nil {
		return
	}
	if err := c.events.Publish(ctx, ev); err != nil {
		c.log.Warn("event publish failed", "type", ev.Type, "err", err)
	}
}

// storeErr passes domain errors through and hides anything else
// behind a PersistenceError after logging it.
func (c core) storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrConflict) {
		return err
	}
	c.log.Error("storage failure", "op", op, "err", err)
	return &PersistenceError{Op: op, Err: err}
}

// record counts a write and returns err unchanged.
func (c core) record(entity, op string, err error) error {
	monitoring.RecordWrite(entity, op, outcome(err))
	return err
}
