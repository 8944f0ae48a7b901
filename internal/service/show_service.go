package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
)

// ShowService serves the show index and the booking form.
type ShowService struct {
	core
	shows ShowStore
}

func NewShowService(shows ShowStore, o Options) *ShowService {
	return &ShowService{core: newCore(o), shows: shows}
}

// List returns every show, past and upcoming, ordered by start time.
func (s *ShowService) List(ctx context.Context) ([]ShowRow, error) {
	shows, err := s.shows.ListAll(ctx)
	if err != nil {
		return nil, s.storeErr("Listing shows", err)
	}
	out := make([]ShowRow, 0, len(shows))
	for _, sh := range shows {
		out = append(out, ShowRow{
			VenueID:         sh.VenueID,
			VenueName:       sh.VenueName,
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       FormatShowTime(sh.StartTime),
		})
	}
	return out, nil
}

// Create validates f and books the show. Unknown artist or venue ids
// yield a not-found error; booking the same triple twice a conflict.
func (s *ShowService) Create(ctx context.Context, f form.ShowForm) (*model.Show, error) {
	sh, err := s.create(ctx, f)
	return sh, s.record("show", "create", err)
}

func (s *ShowService) create(ctx context.Context, f form.ShowForm) (*model.Show, error) {
	f.Trim()
	if fields := form.Validate(f); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	sh, err := f.Show()
	if err != nil {
		var fe *form.FieldError
		if errors.As(err, &fe) {
			return nil, &ValidationError{Fields: map[string]string{fe.Field: fe.Message}}
		}
		return nil, err
	}
	if err := s.shows.Create(ctx, &sh); err != nil {
		return nil, s.storeErr("Show", err)
	}
	ev := queue.NewEvent(queue.ShowCreated)
	ev.ArtistID, ev.VenueID = sh.ArtistID, sh.VenueID
	ev.StartTime = sh.StartTime.Format(time.RFC3339)
	s.publish(ctx, ev)
	return &sh, nil
}
