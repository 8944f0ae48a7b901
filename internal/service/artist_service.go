package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
)

// ArtistService serves the artist pages and forms.
type ArtistService struct {
	core
	artists ArtistStore
	shows   ShowStore
}

func NewArtistService(artists ArtistStore, shows ShowStore, o Options) *ArtistService {
	return &ArtistService{core: newCore(o), artists: artists, shows: shows}
}

// List returns every artist ordered by id.
func (s *ArtistService) List(ctx context.Context) ([]ArtistItem, error) {
	artists, err := s.artists.List(ctx)
	if err != nil {
		return nil, s.storeErr("Listing artists", err)
	}
	out := make([]ArtistItem, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistItem{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

// Search returns artists whose name contains term, ignoring case. An
// empty term matches every artist.
func (s *ArtistService) Search(ctx context.Context, term string) (SearchResult, error) {
	artists, err := s.artists.SearchByName(ctx, term)
	if err != nil {
		return SearchResult{}, s.storeErr("Searching artists", err)
	}
	shows, err := s.shows.ListAll(ctx)
	if err != nil {
		return SearchResult{}, s.storeErr("Searching artists", err)
	}
	upcoming := upcomingBy(shows, s.now(), byArtist)
	res := SearchResult{Count: len(artists), Data: make([]Summary, 0, len(artists))}
	for _, a := range artists {
		res.Data = append(res.Data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]})
	}
	return res, nil
}

// Detail returns the artist with its shows partitioned around now.
func (s *ArtistService) Detail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeErr("Loading artist", err)
	}
	shows, err := s.shows.ListByArtist(ctx, id)
	if err != nil {
		return nil, s.storeErr("Loading artist", err)
	}
	p := PartitionShows(shows, s.now())
	return &ArtistDetail{
		Artist:             *a,
		PastShows:          artistShows(p.Past),
		UpcomingShows:      artistShows(p.Upcoming),
		PastShowsCount:     len(p.Past),
		UpcomingShowsCount: len(p.Upcoming),
	}, nil
}

// EditForm returns the edit form prefilled with the artist's values.
func (s *ArtistService) EditForm(ctx context.Context, id uint64) (form.ArtistForm, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return form.ArtistForm{}, s.storeErr("Loading artist", err)
	}
	return form.FromArtist(*a), nil
}

// Create validates f and stores a new artist.
func (s *ArtistService) Create(ctx context.Context, f form.ArtistForm) (*model.Artist, error) {
	a, err := s.create(ctx, f)
	return a, s.record("artist", "create", err)
}

func (s *ArtistService) create(ctx context.Context, f form.ArtistForm) (*model.Artist, error) {
	f.Trim()
	if fields := form.Validate(f); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	a := f.Artist()
	if err := s.artists.Create(ctx, &a); err != nil {
		return nil, s.storeErr(fmt.Sprintf("Artist %s", f.Name), err)
	}
	ev := queue.NewEvent(queue.ArtistCreated)
	ev.ArtistID, ev.Name = a.ID, a.Name
	s.publish(ctx, ev)
	return &a, nil
}

// Update replaces every form field of artist id with the values of f.
// A missing artist is reported before the form is validated.
func (s *ArtistService) Update(ctx context.Context, id uint64, f form.ArtistForm) (*model.Artist, error) {
	a, err := s.update(ctx, id, f)
	return a, s.record("artist", "update", err)
}

func (s *ArtistService) update(ctx context.Context, id uint64, f form.ArtistForm) (*model.Artist, error) {
	if _, err := s.artists.GetByID(ctx, id); err != nil {
		return nil, s.storeErr("Loading artist", err)
	}
	f.Trim()
	if fields := form.Validate(f); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	a := f.Artist()
	a.ID = id
	if err := s.artists.Update(ctx, &a); err != nil {
		return nil, s.storeErr(fmt.Sprintf("Artist %s", f.Name), err)
	}
	ev := queue.NewEvent(queue.ArtistUpdated)
	ev.ArtistID, ev.Name = a.ID, a.Name
	s.publish(ctx, ev)
	return &a, nil
}

// Delete removes artist id and returns its name. An artist that still
// has shows is not removed.
func (s *ArtistService) Delete(ctx context.Context, id uint64) (string, error) {
	name, err := s.delete(ctx, id)
	return name, s.record("artist", "delete", err)
}

func (s *ArtistService) delete(ctx context.Context, id uint64) (string, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return "", s.storeErr("Deleting artist", err)
	}
	if err := s.artists.Delete(ctx, id); err != nil {
		return "", s.storeErr(fmt.Sprintf("Artist %s", a.Name), err)
	}
	ev := queue.NewEvent(queue.ArtistDeleted)
	ev.ArtistID, ev.Name = id, a.Name
	s.publish(ctx, ev)
	return a.Name, nil
}
