package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
)

// VenueService serves the venue pages and forms.
type VenueService struct {
	core
	venues VenueStore
	shows  ShowStore
}

func NewVenueService(venues VenueStore, shows ShowStore, o Options) *VenueService {
	return &VenueService{core: newCore(o), venues: venues, shows: shows}
}

// ListGrouped returns all venues grouped by their exact (city, state)
// pair. Groups appear in the order their first venue appears by id.
func (s *VenueService) ListGrouped(ctx context.Context) ([]VenueArea, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, s.storeErr("Listing venues", err)
	}
	shows, err := s.shows.ListAll(ctx)
	if err != nil {
		return nil, s.storeErr("Listing venues", err)
	}
	upcoming := upcomingBy(shows, s.now(), byVenue)

	type area struct{ city, state string }
	index := make(map[area]int)
	out := make([]VenueArea, 0)
	for _, v := range venues {
		k := area{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, VenueArea{City: v.City, State: v.State, Venues: []Summary{}})
		}
		out[i].Venues = append(out[i].Venues, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return out, nil
}

// Search returns venues whose name contains term, ignoring case. An
// empty term matches every venue.
func (s *VenueService) Search(ctx context.Context, term string) (SearchResult, error) {
	venues, err := s.venues.SearchByName(ctx, term)
	if err != nil {
		return SearchResult{}, s.storeErr("Searching venues", err)
	}
	shows, err := s.shows.ListAll(ctx)
	if err != nil {
		return SearchResult{}, s.storeErr("Searching venues", err)
	}
	upcoming := upcomingBy(shows, s.now(), byVenue)
	res := SearchResult{Count: len(venues), Data: make([]Summary, 0, len(venues))}
	for _, v := range venues {
		res.Data = append(res.Data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return res, nil
}

// Detail returns the venue with its shows partitioned around now.
func (s *VenueService) Detail(ctx context.Context, id uint64) (*VenueDetail, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeErr("Loading venue", err)
	}
	shows, err := s.shows.ListByVenue(ctx, id)
	if err != nil {
		return nil, s.storeErr("Loading venue", err)
	}
	p := PartitionShows(shows, s.now())
	return &VenueDetail{
		Venue:              *v,
		PastShows:          venueShows(p.Past),
		UpcomingShows:      venueShows(p.Upcoming),
		PastShowsCount:     len(p.Past),
		UpcomingShowsCount: len(p.Upcoming),
	}, nil
}

// EditForm returns the edit form prefilled with the venue's values.
func (s *VenueService) EditForm(ctx context.Context, id uint64) (form.VenueForm, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return form.VenueForm{}, s.storeErr("Loading venue", err)
	}
	return form.FromVenue(*v), nil
}

// Create validates f and stores a new venue.
func (s *VenueService) Create(ctx context.Context, f form.VenueForm) (*model.Venue, error) {
	v, err := s.create(ctx, f)
	return v, s.record("venue", "create", err)
}

func (s *VenueService) create(ctx context.Context, f form.VenueForm) (*model.Venue, error) {
	f.Trim()
	if fields := form.Validate(f); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	v := f.Venue()
	if err := s.venues.Create(ctx, &v); err != nil {
		return nil, s.storeErr(fmt.Sprintf("Venue %s", f.Name), err)
	}
	ev := queue.NewEvent(queue.VenueCreated)
	ev.VenueID, ev.Name = v.ID, v.Name
	s.publish(ctx, ev)
	return &v, nil
}

// Update replaces every form field of venue id with the values of f.
// A missing venue is reported before the form is validated.
// Fields that are not part of the form are kept.
func (s *VenueService) Update(ctx context.Context, id uint64, f form.VenueForm) (*model.Venue, error) {
	v, err := s.update(ctx, id, f)
	return v, s.record("venue", "update", err)
}

func (s *VenueService) update(ctx context.Context, id uint64, f form.VenueForm) (*model.Venue, error) {
	if _, err := s.venues.GetByID(ctx, id); err != nil {
		return nil, s.storeErr("Loading venue", err)
	}
	f.Trim()
	if fields := form.Validate(f); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	v := f.Venue()
	v.ID = id
	if err := s.venues.Update(ctx, &v); err != nil {
		return nil, s.storeErr(fmt.Sprintf("Venue %s", f.Name), err)
	}
	updated, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeErr(fmt.Sprintf("Venue %s", f.Name), err)
	}
	ev := queue.NewEvent(queue.VenueUpdated)
	ev.VenueID, ev.Name = updated.ID, updated.Name
	s.publish(ctx, ev)
	return updated, nil
}

// Delete removes venue id and returns its name. A venue that still
// has shows is not removed.
func (s *VenueService) Delete(ctx context.Context, id uint64) (string, error) {
	name, err := s.delete(ctx, id)
	return name, s.record("venue", "delete", err)
}

func (s *VenueService) delete(ctx context.Context, id uint64) (string, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return "", s.storeErr("Deleting venue", err)
	}
	if err := s.venues.Delete(ctx, id); err != nil {
		return "", s.storeErr(fmt.Sprintf("Venue %s", v.Name), err)
	}
	ev := queue.NewEvent(queue.VenueDeleted)
	ev.VenueID, ev.Name = id, v.Name
	s.publish(ctx, ev)
	return v.Name, nil
}
