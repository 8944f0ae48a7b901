package service

import "github.com/iliyamo/fyyur/internal/model"

// Summary is a venue or artist entry in listings and search results.
type Summary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues sharing a city and state.
type VenueArea struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResult is the response of a name search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ArtistItem is an entry of the flat artist listing.
type ArtistItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// VenueShow is a show as seen from a venue page.
type VenueShow struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is a show as seen from an artist page.
type ArtistShow struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueDetail is a venue with its shows split into past and upcoming.
type VenueDetail struct {
	model.Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with its shows split into past and upcoming.
type ArtistDetail struct {
	model.Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ShowRow is an entry of the show index.
type ShowRow struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func venueShows(shows []model.ShowListing) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatShowTime(s.StartTime),
		})
	}
	return out
}

func artistShows(shows []model.ShowListing) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistShow{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      FormatShowTime(s.StartTime),
		})
	}
	return out
}
