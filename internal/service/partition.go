package service

import (
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// ShowTimeLayout is how show start times are rendered in views.
const ShowTimeLayout = "01/02/2006, 15:04"

// Partition splits shows around a reference instant.
type Partition struct {
	Upcoming []model.ShowListing
	Past     []model.ShowListing
}

// PartitionShows puts every show starting strictly after now into
// Upcoming and the rest into Past, keeping input order. Neither slice
// is nil.
func PartitionShows(shows []model.ShowListing, now time.Time) Partition {
	p := Partition{
		Upcoming: make([]model.ShowListing, 0, len(shows)),
		Past:     make([]model.ShowListing, 0, len(shows)),
	}
	for _, s := range shows {
		if s.StartTime.After(now) {
			p.Upcoming = append(p.Upcoming, s)
		} else {
			p.Past = append(p.Past, s)
		}
	}
	return p
}

// FormatShowTime renders t in UTC using ShowTimeLayout.
func FormatShowTime(t time.Time) string {
	return t.UTC().Format(ShowTimeLayout)
}

// upcomingBy counts upcoming shows per key.
func upcomingBy(shows []model.ShowListing, now time.Time, key func(model.ShowListing) uint64) map[uint64]int {
	out := make(map[uint64]int)
	for _, s := range shows {
		if s.StartTime.After(now) {
			out[key(s)]++
		}
	}
	return out
}

func byVenue(s model.ShowListing) uint64  { return s.VenueID }
func byArtist(s model.ShowListing) uint64 { return s.ArtistID }
