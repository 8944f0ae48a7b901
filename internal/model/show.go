package model

import "time"

// Show is a booking of an artist at a venue.  A show has no surrogate
// key: it is identified by (ArtistID, VenueID, StartTime), so the same
// pairing may be booked on several dates but never twice at the same
// instant.  Whether a show is upcoming or past is not stored; it is
// derived from StartTime at query time.
type Show struct {
	ArtistID  uint64    // shows.artist_id
	VenueID   uint64    // shows.venue_id
	StartTime time.Time // shows.start_time (UTC)
}

// ShowListing is a Show joined with the names and image links of both
// sides of the booking.  Detail pages and the show index are built from
// listings so no further lookups are needed per show.
type ShowListing struct {
	Show
	ArtistName      string
	ArtistImageLink string
	VenueName       string
	VenueImageLink  string
}
