package model

// Venue represents a place that books artists for shows.  Genres is
// the set of musical styles the venue hosts; it is persisted as a
// single ", "-joined string (see EncodeGenres).  This struct
// corresponds to a row in the `venues` table.
//
// Fields:
//
//	ID                 – primary key identifier.
//	Name               – display name of the venue.
//	City, State        – location, used as the grouping key of the listing.
//	Address            – street address.
//	Phone              – contact number as entered in the form.
//	Genres             – genres hosted by the venue.
//	ImageLink          – URL of the venue image.
//	FacebookLink       – URL of the venue's facebook page.
//	WebsiteLink        – URL of the venue's website.
//	SeekingTalent      – whether the venue is looking for artists.
//	SeekingDescription – free text shown when SeekingTalent is set.
//	Completed          – bookkeeping flag, not editable through forms.
type Venue struct {
	ID                 uint64   `json:"id"`                  // venues.id
	Name               string   `json:"name"`                // venues.name
	City               string   `json:"city"`                // venues.city
	State              string   `json:"state"`               // venues.state
	Address            string   `json:"address"`             // venues.address
	Phone              string   `json:"phone"`               // venues.phone
	Genres             []string `json:"genres"`              // venues.genres (", "-joined)
	ImageLink          string   `json:"image_link"`          // venues.image_link
	FacebookLink       string   `json:"facebook_link"`       // venues.facebook_link
	WebsiteLink        string   `json:"website_link"`        // venues.website_link
	SeekingTalent      bool     `json:"seeking_talent"`      // venues.seeking_talent
	SeekingDescription string   `json:"seeking_description"` // venues.seeking_description
	Completed          bool     `json:"completed"`           // venues.completed
}
