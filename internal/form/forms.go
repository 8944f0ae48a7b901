package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueForm is the create/edit venue form.
type VenueForm struct {
	Name               string   `form:"name" json:"name" validate:"required,max=255"`
	City               string   `form:"city" json:"city" validate:"required,max=255"`
	State              string   `form:"state" json:"state" validate:"required,usstate"`
	Address            string   `form:"address" json:"address" validate:"required,max=255"`
	Phone              string   `form:"phone" json:"phone" validate:"required,phone"`
	Genres             []string `form:"genres" json:"genres" validate:"min=1,dive,genre"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=255"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url,max=255"`
	SeekingTalent      Checkbox `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"max=1000"`
}

// Trim strips surrounding whitespace from every text field.
func (f *VenueForm) Trim() {
	trim(&f.Name, &f.City, &f.State, &f.Address, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	f.Genres = trimAll(f.Genres)
}

// Venue maps the form onto a new venue record.
func (f VenueForm) Venue() model.Venue {
	return model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      bool(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

// FromVenue prefills an edit form with the current values of v.
func FromVenue(v model.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistForm is the create/edit artist form.
type ArtistForm struct {
	Name               string   `form:"name" json:"name" validate:"required,max=255"`
	City               string   `form:"city" json:"city" validate:"required,max=255"`
	State              string   `form:"state" json:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" json:"phone" validate:"required,phone"`
	Genres             []string `form:"genres" json:"genres" validate:"min=1,dive,genre"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=255"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url,max=255"`
	SeekingVenue       Checkbox `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"max=1000"`
}

// Trim strips surrounding whitespace from every text field.
func (f *ArtistForm) Trim() {
	trim(&f.Name, &f.City, &f.State, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	f.Genres = trimAll(f.Genres)
}

// Artist maps the form onto a new artist record.
func (f ArtistForm) Artist() model.Artist {
	return model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       bool(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

// FromArtist prefills an edit form with the current values of a.
func FromArtist(a model.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

// ShowForm is the create show form. Ids are kept as strings so a
// non-numeric value is reported as a field error instead of failing
// the whole bind.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" json:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" json:"start_time" validate:"required,showtime"`
}

// Trim strips surrounding whitespace from every field.
func (f *ShowForm) Trim() {
	trim(&f.ArtistID, &f.VenueID, &f.StartTime)
}

// Show maps a validated form onto a show. The start time is truncated
// to whole seconds, the precision of the DATETIME column.
func (f ShowForm) Show() (model.Show, error) {
	artistID, err := strconv.ParseUint(f.ArtistID, 10, 64)
	if err != nil {
		return model.Show{}, &FieldError{Field: "artist_id", Message: msgInteger}
	}
	venueID, err := strconv.ParseUint(f.VenueID, 10, 64)
	if err != nil {
		return model.Show{}, &FieldError{Field: "venue_id", Message: msgInteger}
	}
	start, err := ParseShowTime(f.StartTime)
	if err != nil {
		return model.Show{}, &FieldError{Field: "start_time", Message: msgDatetime}
	}
	return model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start.Truncate(time.Second)}, nil
}

// FieldError reports a single form field that could not be converted.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
