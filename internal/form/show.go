package form

import (
	"net/url"
	"time"

	"github.com/stagebook/stagebook/internal/model"
)

// ShowForm carries the submitted fields of the show booking form. The
// raw strings are kept so the form can be re-rendered with the user's
// input after a validation failure.
type ShowForm struct {
	ArtistID  string
	VenueID   string
	StartTime string

	artistID int64
	venueID  int64
	startAt  time.Time
}

// ShowFromValues binds POST form values to a ShowForm.
func ShowFromValues(values url.Values) ShowForm {
	return ShowForm{
		ArtistID:  values.Get("artist_id"),
		VenueID:   values.Get("venue_id"),
		StartTime: values.Get("start_time"),
	}
}

// Validate checks that both ids are positive integers and the start
// time parses in the expected layout. The parsed values are retained
// for Apply.
func (f *ShowForm) Validate() Errors {
	var e Errors
	f.artistID, e = parseID(e, "artist_id", f.ArtistID)
	f.venueID, e = parseID(e, "venue_id", f.VenueID)
	f.startAt, e = parseStartTime(e, f.StartTime)
	return e
}

// Apply populates a show from the parsed submission. Validate must
// have passed first.
func (f *ShowForm) Apply(s *model.Show) {
	s.ArtistID = f.artistID
	s.VenueID = f.venueID
	s.StartTime = f.startAt
}
