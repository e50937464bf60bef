package form

import (
	"net/url"

	"github.com/stagebook/stagebook/internal/model"
)

// VenueForm carries the submitted fields of the venue create and edit
// forms. Field names match the form input names one to one.
type VenueForm struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             string
	ImageLink          string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
}

// VenueFromValues binds POST form values to a VenueForm.
func VenueFromValues(values url.Values) VenueForm {
	return VenueForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Address:            values.Get("address"),
		Phone:              values.Get("phone"),
		Genres:             values.Get("genres"),
		ImageLink:          values.Get("image_link"),
		WebsiteLink:        values.Get("website_link"),
		FacebookLink:       values.Get("facebook_link"),
		SeekingTalent:      checkbox(values, "seeking_talent"),
		SeekingDescription: values.Get("seeking_description"),
	}
}

// VenueFromModel prefills the form from an existing venue for the edit
// page.
func VenueFromModel(v *model.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		WebsiteLink:        v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// Validate checks required presence and length bounds. Bounds mirror
// the column widths so the database never truncates silently.
func (f VenueForm) Validate() Errors {
	var e Errors
	e = requiredString(e, "name", f.Name, 120)
	e = requiredString(e, "city", f.City, 120)
	e = requiredString(e, "state", f.State, 120)
	e = requiredString(e, "address", f.Address, 120)
	e = boundedString(e, "phone", f.Phone, 120)
	e = boundedString(e, "genres", f.Genres, 120)
	e = boundedString(e, "image_link", f.ImageLink, 500)
	e = boundedString(e, "website_link", f.WebsiteLink, 120)
	e = boundedString(e, "facebook_link", f.FacebookLink, 120)
	e = boundedString(e, "seeking_description", f.SeekingDescription, 120)
	return e
}

// Apply overwrites every mutable field of the venue with the submitted
// values, including blanks. Edits are full replacements, never merges.
func (f VenueForm) Apply(v *model.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = f.Genres
	v.ImageLink = f.ImageLink
	v.WebsiteLink = f.WebsiteLink
	v.FacebookLink = f.FacebookLink
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}
