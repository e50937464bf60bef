package form

import (
	"net/url"

	"github.com/stagebook/stagebook/internal/model"
)

// ArtistForm carries the submitted fields of the artist create and
// edit forms.
type ArtistForm struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             string
	ImageLink          string
	WebsiteLink        string
	FacebookLink       string
	SeekingDescription string
}

// ArtistFromValues binds POST form values to an ArtistForm.
func ArtistFromValues(values url.Values) ArtistForm {
	return ArtistForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Phone:              values.Get("phone"),
		Genres:             values.Get("genres"),
		ImageLink:          values.Get("image_link"),
		WebsiteLink:        values.Get("website_link"),
		FacebookLink:       values.Get("facebook_link"),
		SeekingDescription: values.Get("seeking_description"),
	}
}

// ArtistFromModel prefills the form from an existing artist for the
// edit page.
func ArtistFromModel(a *model.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		WebsiteLink:        a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingDescription: a.SeekingDescription,
	}
}

// Validate checks required presence and length bounds.
func (f ArtistForm) Validate() Errors {
	var e Errors
	e = requiredString(e, "name", f.Name, 120)
	e = requiredString(e, "city", f.City, 120)
	e = requiredString(e, "state", f.State, 120)
	e = boundedString(e, "phone", f.Phone, 120)
	e = boundedString(e, "genres", f.Genres, 120)
	e = boundedString(e, "image_link", f.ImageLink, 500)
	e = boundedString(e, "website_link", f.WebsiteLink, 120)
	e = boundedString(e, "facebook_link", f.FacebookLink, 120)
	e = boundedString(e, "seeking_description", f.SeekingDescription, 120)
	return e
}

// Apply overwrites every mutable field of the artist with the
// submitted values, including blanks.
func (f ArtistForm) Apply(a *model.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = f.Genres
	a.ImageLink = f.ImageLink
	a.WebsiteLink = f.WebsiteLink
	a.FacebookLink = f.FacebookLink
	a.SeekingDescription = f.SeekingDescription
}
