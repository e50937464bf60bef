package model

// Artist represents a performer who plays at shows.  An artist can have
// many associated shows.  This struct corresponds to a row in the
// `artists` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the artist.
//  City/State         – home location.
//  Phone              – contact phone number.
//  Genres             – comma-delimited genre tags (free text).
//  ImageLink          – URL of the artist image.
//  WebsiteLink        – URL of the artist website.
//  FacebookLink       – URL of the artist's social profile.
//  SeekingDescription – blurb describing the venues the artist seeks.
type Artist struct {
	ID                 int64  // artists.id
	Name               string // artists.name
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone
	Genres             string // artists.genres
	ImageLink          string // artists.image_link
	WebsiteLink        string // artists.website_link
	FacebookLink       string // artists.facebook_link
	SeekingDescription string // artists.seeking_description
}
