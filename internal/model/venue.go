package model

// Venue represents a physical location hosting shows.  A venue can have
// many associated shows.  This struct corresponds to a row in the
// `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City/State         – location used for the grouped listing.
//  Address            – street address.
//  Phone              – contact phone number.
//  Genres             – comma-delimited genre tags (free text).
//  ImageLink          – URL of the venue image.
//  WebsiteLink        – URL of the venue website.
//  FacebookLink       – URL of the venue's social profile.
//  SeekingTalent      – whether the venue is looking for performers.
//  SeekingDescription – blurb shown when seeking talent.
type Venue struct {
	ID                 int64  // venues.id
	Name               string // venues.name
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone
	Genres             string // venues.genres
	ImageLink          string // venues.image_link
	WebsiteLink        string // venues.website_link
	FacebookLink       string // venues.facebook_link
	SeekingTalent      bool   // venues.seeking_talent
	SeekingDescription string // venues.seeking_description
}
