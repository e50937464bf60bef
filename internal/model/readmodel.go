package model

import "time"

// This file defines the request-scoped read-model shapes assembled from
// persisted entities for presentation.  They carry only what the
// templates display.

// Summary is a lightweight projection of a venue or artist used in
// listings and search results.  UpcomingShows counts the entity's shows
// starting strictly after the reference instant.
type Summary struct {
	ID            int64  // entity id
	Name          string // entity name
	UpcomingShows int    // number of upcoming shows
}

// CityGroup collects every venue located in one (city, state) pair.
type CityGroup struct {
	City   string
	State  string
	Venues []Summary
}

// SearchResults holds the outcome of a name search.
type SearchResults struct {
	Count int       // number of matches
	Data  []Summary // one projection per match
}

// ShowDetail is one show row on a venue or artist detail page.  Both
// sides of the join are populated so the same shape serves either page:
// a venue page displays the artist fields, an artist page the venue
// fields.
type ShowDetail struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	StartTime       time.Time
}

// VenuePage is the fully assembled venue detail view.
type VenuePage struct {
	Venue
	PastShows          []ShowDetail
	UpcomingShows      []ShowDetail
	PastShowsCount     int
	UpcomingShowsCount int
}

// ArtistPage is the fully assembled artist detail view.
type ArtistPage struct {
	Artist
	PastShows          []ShowDetail
	UpcomingShows      []ShowDetail
	PastShowsCount     int
	UpcomingShowsCount int
}

// ShowListing is one row of the flat /shows list with denormalized
// display fields from both sides of the join.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}
