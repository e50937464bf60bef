package model

import "time"

// Show links exactly one artist to exactly one venue at a start time.
// It is a pure join entity and has no fields of its own beyond the
// references and the schedule.  The database stores start_time as a
// fixed-format string; the repository layer parses it so StartTime is
// always a time.Time above that boundary.
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – performing artist (shows.artist_id).
//  VenueID   – hosting venue (shows.venue_id).
//  StartTime – when the show begins (UTC).
type Show struct {
	ID        int64     // shows.id
	ArtistID  int64     // shows.artist_id
	VenueID   int64     // shows.venue_id
	StartTime time.Time // shows.start_time
}
