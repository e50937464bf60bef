// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow the handler layer to
// distinguish between failure scenarios: a missing row renders the 404
// page, while ErrConflict signals that a mutation cannot proceed
// because of dependent records (e.g. deleting a venue that still has
// shows booked).
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrVenueNotFound indicates that a venue was not located in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound indicates that an artist was not located in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ErrConflict is returned when a mutation cannot be performed because
// of conflicting state, such as deleting a venue that is still
// referenced by shows, or creating a show against an artist or venue id
// that does not exist.
var ErrConflict = errors.New("conflict")

// isReferentialViolation reports whether err is a foreign-key constraint
// failure. Production runs on MySQL and the test suite on SQLite, so
// both drivers' error shapes are recognized.
func isReferentialViolation(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1451: cannot delete parent row; 1452: cannot add child row
		return me.Number == 1451 || me.Number == 1452
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY || code&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
