package repository

import (
	"context"
	"database/sql"

	"github.com/stagebook/stagebook/internal/model"
)

// ShowRepo manages persistence for shows. A show row is a pure join
// between one artist and one venue; both foreign keys must resolve at
// insert time.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the
// struct. A foreign-key failure (unknown artist or venue id) is
// reported as ErrConflict so the handler can surface a clean failure
// message instead of a raw driver error.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, s.ArtistID, s.VenueID, formatTime(s.StartTime))
	if err != nil {
		if isReferentialViolation(err) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.ID = id
	return nil
}

// ListAll returns every show joined to its artist and venue, with the
// denormalized display fields the flat listing needs. Rows follow show
// id order.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.ShowListing{}
	for rows.Next() {
		var (
			l     model.ShowListing
			start string
		)
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &start); err != nil {
			return nil, err
		}
		t, err := parseTime(start)
		if err != nil {
			return nil, err
		}
		l.StartTime = t
		result = append(result, l)
	}
	return result, rows.Err()
}

// ListForVenue returns the shows booked at a venue, each joined to its
// performing artist. Rows follow show id order; the caller splits them
// into past and upcoming buckets.
func (r *ShowRepo) ListForVenue(ctx context.Context, venueID int64) ([]model.ShowDetail, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.venue_id = ?
	           ORDER BY s.id`
	return r.listDetails(ctx, q, venueID)
}

// ListForArtist returns the shows an artist performs, each joined to
// its hosting venue. Rows follow show id order.
func (r *ShowRepo) ListForArtist(ctx context.Context, artistID int64) ([]model.ShowDetail, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.id`
	return r.listDetails(ctx, q, artistID)
}

func (r *ShowRepo) listDetails(ctx context.Context, query string, id int64) ([]model.ShowDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.ShowDetail{}
	for rows.Next() {
		var (
			d     model.ShowDetail
			start string
		)
		if err := rows.Scan(&d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.VenueID, &d.VenueName, &d.VenueImageLink, &start); err != nil {
			return nil, err
		}
		t, err := parseTime(start)
		if err != nil {
			return nil, err
		}
		d.StartTime = t
		result = append(result, d)
	}
	return result, rows.Err()
}
