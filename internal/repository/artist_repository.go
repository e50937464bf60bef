package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/stagebook/stagebook/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, website_link, facebook_link, seeking_description`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and assigns the generated ID back to the
// struct. The insert runs in its own transaction.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link, website_link, facebook_link, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.WebsiteLink, a.FacebookLink, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	a.ID = id
	return nil
}

// GetByID retrieves an artist by its ID. It returns ErrArtistNotFound
// if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	var a model.Artist
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
		&a.ImageLink, &a.WebsiteLink, &a.FacebookLink, &a.SeekingDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns every artist ordered by id. When no artists exist it
// returns an empty slice and nil error.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Artist{}
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(
			&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
			&a.ImageLink, &a.WebsiteLink, &a.FacebookLink, &a.SeekingDescription); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Update overwrites every mutable field of the artist identified by
// a.ID with the values in a, including fields that are blank.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, a.ID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	}

	const q = `UPDATE artists SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
	           image_link = ?, website_link = ?, facebook_link = ?, seeking_description = ?
	           WHERE id = ?`
	if _, err := tx.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.WebsiteLink, a.FacebookLink, a.SeekingDescription, a.ID); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the artist with the given ID. It returns
// ErrArtistNotFound when no row matches and ErrConflict when the
// artist is still referenced by shows.
func (r *ArtistRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		if isReferentialViolation(err) {
			return ErrConflict
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrArtistNotFound
	}
	return tx.Commit()
}

// SearchByName performs a case-insensitive substring match against
// artist names. Matches follow the persistence default order (id).
func (r *ArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) (model.SearchResults, error) {
	const q = `SELECT a.id, a.name,
	                  (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > ?)
	           FROM artists a
	           WHERE LOWER(a.name) LIKE ?
	           ORDER BY a.id`
	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := r.db.QueryContext(ctx, q, formatTime(now), pattern)
	if err != nil {
		return model.SearchResults{}, err
	}
	defer rows.Close()

	results := model.SearchResults{Data: []model.Summary{}}
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpcomingShows); err != nil {
			return model.SearchResults{}, err
		}
		results.Data = append(results.Data, s)
	}
	if err := rows.Err(); err != nil {
		return model.SearchResults{}, err
	}
	results.Count = len(results.Data)
	return results, nil
}
