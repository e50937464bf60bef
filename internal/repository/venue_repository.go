// Package repository contains the data access layer. This file defines
// persistence and read-model queries for venues. Mutations run inside a
// scoped transaction: either the whole write commits or nothing does,
// and the transaction is resolved on every exit path.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/stagebook/stagebook/internal/model"
)

// venueColumns is the canonical select list for venue rows.
const venueColumns = `id, name, city, state, address, phone, genres, image_link, website_link, facebook_link, seeking_talent, seeking_description`

// VenueRepo manages persistence for venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue and assigns the generated ID back to the
// struct. The insert runs in its own transaction.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `INSERT INTO venues (name, city, state, address, phone, genres, image_link, website_link, facebook_link, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.WebsiteLink, v.FacebookLink, v.SeekingTalent, v.SeekingDescription)
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
	v.ID = id
	return nil
}

// GetByID retrieves a venue by its ID. It returns ErrVenueNotFound if
// there is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v model.Venue
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
		&v.ImageLink, &v.WebsiteLink, &v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Update overwrites every mutable field of the venue identified by
// v.ID with the values in v, including fields that are blank. The
// existence check and the write share one transaction so a concurrent
// delete cannot slip between them.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, v.ID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}

	const q = `UPDATE venues SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
	           image_link = ?, website_link = ?, facebook_link = ?, seeking_talent = ?, seeking_description = ?
	           WHERE id = ?`
	if _, err := tx.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.WebsiteLink, v.FacebookLink, v.SeekingTalent, v.SeekingDescription, v.ID); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the venue with the given ID. It returns
// ErrVenueNotFound when no row matches and ErrConflict when the venue
// is still referenced by shows (the schema does not cascade).
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
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
		return ErrVenueNotFound
	}
	return tx.Commit()
}

// ListGroupedByCity returns every venue grouped by its (city, state)
// pair, each with the number of shows starting strictly after now.
// Groups and venues within a group follow the query order (city, state,
// id ascending).
func (r *VenueRepo) ListGroupedByCity(ctx context.Context, now time.Time) ([]model.CityGroup, error) {
	const q = `SELECT v.id, v.name, v.city, v.state,
	                  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > ?)
	           FROM venues v
	           ORDER BY v.city, v.state, v.id`
	rows, err := r.db.QueryContext(ctx, q, formatTime(now))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.CityGroup
	for rows.Next() {
		var (
			s           model.Summary
			city, state string
		)
		if err := rows.Scan(&s.ID, &s.Name, &city, &state, &s.UpcomingShows); err != nil {
			return nil, err
		}
		last := len(groups) - 1
		if last < 0 || groups[last].City != city || groups[last].State != state {
			groups = append(groups, model.CityGroup{City: city, State: state})
			last++
		}
		groups[last].Venues = append(groups[last].Venues, s)
	}
	return groups, rows.Err()
}

// SearchByName performs a case-insensitive substring match against
// venue names. Matches follow the persistence default order (id).
func (r *VenueRepo) SearchByName(ctx context.Context, term string, now time.Time) (model.SearchResults, error) {
	const q = `SELECT v.id, v.name,
	                  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > ?)
	           FROM venues v
	           WHERE LOWER(v.name) LIKE ?
	           ORDER BY v.id`
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
