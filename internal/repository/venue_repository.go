// Package repository contains data access logic separated from HTTP handlers.
// This file defines the repository for venues. Reads run directly on the
// pool; every write runs in its own transaction through WithTx so a
// failure never leaves a partial change behind.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/fyyur/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, genres, image_link, facebook_link,
	website_link, seeking_talent, seeking_description, completed`

// VenueRepo encapsulates all database queries related to venues. It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVenue(s scanner) (*model.Venue, error) {
	var v model.Venue
	var genres string
	if err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription, &v.Completed); err != nil {
		return nil, err
	}
	v.Genres = model.DecodeGenres(genres)
	return &v, nil
}

func (r *VenueRepo) list(ctx context.Context, q string, args ...any) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every venue ordered by id.
func (r *VenueRepo) List(ctx context.Context) ([]model.Venue, error) {
	return r.list(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
}

// SearchByName returns venues whose name contains term, ignoring case.
// An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	return r.list(ctx, `SELECT `+venueColumns+` FROM venues
		WHERE LOWER(name) LIKE ? ESCAPE '!'
		ORDER BY id`, likePattern(term))
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// Create inserts a new venue. On success the venue's ID field is
// populated with the auto-generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `INSERT INTO venues (name, city, state, address, phone, genres, image_link,
			facebook_link, website_link, seeking_talent, seeking_description, completed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
			model.EncodeGenres(v.Genres), v.ImageLink, v.FacebookLink, v.WebsiteLink,
			v.SeekingTalent, v.SeekingDescription, v.Completed)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		v.ID = uint64(id)
		return nil
	})
}

// Update replaces every form-editable column of the venue identified by
// v.ID. Completed is left untouched. ErrVenueNotFound is returned when
// the venue does not exist; existence is checked explicitly because
// MySQL reports zero affected rows when nothing changed.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "venues", v.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrVenueNotFound
		}
		const q = `UPDATE venues
			SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?, image_link = ?,
			    facebook_link = ?, website_link = ?, seeking_talent = ?, seeking_description = ?
			WHERE id = ?`
		_, err = tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
			model.EncodeGenres(v.Genres), v.ImageLink, v.FacebookLink, v.WebsiteLink,
			v.SeekingTalent, v.SeekingDescription, v.ID)
		return err
	})
}

// Delete removes a venue. If the venue does not exist ErrVenueNotFound
// is returned. Venues with booked shows are not removed: the call fails
// with an error matching ErrConflict and storage is left unchanged.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "venues", id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrVenueNotFound
		}
		var shows int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = ?`, id).Scan(&shows); err != nil {
			return err
		}
		if shows > 0 {
			return fmt.Errorf("venue %d has %d shows: %w", id, shows, ErrConflict)
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
		return err
	})
}
