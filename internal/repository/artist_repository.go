package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
	website_link, seeking_venue, seeking_description`

// ArtistRepo provides persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func scanArtist(s scanner) (*model.Artist, error) {
	var a model.Artist
	var genres string
	if err := s.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription); err != nil {
		return nil, err
	}
	a.Genres = model.DecodeGenres(genres)
	return &a, nil
}

func (r *ArtistRepo) list(ctx context.Context, q string, args ...any) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every artist ordered by id.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY id`)
}

// SearchByName returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM artists
		WHERE LOWER(name) LIKE ? ESCAPE '!'
		ORDER BY id`, likePattern(term))
}

// GetByID retrieves an artist by its ID. It returns ErrArtistNotFound
// if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := scanArtist(r.db.QueryRowContext(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new artist and assigns the generated ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `INSERT INTO artists (name, city, state, phone, genres, image_link,
			facebook_link, website_link, seeking_venue, seeking_description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
			model.EncodeGenres(a.Genres), a.ImageLink, a.FacebookLink, a.WebsiteLink,
			a.SeekingVenue, a.SeekingDescription)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		a.ID = uint64(id)
		return nil
	})
}

// Update replaces all columns of the artist identified by a.ID.
// Returns ErrArtistNotFound when the artist does not exist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "artists", a.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrArtistNotFound
		}
		const q = `UPDATE artists
			SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?,
			    facebook_link = ?, website_link = ?, seeking_venue = ?, seeking_description = ?
			WHERE id = ?`
		_, err = tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
			model.EncodeGenres(a.Genres), a.ImageLink, a.FacebookLink, a.WebsiteLink,
			a.SeekingVenue, a.SeekingDescription, a.ID)
		return err
	})
}

// Delete removes an artist that has no shows. Missing artists yield
// ErrArtistNotFound and booked artists an error matching ErrConflict.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "artists", id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrArtistNotFound
		}
		var shows int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = ?`, id).Scan(&shows); err != nil {
			return err
		}
		if shows > 0 {
			return fmt.Errorf("artist %d has %d shows: %w", id, shows, ErrConflict)
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
		return err
	})
}
