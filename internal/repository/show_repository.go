// Package repository contains data access logic for Show domain operations.
// Shows are always read joined with their artist and venue so callers
// get names and image links without extra round trips.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/fyyur/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

const showListingSelect = `SELECT s.artist_id, s.venue_id, s.start_time,
	       a.name, a.image_link, v.name, v.image_link
	FROM shows s
	JOIN artists a ON a.id = s.artist_id
	JOIN venues v  ON v.id = s.venue_id`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

func (r *ShowRepo) list(ctx context.Context, q string, args ...any) ([]model.ShowListing, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ShowListing{}
	for rows.Next() {
		var s model.ShowListing
		if err := rows.Scan(&s.ArtistID, &s.VenueID, &s.StartTime,
			&s.ArtistName, &s.ArtistImageLink, &s.VenueName, &s.VenueImageLink); err != nil {
			return nil, err
		}
		s.StartTime = s.StartTime.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every show ordered by start time ascending.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	return r.list(ctx, showListingSelect+` ORDER BY s.start_time, s.venue_id, s.artist_id`)
}

// ListByVenue returns the shows booked at a venue ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	return r.list(ctx, showListingSelect+` WHERE s.venue_id = ? ORDER BY s.start_time, s.artist_id`, venueID)
}

// ListByArtist returns the shows of an artist ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	return r.list(ctx, showListingSelect+` WHERE s.artist_id = ? ORDER BY s.start_time, s.venue_id`, artistID)
}

// Create books a show. Both sides must exist (ErrArtistNotFound /
// ErrVenueNotFound otherwise) and the (artist, venue, start time)
// triple must be new; a duplicate yields an error matching ErrConflict.
// StartTime is stored in UTC.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	s.StartTime = s.StartTime.UTC()
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "artists", s.ArtistID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrArtistNotFound
		}
		if ok, err = exists(ctx, tx, "venues", s.VenueID); err != nil {
			return err
		}
		if !ok {
			return ErrVenueNotFound
		}

		var n int
		const qDup = `SELECT COUNT(*) FROM shows WHERE artist_id = ? AND venue_id = ? AND start_time = ?`
		if err := tx.QueryRowContext(ctx, qDup, s.ArtistID, s.VenueID, s.StartTime).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("show already booked: %w", ErrConflict)
		}

		const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
		_, err = tx.ExecContext(ctx, q, s.ArtistID, s.VenueID, s.StartTime)
		return err
	})
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("show already booked: %w", ErrConflict)
	}
	return err
}
