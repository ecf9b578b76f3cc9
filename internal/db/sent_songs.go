package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"sendsong/internal/models"
)

// sentSongColumns is the standard column list for sent_songs queries.
const sentSongColumns = `id, recipient_name, youtube_url, message, sent_at`

// scanSentSong scans a row into a SentSong struct.
func scanSentSong(row pgx.Row) (*models.SentSong, error) {
	var song models.SentSong
	err := row.Scan(
		&song.ID,
		&song.RecipientName,
		&song.YouTubeURL,
		&song.Message,
		&song.SentAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSentSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// scanSentSongs scans multiple rows into a slice of SentSongs.
func scanSentSongs(rows pgx.Rows) ([]models.SentSong, error) {
	defer rows.Close()

	var songs []models.SentSong
	for rows.Next() {
		var song models.SentSong
		if err := rows.Scan(
			&song.ID,
			&song.RecipientName,
			&song.YouTubeURL,
			&song.Message,
			&song.SentAt,
		); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	return songs, rows.Err()
}

// InsertSentSong inserts a new sent song. The id and sent_at columns are
// assigned by the database and read back into the struct, so callers can
// prepend the authoritative record to the feed without a re-fetch.
func (d *DB) InsertSentSong(ctx context.Context, song *models.SentSong) error {
	query := `
		INSERT INTO sent_songs (recipient_name, youtube_url, message)
		VALUES ($1, $2, $3)
		RETURNING id, sent_at
	`

	return d.Pool.QueryRow(ctx, query,
		song.RecipientName,
		song.YouTubeURL,
		song.Message,
	).Scan(&song.ID, &song.SentAt)
}

// GetSentSongByID retrieves a sent song by its ID.
func (d *DB) GetSentSongByID(ctx context.Context, id uuid.UUID) (*models.SentSong, error) {
	query := `SELECT ` + sentSongColumns + ` FROM sent_songs WHERE id = $1`
	return scanSentSong(d.Pool.QueryRow(ctx, query, id))
}

// ListRecentSentSongs retrieves the most recently sent songs, newest first.
func (d *DB) ListRecentSentSongs(ctx context.Context, limit int) ([]models.SentSong, error) {
	query := `
		SELECT ` + sentSongColumns + `
		FROM sent_songs
		ORDER BY sent_at DESC
		LIMIT $1
	`
	rows, err := d.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanSentSongs(rows)
}

// SearchSentSongsByRecipient retrieves songs whose recipient name contains
// the query, case-insensitively, newest first.
func (d *DB) SearchSentSongsByRecipient(ctx context.Context, queryStr string, limit int) ([]models.SentSong, error) {
	pattern := "%" + queryStr + "%"
	query := `
		SELECT ` + sentSongColumns + `
		FROM sent_songs
		WHERE recipient_name ILIKE $1
		ORDER BY sent_at DESC
		LIMIT $2
	`
	rows, err := d.Pool.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, err
	}
	return scanSentSongs(rows)
}

// CountSentSongs returns the total number of stored sent songs.
func (d *DB) CountSentSongs(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sent_songs`).Scan(&count)
	return count, err
}
