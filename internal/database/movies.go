// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/reelrank/internal/metrics"
	"github.com/tomtom215/reelrank/internal/models"
	"github.com/tomtom215/reelrank/internal/recommend"
)

// Catalog query limits. The HTTP layer validates request parameters against
// the same bounds; these guards keep direct callers within them too.
const (
	DefaultPageSize   = 10
	MaxPageSize       = 100
	DefaultGenreLimit = 50
	MaxGenreLimit     = 100
)

// movieColumns is the shared SELECT column list for movies queries.
// Order must match scanMovie.
const movieColumns = `id, tconst, primary_title, start_year, runtime_minutes, "rank", average_rating, num_votes, genres, directors, writers, principal_cast, imdb_link`

// createMoviesTable creates the movies table.
//
// List-valued fields (genres, directors, writers, principal_cast) are stored
// as comma-separated strings, matching the dataset format, and split on read.
func (db *DB) createMoviesTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS movies (
			id BIGINT PRIMARY KEY,
			tconst VARCHAR NOT NULL DEFAULT '',
			primary_title VARCHAR NOT NULL,
			start_year INTEGER,
			runtime_minutes INTEGER,
			"rank" INTEGER,
			average_rating DOUBLE,
			num_votes BIGINT NOT NULL DEFAULT 0,
			genres VARCHAR NOT NULL DEFAULT '',
			directors VARCHAR NOT NULL DEFAULT '',
			writers VARCHAR NOT NULL DEFAULT '',
			principal_cast VARCHAR NOT NULL DEFAULT '',
			imdb_link VARCHAR NOT NULL DEFAULT ''
		)
	`

	if _, err := db.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	return nil
}

// createIndexes creates indexes for catalog lookups.
func (db *DB) createIndexes(ctx context.Context) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_movies_tconst ON movies(tconst)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_num_votes ON movies(num_votes)`,
	}

	for _, idx := range indexes {
		if _, err := db.conn.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// IngestDataset loads the configured CSV dataset into the movies table.
//
// The ingest runs only when the table is empty, so restarting against an
// existing database file is a no-op. Movie ids are assigned from dataset row
// order, which fixes the id -> matrix row mapping for the lifetime of the
// database file. Returns the number of movies in the catalog after ingest.
//
// The dataset must carry the headers tconst, primaryTitle, startYear,
// runtimeMinutes, rank, averageRating, numVotes, genres, directors, writers,
// principalCast, and imdbLink (header matching is case-insensitive).
func (db *DB) IngestDataset(ctx context.Context) (int64, error) {
	if db.cfg.DatasetPath == "" {
		db.logger.Debug().Msg("No dataset path configured, skipping ingest")
		return db.CountMovies(ctx)
	}

	count, err := db.CountMovies(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		db.logger.Debug().Int64("movies", count).Msg("Catalog already loaded, skipping ingest")
		return count, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	// read_csv_auto does not accept a bound parameter for the path in all
	// DuckDB releases, so the locally-configured path is inlined with SQL
	// string escaping. all_varchar defers type conversion to the TRY_CASTs
	// below; replace() strips thousands separators from vote counts.
	query := fmt.Sprintf(`
		INSERT INTO movies (id, tconst, primary_title, start_year, runtime_minutes, "rank", average_rating, num_votes, genres, directors, writers, principal_cast, imdb_link)
		SELECT
			row_number() OVER () AS id,
			COALESCE(tconst, ''),
			COALESCE("primaryTitle", ''),
			TRY_CAST("startYear" AS INTEGER),
			TRY_CAST("runtimeMinutes" AS INTEGER),
			TRY_CAST("rank" AS INTEGER),
			TRY_CAST("averageRating" AS DOUBLE),
			COALESCE(TRY_CAST(replace("numVotes", ',', '') AS BIGINT), 0),
			COALESCE(genres, ''),
			COALESCE(directors, ''),
			COALESCE(writers, ''),
			COALESCE("principalCast", ''),
			COALESCE("imdbLink", '')
		FROM read_csv_auto('%s', header = true, all_varchar = true)
	`, escapeSQLString(db.cfg.DatasetPath))

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, query)
	metrics.RecordDBQuery("ingest", "movies", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("ingest dataset %s: %w", db.cfg.DatasetPath, err)
	}

	count, err = db.CountMovies(ctx)
	if err != nil {
		return 0, err
	}

	if err := db.Checkpoint(ctx); err != nil {
		db.logger.Warn().Err(err).Msg("Failed to checkpoint after ingest")
	}

	db.logger.Info().
		Int64("movies", count).
		Str("dataset", db.cfg.DatasetPath).
		Dur("duration", time.Since(start)).
		Msg("Catalog ingested")

	return count, nil
}

// CountMovies returns the number of movies in the catalog.
func (db *DB) CountMovies(ctx context.Context) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int64
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

// ListMovies returns one page of the catalog ordered by id.
// page starts at 1; out-of-range values fall back to the defaults above.
func (db *DB) ListMovies(ctx context.Context, page, pageSize int) (*models.MoviesPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	total, err := db.CountMovies(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id LIMIT ? OFFSET ?`
	stmt, err := db.getStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := stmt.QueryContext(ctx, pageSize, (page-1)*pageSize)
	metrics.RecordDBQuery("list", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	// Empty pages serialize as [] rather than null.
	movies := make([]models.MovieRecord, 0, pageSize)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return &models.MoviesPage{
		Movies:   movies,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// GetMovieByID returns a single movie by its catalog id.
// Returns an error wrapping ErrMovieNotFound when no row matches.
func (db *DB) GetMovieByID(ctx context.Context, id int64) (*models.MovieRecord, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	stmt, err := db.getStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	m, err := scanMovie(stmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("get_by_id", "movies", time.Since(start), nil)
		return nil, fmt.Errorf("%w: id %d", ErrMovieNotFound, id)
	}
	metrics.RecordDBQuery("get_by_id", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query movie by id: %w", err)
	}

	return &m, nil
}

// ListMoviesByGenre returns movies whose genre list contains genre,
// case-insensitively, ordered by vote count descending then id.
func (db *DB) ListMoviesByGenre(ctx context.Context, genre string, limit int) (*models.GenreMovies, error) {
	if limit < 1 {
		limit = DefaultGenreLimit
	}
	if limit > MaxGenreLimit {
		limit = MaxGenreLimit
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + movieColumns + ` FROM movies WHERE genres ILIKE '%' || ? || '%' ORDER BY num_votes DESC, id LIMIT ?`
	stmt, err := db.getStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := stmt.QueryContext(ctx, genre, limit)
	metrics.RecordDBQuery("list_by_genre", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query movies by genre: %w", err)
	}
	defer rows.Close()

	movies := make([]models.MovieRecord, 0, limit)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return &models.GenreMovies{
		Genre:  genre,
		Movies: movies,
		Count:  len(movies),
	}, nil
}

// AllMoviesForTraining returns the full catalog ordered by id ascending.
// Row order defines the similarity matrix row mapping, so the ordering here
// must stay stable between calls against the same database file.
func (db *DB) AllMoviesForTraining(ctx context.Context) ([]models.MovieRecord, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id ASC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("training_corpus", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query training corpus: %w", err)
	}
	defer rows.Close()

	var movies []models.MovieRecord
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training corpus: %w", err)
	}

	return movies, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanMovie scans one movies row in movieColumns order.
func scanMovie(row rowScanner) (models.MovieRecord, error) {
	var (
		m             models.MovieRecord
		startYear     sql.NullInt32
		runtimeMins   sql.NullInt32
		rank          sql.NullInt32
		averageRating sql.NullFloat64
		genres        string
		directors     string
		writers       string
		principalCast string
	)

	err := row.Scan(&m.ID, &m.Tconst, &m.PrimaryTitle, &startYear, &runtimeMins,
		&rank, &averageRating, &m.NumVotes, &genres, &directors, &writers,
		&principalCast, &m.IMDbLink)
	if err != nil {
		return models.MovieRecord{}, err
	}

	if startYear.Valid {
		v := int(startYear.Int32)
		m.StartYear = &v
	}
	if runtimeMins.Valid {
		v := int(runtimeMins.Int32)
		m.RuntimeMinutes = &v
	}
	if rank.Valid {
		v := int(rank.Int32)
		m.Rank = &v
	}
	if averageRating.Valid {
		v := averageRating.Float64
		m.AverageRating = &v
	}

	m.Genres = splitList(genres)
	m.Directors = splitList(directors)
	m.Writers = splitList(writers)
	m.PrincipalCast = splitList(principalCast)

	return m, nil
}

// splitList splits a comma-separated string and trims whitespace.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// escapeSQLString doubles single quotes for safe inlining in a SQL literal.
func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Ensure interface compliance.
var _ recommend.DataProvider = (*DB)(nil)
