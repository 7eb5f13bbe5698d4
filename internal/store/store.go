package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"lyricsync/internal/align"
	"lyricsync/internal/config"
)

// ErrNotFound indicates no cached alignment exists for the fingerprint pair.
var ErrNotFound = errors.New("alignment not found")

// Record describes a cached alignment.
type Record struct {
	ID                   string
	Song                 string
	StructureFingerprint string
	TimingFingerprint    string
	CreatedAt            time.Time
	Stats                align.Stats
}

// Store manages alignment cache persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.CacheDir, "alignments.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save inserts an alignment result, replacing any previous entry for the
// same fingerprint pair.
func (s *Store) Save(ctx context.Context, song, structureFP, timingFP string, result align.Result) (*Record, error) {
	if structureFP == "" || timingFP == "" {
		return nil, errors.New("save alignment: fingerprints required")
	}

	record := &Record{
		ID:                   uuid.NewString(),
		Song:                 song,
		StructureFingerprint: structureFP,
		TimingFingerprint:    timingFP,
		CreatedAt:            time.Now().UTC(),
		Stats:                result.Stats,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM alignments WHERE structure_fingerprint = ? AND timing_fingerprint = ?`,
		structureFP, timingFP,
	); err != nil {
		return nil, fmt.Errorf("replace alignment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO alignments (
            id, song, structure_fingerprint, timing_fingerprint, created_at,
            line_count, word_count, matched_count, fallback_count
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Song, structureFP, timingFP,
		record.CreatedAt.Format(time.RFC3339Nano),
		record.Stats.Lines, record.Stats.Words, record.Stats.Matched, record.Stats.Fallback,
	); err != nil {
		return nil, fmt.Errorf("insert alignment: %w", err)
	}

	insertWord, err := tx.PrepareContext(ctx,
		`INSERT INTO alignment_words (
            alignment_id, position, timestamp, word, line, line_end, matched
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("prepare word insert: %w", err)
	}
	defer insertWord.Close()

	for i, word := range result.Words {
		if _, err := insertWord.ExecContext(ctx,
			record.ID, i, word.Timestamp, word.Text, word.Line,
			boolToInt(word.LineEnd), boolToInt(word.Matched),
		); err != nil {
			return nil, fmt.Errorf("insert word %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit alignment: %w", err)
	}
	return record, nil
}

// Lookup returns the cached alignment for the fingerprint pair, or
// ErrNotFound.
func (s *Store) Lookup(ctx context.Context, structureFP, timingFP string) (*Record, align.Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, song, created_at, line_count, word_count, matched_count, fallback_count
         FROM alignments WHERE structure_fingerprint = ? AND timing_fingerprint = ?`,
		structureFP, timingFP,
	)

	record := &Record{
		StructureFingerprint: structureFP,
		TimingFingerprint:    timingFP,
	}
	var createdAt string
	err := row.Scan(&record.ID, &record.Song, &createdAt,
		&record.Stats.Lines, &record.Stats.Words, &record.Stats.Matched, &record.Stats.Fallback)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, align.Result{}, ErrNotFound
	}
	if err != nil {
		return nil, align.Result{}, fmt.Errorf("scan alignment: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		record.CreatedAt = ts
	}

	words, err := s.loadWords(ctx, record.ID)
	if err != nil {
		return nil, align.Result{}, err
	}
	return record, align.Result{Words: words, Stats: record.Stats}, nil
}

func (s *Store) loadWords(ctx context.Context, alignmentID string) ([]align.Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT timestamp, word, line, line_end, matched
         FROM alignment_words WHERE alignment_id = ? ORDER BY position`,
		alignmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var words []align.Word
	for rows.Next() {
		var word align.Word
		var lineEnd, matched int
		if err := rows.Scan(&word.Timestamp, &word.Text, &word.Line, &lineEnd, &matched); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		word.LineEnd = lineEnd != 0
		word.Matched = matched != 0
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}

// List returns all cached alignments, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, song, structure_fingerprint, timing_fingerprint, created_at,
                line_count, word_count, matched_count, fallback_count
         FROM alignments ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query alignments: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var createdAt string
		if err := rows.Scan(&record.ID, &record.Song,
			&record.StructureFingerprint, &record.TimingFingerprint, &createdAt,
			&record.Stats.Lines, &record.Stats.Words, &record.Stats.Matched, &record.Stats.Fallback,
		); err != nil {
			return nil, fmt.Errorf("scan alignment: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			record.CreatedAt = ts
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alignments: %w", err)
	}
	return records, nil
}

// Clear removes all cached alignments and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM alignments")
	if err != nil {
		return 0, fmt.Errorf("clear alignments: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}

// Fingerprint returns the hex SHA-256 of the file at path.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
