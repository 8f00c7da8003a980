// Package storage persists a snapshot of the superhero network into SQLite,
// so repeated analyses can run from the database instead of re-reading the
// CSV sources.
package storage

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/dataiskole/heronet/errors"
	"github.com/dataiskole/heronet/network"
)

// SnapshotStore reads and writes network snapshots in SQLite.
type SnapshotStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewSnapshotStore creates a snapshot store over an open, migrated database.
func NewSnapshotStore(db *sql.DB, logger *zap.SugaredLogger) *SnapshotStore {
	return &SnapshotStore{
		db:     db,
		logger: logger.Named("storage"),
	}
}

// Import replaces the snapshot with the store's current state in a single
// transaction, so a failed import never leaves a half-written snapshot.
func (s *SnapshotStore) Import(ctx context.Context, store *network.Store) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin snapshot import")
	}
	defer tx.Rollback()

	// Links reference heroes, so they go first on delete and last on insert.
	if _, err := tx.ExecContext(ctx, "DELETE FROM links"); err != nil {
		return errors.Wrap(err, "clear links")
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM heroes"); err != nil {
		return errors.Wrap(err, "clear heroes")
	}

	for _, hero := range store.Heroes() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO heroes (id, name, created_at) VALUES (?, ?, ?)",
			hero.ID, hero.Name, hero.CreatedAt.Format("2006-01-02"),
		)
		if err != nil {
			return errors.Wrapf(err, "insert hero %q", hero.ID)
		}
	}

	for _, link := range store.Friendships() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO links (source, target) VALUES (?, ?)",
			link.A, link.B,
		)
		if err != nil {
			return errors.Wrapf(err, "insert link %s-%s", link.A, link.B)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit snapshot import")
	}

	s.logger.Infow("Snapshot imported",
		"heroes", store.HeroCount(),
		"links", store.FriendshipCount(),
	)
	return nil
}

// Stats summarizes the snapshot straight from SQL.
type Stats struct {
	Heroes        int    `json:"heroes"`
	Links         int    `json:"links"`
	MostConnected string `json:"most_connected,omitempty"` // hero id, empty when no links
	MaxDegree     int    `json:"max_degree"`
}

// Stats reports snapshot counts and the most connected hero. Degree is
// computed over the union of both link orientations; ties resolve to the
// smallest id, matching the in-memory ranking.
func (s *SnapshotStore) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM heroes").Scan(&stats.Heroes); err != nil {
		return Stats{}, errors.Wrap(err, "count heroes")
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM links").Scan(&stats.Links); err != nil {
		return Stats{}, errors.Wrap(err, "count links")
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, COUNT(*) AS degree FROM (
			SELECT source AS id FROM links
			UNION ALL
			SELECT target AS id FROM links
		)
		GROUP BY id
		ORDER BY degree DESC, id ASC
		LIMIT 1
	`).Scan(&stats.MostConnected, &stats.MaxDegree)
	if err != nil && err != sql.ErrNoRows {
		return Stats{}, errors.Wrap(err, "query most connected hero")
	}

	return stats, nil
}

// Load rebuilds an in-memory network store from the snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (*network.Store, error) {
	store := network.NewStore(s.logger)

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM heroes ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "query heroes")
	}
	defer rows.Close()

	for rows.Next() {
		var id, name, createdAt string
		if err := rows.Scan(&id, &name, &createdAt); err != nil {
			return nil, errors.Wrap(err, "scan hero")
		}
		parsed, err := parseSnapshotDate(createdAt)
		if err != nil {
			return nil, errors.Wrapf(err, "hero %q", id)
		}
		if err := store.AddHero(id, name, parsed); err != nil {
			return nil, errors.Wrapf(err, "restore hero %q", id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate heroes")
	}

	linkRows, err := s.db.QueryContext(ctx, "SELECT source, target FROM links ORDER BY source, target")
	if err != nil {
		return nil, errors.Wrap(err, "query links")
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var source, target string
		if err := linkRows.Scan(&source, &target); err != nil {
			return nil, errors.Wrap(err, "scan link")
		}
		if err := store.AddFriendship(source, target); err != nil {
			return nil, errors.Wrapf(err, "restore link %s-%s", source, target)
		}
	}
	if err := linkRows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate links")
	}

	return store, nil
}

// parseSnapshotDate accepts the plain date format Import writes, plus the
// timestamp forms SQLite may hand back for DATE columns.
func parseSnapshotDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.Newf("unparseable created_at value %q", value)
}
