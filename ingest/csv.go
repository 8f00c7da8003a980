// Package ingest loads the superhero network from its two CSV sources and
// writes mutations back. superheroes.csv carries id, name and created_at
// columns; links.csv carries source and target columns referencing hero ids.
package ingest

import (
	"encoding/csv"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dataiskole/heronet/errors"
	"github.com/dataiskole/heronet/network"
)

var heroHeader = []string{"id", "name", "created_at"}
var linkHeader = []string{"source", "target"}

// Accepted created_at layouts, tried in order. The dataset uses plain dates
// but exports from other tools sometimes carry a time component.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Loader reads the two CSV sources into a network store.
type Loader struct {
	heroesPath string
	linksPath  string
	logger     *zap.SugaredLogger
}

// NewLoader creates a loader for the given CSV paths.
func NewLoader(heroesPath, linksPath string, logger *zap.SugaredLogger) *Loader {
	return &Loader{
		heroesPath: heroesPath,
		linksPath:  linksPath,
		logger:     logger.Named("ingest"),
	}
}

// Load reads both CSV files and bulk-inserts them into a fresh store.
//
// Row policy: a duplicate hero id or an unknown link endpoint aborts the
// load, since both mean the dataset is corrupt. Duplicate link rows (in
// either orientation) and self-loop rows are folded away with a log line,
// matching set semantics over unordered pairs.
func (l *Loader) Load() (*network.Store, error) {
	store := network.NewStore(l.logger)

	heroes, err := l.readHeroes()
	if err != nil {
		return nil, err
	}
	for _, hero := range heroes {
		if err := store.AddHero(hero.ID, hero.Name, hero.CreatedAt); err != nil {
			return nil, errors.Wrapf(err, "loading %s", l.heroesPath)
		}
	}

	links, err := l.readLinks()
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		err := store.AddFriendship(link.A, link.B)
		switch {
		case err == nil:
		case errors.IsDuplicateEdge(err):
			l.logger.Debugw("Folding duplicate link row", "source", link.A, "target", link.B)
		case errors.IsSelfLoop(err):
			l.logger.Warnw("Skipping self-loop link row", "id", link.A)
		default:
			return nil, errors.Wrapf(err, "loading %s", l.linksPath)
		}
	}

	l.logger.Infow("Network loaded",
		"heroes", store.HeroCount(),
		"links", store.FriendshipCount(),
	)
	return store, nil
}

func (l *Loader) readHeroes() ([]network.Hero, error) {
	rows, err := readRows(l.heroesPath, heroHeader)
	if err != nil {
		return nil, err
	}

	heroes := make([]network.Hero, 0, len(rows))
	for i, row := range rows {
		createdAt, err := parseDate(row[2])
		if err != nil {
			return nil, errors.Wrapf(err, "%s row %d", l.heroesPath, i+2)
		}
		heroes = append(heroes, network.Hero{ID: row[0], Name: row[1], CreatedAt: createdAt})
	}
	return heroes, nil
}

func (l *Loader) readLinks() ([]network.Friendship, error) {
	rows, err := readRows(l.linksPath, linkHeader)
	if err != nil {
		return nil, err
	}

	links := make([]network.Friendship, 0, len(rows))
	for _, row := range rows {
		// Raw orientation preserved; the store canonicalizes on insert.
		links = append(links, network.Friendship{A: row[0], B: row[1]})
	}
	return links, nil
}

// readRows reads a CSV file, validates its header and returns the data rows.
func readRows(path string, header []string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Newf("%s is empty, expected header %v", path, header)
	}

	for i, column := range header {
		if records[0][i] != column {
			return nil, errors.Newf("%s has header %v, expected %v", path, records[0], header)
		}
	}
	return records[1:], nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.Newf("unparseable created_at value %q", value)
}

// Save rewrites both CSV files from the store's current state so mutations
// made through the CLI survive the process, the same way the original
// dataset files were maintained. Heroes are written sorted by id and links
// in canonical pair order for stable diffs.
func (l *Loader) Save(store *network.Store) error {
	heroes := store.Heroes()
	heroRows := make([][]string, 0, len(heroes)+1)
	heroRows = append(heroRows, heroHeader)
	for _, hero := range heroes {
		heroRows = append(heroRows, []string{hero.ID, hero.Name, hero.CreatedAt.Format("2006-01-02")})
	}
	if err := writeRows(l.heroesPath, heroRows); err != nil {
		return err
	}

	links := store.Friendships()
	linkRows := make([][]string, 0, len(links)+1)
	linkRows = append(linkRows, linkHeader)
	for _, link := range links {
		linkRows = append(linkRows, []string{link.A, link.B})
	}
	if err := writeRows(l.linksPath, linkRows); err != nil {
		return err
	}

	l.logger.Infow("Network saved",
		"heroes_path", l.heroesPath,
		"links_path", l.linksPath,
	)
	return nil
}

func writeRows(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	writer.Flush()
	return writer.Error()
}
