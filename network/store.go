// Package network holds the in-memory superhero graph: heroes keyed by id
// and an undirected friendship set, plus the analysis queries that read it.
//
// The store is the single mutable structure in the system. It is built once
// from the CSV loader, then queried and optionally mutated in place. Access
// is single-threaded throughout; the store does no locking of its own.
package network

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dataiskole/heronet/errors"
)

// Store owns the full collection of heroes and friendships.
type Store struct {
	heroes    map[string]Hero
	links     map[Friendship]struct{}
	adjacency map[string]map[string]struct{}
	logger    *zap.SugaredLogger
}

// NewStore creates an empty network store.
func NewStore(logger *zap.SugaredLogger) *Store {
	return &Store{
		heroes:    make(map[string]Hero),
		links:     make(map[Friendship]struct{}),
		adjacency: make(map[string]map[string]struct{}),
		logger:    logger.Named("network"),
	}
}

// HeroCount returns the number of distinct hero ids currently stored.
func (s *Store) HeroCount() int {
	return len(s.heroes)
}

// FriendshipCount returns the number of distinct undirected friendships.
func (s *Store) FriendshipCount() int {
	return len(s.links)
}

// Hero returns the hero with the given id.
// Fails with errors.ErrNotFound if the id is absent.
func (s *Store) Hero(id string) (Hero, error) {
	hero, ok := s.heroes[id]
	if !ok {
		return Hero{}, errors.Wrapf(errors.ErrNotFound, "id %q", id)
	}
	return hero, nil
}

// FindHero resolves idOrName first as a hero id, then as a display name.
// When several heroes share a name, the one with the smallest id wins so
// lookups stay deterministic. Fails with errors.ErrNotFound when neither
// resolution matches.
func (s *Store) FindHero(idOrName string) (Hero, error) {
	if hero, ok := s.heroes[idOrName]; ok {
		return hero, nil
	}

	var match Hero
	found := false
	for _, hero := range s.heroes {
		if hero.Name != idOrName {
			continue
		}
		if !found || hero.ID < match.ID {
			match = hero
			found = true
		}
	}
	if !found {
		return Hero{}, errors.Wrapf(errors.ErrNotFound, "no hero with id or name %q", idOrName)
	}
	return match, nil
}

// Degree returns the number of distinct friends of id.
// Fails with errors.ErrNotFound if the id is absent.
func (s *Store) Degree(id string) (int, error) {
	if _, ok := s.heroes[id]; !ok {
		return 0, errors.Wrapf(errors.ErrNotFound, "id %q", id)
	}
	return len(s.adjacency[id]), nil
}

// Neighbors returns the ids of all friends of id, sorted ascending.
// Fails with errors.ErrNotFound if the id is absent.
func (s *Store) Neighbors(id string) ([]string, error) {
	if _, ok := s.heroes[id]; !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "id %q", id)
	}

	neighbors := make([]string, 0, len(s.adjacency[id]))
	for neighbor := range s.adjacency[id] {
		neighbors = append(neighbors, neighbor)
	}
	sort.Strings(neighbors)
	return neighbors, nil
}

// AddHero inserts a new hero into the network.
// Fails with errors.ErrDuplicateNode if the id is already present; existing
// friendships are never touched.
func (s *Store) AddHero(id, name string, createdAt time.Time) error {
	if _, exists := s.heroes[id]; exists {
		return errors.Wrapf(errors.ErrDuplicateNode, "id %q", id)
	}

	s.heroes[id] = Hero{ID: id, Name: name, CreatedAt: createdAt}
	s.logger.Debugw("Hero added", "id", id, "name", name, "created_at", createdAt.Format("2006-01-02"))
	return nil
}

// AddFriendship records an undirected friendship between two existing heroes.
// The pair is normalized to canonical order, so (a, b) and (b, a) denote the
// same friendship. Fails with errors.ErrSelfLoop when a == b, with
// errors.ErrUnknownNode when either endpoint is absent, and with
// errors.ErrDuplicateEdge when the friendship is already recorded. The store
// is left unchanged on every error path.
func (s *Store) AddFriendship(a, b string) error {
	if a == b {
		return errors.Wrapf(errors.ErrSelfLoop, "id %q", a)
	}
	if _, ok := s.heroes[a]; !ok {
		return errors.Wrapf(errors.ErrUnknownNode, "id %q", a)
	}
	if _, ok := s.heroes[b]; !ok {
		return errors.Wrapf(errors.ErrUnknownNode, "id %q", b)
	}

	link := NewFriendship(a, b)
	if _, exists := s.links[link]; exists {
		return errors.Wrapf(errors.ErrDuplicateEdge, "%s-%s", link.A, link.B)
	}

	s.links[link] = struct{}{}
	s.connect(link.A, link.B)
	s.connect(link.B, link.A)
	s.logger.Debugw("Friendship added", "source", link.A, "target", link.B)
	return nil
}

func (s *Store) connect(from, to string) {
	if s.adjacency[from] == nil {
		s.adjacency[from] = make(map[string]struct{})
	}
	s.adjacency[from][to] = struct{}{}
}

// Heroes returns all heroes sorted by id for deterministic output.
func (s *Store) Heroes() []Hero {
	heroes := make([]Hero, 0, len(s.heroes))
	for _, hero := range s.heroes {
		heroes = append(heroes, hero)
	}
	sort.Slice(heroes, func(i, j int) bool { return heroes[i].ID < heroes[j].ID })
	return heroes
}

// Friendships returns all friendships sorted by canonical pair for
// deterministic output.
func (s *Store) Friendships() []Friendship {
	links := make([]Friendship, 0, len(s.links))
	for link := range s.links {
		links = append(links, link)
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].A != links[j].A {
			return links[i].A < links[j].A
		}
		return links[i].B < links[j].B
	})
	return links
}
