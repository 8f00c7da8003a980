package network

import (
	"sort"
	"time"
)

// Ranked pairs a hero with its friendship count for degree rankings.
type Ranked struct {
	Hero   Hero `json:"hero"`
	Degree int  `json:"degree"`
}

// Profile describes a single hero and their direct friends.
type Profile struct {
	Hero    Hero   `json:"hero"`
	Friends []Hero `json:"friends"`
}

// Recent returns all heroes whose created_at falls within
// [now - windowDays, now], both boundaries inclusive, ordered most recent
// first with ties broken by id ascending.
func (s *Store) Recent(now time.Time, windowDays int) []Hero {
	cutoff := now.AddDate(0, 0, -windowDays)

	var recent []Hero
	for _, hero := range s.heroes {
		if hero.CreatedAt.Before(cutoff) || hero.CreatedAt.After(now) {
			continue
		}
		recent = append(recent, hero)
	}

	sort.Slice(recent, func(i, j int) bool {
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].ID < recent[j].ID
	})
	return recent
}

// TopK ranks heroes by friendship count descending, ties broken by id
// ascending. Returns at most k entries, fewer when the network holds fewer
// heroes than k. A non-positive k yields an empty ranking.
func (s *Store) TopK(k int) []Ranked {
	if k <= 0 {
		return nil
	}

	ranked := make([]Ranked, 0, len(s.heroes))
	for id, hero := range s.heroes {
		ranked = append(ranked, Ranked{Hero: hero, Degree: len(s.adjacency[id])})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Degree != ranked[j].Degree {
			return ranked[i].Degree > ranked[j].Degree
		}
		return ranked[i].Hero.ID < ranked[j].Hero.ID
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// Profile returns the creation date and direct friends of the hero with the
// given id. Friends are sorted by id ascending. Fails with
// errors.ErrNotFound if the id is absent.
func (s *Store) Profile(id string) (Profile, error) {
	hero, err := s.Hero(id)
	if err != nil {
		return Profile{}, err
	}

	neighborIDs, err := s.Neighbors(id)
	if err != nil {
		return Profile{}, err
	}

	friends := make([]Hero, 0, len(neighborIDs))
	for _, neighborID := range neighborIDs {
		// Friendships only ever reference stored heroes, so the lookup
		// cannot fail here.
		friends = append(friends, s.heroes[neighborID])
	}

	return Profile{Hero: hero, Friends: friends}, nil
}
