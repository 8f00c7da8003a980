package network

import (
	"time"
)

// Hero represents one superhero node in the network.
type Hero struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"` // date the hero entered the network
}

// Friendship represents one undirected link between two heroes.
// Pairs are stored in canonical order: A is always the lexicographically
// smaller id, so {x, y} and {y, x} map to the same Friendship value.
type Friendship struct {
	A string `json:"source"`
	B string `json:"target"`
}

// NewFriendship normalizes an unordered id pair into canonical order.
func NewFriendship(x, y string) Friendship {
	if y < x {
		x, y = y, x
	}
	return Friendship{A: x, B: y}
}

// Other returns the endpoint opposite to id. Returns the empty string if
// id is not an endpoint of the friendship.
func (f Friendship) Other(id string) string {
	switch id {
	case f.A:
		return f.B
	case f.B:
		return f.A
	}
	return ""
}
