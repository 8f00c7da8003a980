package graph

import (
	"time"
)

// Document represents the complete graph structure for visualization
type Document struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node represents one superhero in the drawing
type Node struct {
	ID        string `json:"id"`
	Label     string `json:"label"`      // Display label (hero name)
	CreatedAt string `json:"created_at"` // ISO date the hero joined
	Degree    int    `json:"degree"`     // For sizing/coloring
	Visible   bool   `json:"visible"`
}

// Link represents a friendship between nodes
type Link struct {
	Source string  `json:"source"` // Node ID
	Target string  `json:"target"` // Node ID
	Weight float64 `json:"value"`  // Link strength (D3 uses "value")
}

// Meta contains metadata about the graph
type Meta struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Stats       Stats             `json:"stats"`
	Config      map[string]string `json:"config"`
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}
