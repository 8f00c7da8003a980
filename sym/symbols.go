// Package sym defines canonical glyphs for heronet CLI output.
// These symbols are stable across CLI output and documentation.
package sym

// Report section markers.
const (
	Hero   = "🦸" // a superhero / node
	Link   = "🔗" // a friendship / edge
	Clock  = "🕒" // recency section
	Trophy = "🏆" // top-connected ranking
	Info   = "📋" // single-hero profile
	Graph  = "📊" // graph export / visualization
	DB     = "⊔"  // database/storage layer
)

// Status markers.
const (
	OK      = "✔️"
	Friends = "👥"
	Missing = "❌"
	Added   = "✅"
)
