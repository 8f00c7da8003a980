package graph

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dataiskole/heronet/network"
)

func buildTestNetwork(t *testing.T) *network.Store {
	t.Helper()
	store := network.NewStore(zap.NewNop().Sugar())

	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, hero := range []struct{ id, name string }{
		{"h3", "Oracle"},
		{"h1", "dataiskole"},
		{"h2", "Nightwing"},
	} {
		if err := store.AddHero(hero.id, hero.name, created); err != nil {
			t.Fatalf("AddHero(%q) failed: %v", hero.id, err)
		}
	}
	for _, pair := range [][2]string{{"h2", "h1"}, {"h2", "h3"}} {
		if err := store.AddFriendship(pair[0], pair[1]); err != nil {
			t.Fatalf("AddFriendship(%v) failed: %v", pair, err)
		}
	}
	return store
}

func TestBuildDeterministicOrdering(t *testing.T) {
	builder := NewBuilder(zap.NewNop().Sugar())
	doc := builder.Build(buildTestNetwork(t), "test network")

	wantNodes := []string{"h1", "h2", "h3"}
	if len(doc.Nodes) != len(wantNodes) {
		t.Fatalf("Build produced %d nodes, want %d", len(doc.Nodes), len(wantNodes))
	}
	for i, id := range wantNodes {
		if doc.Nodes[i].ID != id {
			t.Errorf("Nodes[%d].ID = %q, want %q", i, doc.Nodes[i].ID, id)
		}
	}

	// Links in canonical order regardless of insertion orientation.
	wantLinks := []struct{ source, target string }{{"h1", "h2"}, {"h2", "h3"}}
	if len(doc.Links) != len(wantLinks) {
		t.Fatalf("Build produced %d links, want %d", len(doc.Links), len(wantLinks))
	}
	for i, want := range wantLinks {
		if doc.Links[i].Source != want.source || doc.Links[i].Target != want.target {
			t.Errorf("Links[%d] = %s->%s, want %s->%s",
				i, doc.Links[i].Source, doc.Links[i].Target, want.source, want.target)
		}
	}
}

func TestBuildNodeFields(t *testing.T) {
	builder := NewBuilder(zap.NewNop().Sugar())
	doc := builder.Build(buildTestNetwork(t), "test network")

	hub := doc.Nodes[1] // h2
	if hub.Label != "Nightwing" {
		t.Errorf("hub label = %q, want Nightwing", hub.Label)
	}
	if hub.Degree != 2 {
		t.Errorf("hub degree = %d, want 2", hub.Degree)
	}
	if hub.CreatedAt != "2025-06-01" {
		t.Errorf("hub created_at = %q, want 2025-06-01", hub.CreatedAt)
	}
	if !hub.Visible {
		t.Error("hub should be visible")
	}

	if doc.Meta.Stats.TotalNodes != 3 || doc.Meta.Stats.TotalEdges != 2 {
		t.Errorf("Meta stats = %+v, want 3 nodes / 2 edges", doc.Meta.Stats)
	}
	if doc.Meta.Config["description"] != "test network" {
		t.Errorf("Meta description = %q", doc.Meta.Config["description"])
	}
}

func TestBuildEmptyHint(t *testing.T) {
	builder := NewBuilder(zap.NewNop().Sugar())
	doc := builder.BuildEmpty("no CSV files loaded")

	if len(doc.Nodes) != 0 || len(doc.Links) != 0 {
		t.Errorf("BuildEmpty produced %d nodes / %d links", len(doc.Nodes), len(doc.Links))
	}
	if desc := doc.Meta.Config["description"]; desc != "empty network: no CSV files loaded" {
		t.Errorf("BuildEmpty description = %q", desc)
	}
}

func TestBuildEmptyNetwork(t *testing.T) {
	builder := NewBuilder(zap.NewNop().Sugar())
	doc := builder.Build(network.NewStore(zap.NewNop().Sugar()), "nothing loaded")

	if len(doc.Nodes) != 0 || len(doc.Links) != 0 {
		t.Errorf("empty network produced %d nodes / %d links", len(doc.Nodes), len(doc.Links))
	}
	if doc.Meta.Stats.TotalNodes != 0 || doc.Meta.Stats.TotalEdges != 0 {
		t.Errorf("Meta stats = %+v, want zeros", doc.Meta.Stats)
	}
}
