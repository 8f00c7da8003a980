package commands

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dataiskole/heronet/network"
)

func TestBuildStatsReport(t *testing.T) {
	store := network.NewStore(zap.NewNop().Sugar())

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	heroes := []struct {
		id  string
		off int
	}{
		{"a", 0},
		{"b", 1},
		{"c", 10},
	}
	for _, h := range heroes {
		if err := store.AddHero(h.id, h.id, base.AddDate(0, 0, h.off)); err != nil {
			t.Fatalf("AddHero(%q) failed: %v", h.id, err)
		}
	}
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}} {
		if err := store.AddFriendship(pair[0], pair[1]); err != nil {
			t.Fatalf("AddFriendship(%v) failed: %v", pair, err)
		}
	}

	now := base.AddDate(0, 0, 10)
	report := buildStatsReport(store, now, 3, 1)

	if report.Heroes != 3 {
		t.Errorf("report.Heroes = %d, want 3", report.Heroes)
	}
	if report.Links != 2 {
		t.Errorf("report.Links = %d, want 2", report.Links)
	}
	if report.WindowDays != 3 {
		t.Errorf("report.WindowDays = %d, want 3", report.WindowDays)
	}

	// Only c (created on day 10) falls inside [day 7, day 10].
	if len(report.Recent) != 1 || report.Recent[0].ID != "c" {
		t.Errorf("report.Recent = %v, want [c]", report.Recent)
	}

	// b holds both friendships.
	if len(report.Top) != 1 || report.Top[0].Hero.ID != "b" || report.Top[0].Degree != 2 {
		t.Errorf("report.Top = %v, want [(b, 2)]", report.Top)
	}
}
