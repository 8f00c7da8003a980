package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dataiskole/heronet/display"
	"github.com/dataiskole/heronet/network"
	"github.com/dataiskole/heronet/sym"
)

// StatsCmd represents the stats command
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: sym.Hero + " Show network statistics",
	Long: `Show aggregate statistics for the superhero network: total heroes and
friendships, heroes added within the recency window, and the most
connected heroes ranked by friendship count.

Examples:
  heronet stats              # defaults from heronet.toml (3 days, top 3)
  heronet stats --window 7   # heroes added in the last week
  heronet stats --top 5      # five most connected heroes
  heronet stats --json       # machine-readable report`,
	RunE: runStats,
}

var (
	statsWindowFlag int
	statsTopFlag    int
)

func init() {
	StatsCmd.Flags().IntVar(&statsWindowFlag, "window", 0, "Recency window in days (default from config)")
	StatsCmd.Flags().IntVar(&statsTopFlag, "top", 0, "Ranking size (default from config)")
}

// statsReport is the full aggregate report over the network.
type statsReport struct {
	Heroes     int              `json:"heroes"`
	Links      int              `json:"links"`
	WindowDays int              `json:"window_days"`
	Recent     []network.Hero   `json:"recent"`
	Top        []network.Ranked `json:"top"`
}

// buildStatsReport runs all aggregate queries against the store.
func buildStatsReport(store *network.Store, now time.Time, windowDays, k int) statsReport {
	return statsReport{
		Heroes:     store.HeroCount(),
		Links:      store.FriendshipCount(),
		WindowDays: windowDays,
		Recent:     store.Recent(now, windowDays),
		Top:        store.TopK(k),
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	store, _, cfg, err := openNetwork()
	if err != nil {
		return err
	}

	windowDays := cfg.Analysis.RecentWindowDays
	if statsWindowFlag > 0 {
		windowDays = statsWindowFlag
	}
	k := cfg.Analysis.TopK
	if statsTopFlag > 0 {
		k = statsTopFlag
	}

	report := buildStatsReport(store, today(), windowDays, k)

	if jsonRequested(cmd) {
		return display.OutputJSON(report)
	}

	fmt.Printf("\n%s Total Superheroes: %d\n", sym.Hero, report.Heroes)
	fmt.Printf("%s Total Connections: %d\n", sym.Link, report.Links)

	fmt.Printf("\n%s Superheroes added in the last %d days:\n", sym.Clock, report.WindowDays)
	if len(report.Recent) == 0 {
		fmt.Printf("No superheroes added in the last %d days.\n", report.WindowDays)
	} else {
		for _, hero := range report.Recent {
			fmt.Printf("- %s (added on %s)\n", hero.Name, hero.CreatedAt.Format("2006-01-02"))
		}
	}

	fmt.Printf("\n%s Top %d Most Connected Superheroes:\n", sym.Trophy, k)
	for _, entry := range report.Top {
		fmt.Printf("- %s with %d connections\n", entry.Hero.Name, entry.Degree)
	}

	return nil
}
