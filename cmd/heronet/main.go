package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dataiskole/heronet/cmd/heronet/commands"
	"github.com/dataiskole/heronet/logger"
)

var rootCmd = &cobra.Command{
	Use:   "heronet",
	Short: "Superhero network analysis",
	Long: `heronet — Analyze a network of superheroes and their friendships.

The network is loaded from two CSV files: superheroes.csv (id, name,
created_at) and links.csv (source, target). Paths and analysis parameters
come from heronet.toml, HERONET_* environment variables, or defaults.

Available commands:
  stats  - Totals, recently added heroes, and the most connected ranking
  info   - Profile of a single hero (creation date and friends)
  add    - Add a hero or a friendship, persisted back to the CSV files
  graph  - Export the network as a D3 JSON document
  db     - Snapshot the network into SQLite and report from it

Examples:
  heronet stats                  # Full report with defaults (3 days, top 3)
  heronet stats --window 7       # Widen the recency window
  heronet info dataiskole        # When was dataiskole added, who are their friends
  heronet add hero h42 Batgirl   # Add a hero, created today
  heronet add link h42 h7        # Befriend two heroes
  heronet graph --out graph.json # Export for visualization`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.InfoCmd)
	rootCmd.AddCommand(commands.AddCmd)
	rootCmd.AddCommand(commands.GraphCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
