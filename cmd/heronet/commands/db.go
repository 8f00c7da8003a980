package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataiskole/heronet/config"
	"github.com/dataiskole/heronet/db"
	"github.com/dataiskole/heronet/display"
	"github.com/dataiskole/heronet/errors"
	"github.com/dataiskole/heronet/logger"
	"github.com/dataiskole/heronet/storage"
	"github.com/dataiskole/heronet/sym"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: sym.DB + " Manage the SQLite snapshot",
	Long: sym.DB + ` db — Manage the SQLite network snapshot

Snapshot the CSV-backed network into SQLite and report on it from there.

Examples:
  heronet db import   # Load the CSVs and write the snapshot
  heronet db stats    # Report counts straight from the database`,
}

var dbImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Snapshot the CSV network into SQLite",
	RunE:  runDbImport,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snapshot statistics",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbImportCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

// openSnapshotDB opens and migrates the configured snapshot database.
func openSnapshotDB(cfg *config.Config) (*storage.SnapshotStore, func() error, error) {
	database, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open database")
	}
	if err := db.Migrate(database, logger.Logger); err != nil {
		database.Close()
		return nil, nil, errors.Wrap(err, "failed to migrate database")
	}
	return storage.NewSnapshotStore(database, logger.Logger), database.Close, nil
}

func runDbImport(cmd *cobra.Command, args []string) error {
	store, _, cfg, err := openNetwork()
	if err != nil {
		return err
	}

	snapshots, closeDB, err := openSnapshotDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := snapshots.Import(cmd.Context(), store); err != nil {
		return err
	}

	fmt.Printf("%s Snapshot written to %s (%d heroes, %d links)\n",
		sym.DB, cfg.Database.Path, store.HeroCount(), store.FriendshipCount())
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	snapshots, closeDB, err := openSnapshotDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := snapshots.Stats(cmd.Context())
	if err != nil {
		return err
	}

	if jsonRequested(cmd) {
		return display.OutputJSON(stats)
	}

	fmt.Printf("%s Snapshot Statistics\n", sym.DB)
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	fmt.Printf("Database Path:  %s\n", cfg.Database.Path)
	fmt.Printf("Heroes:         %d\n", stats.Heroes)
	fmt.Printf("Friendships:    %d\n", stats.Links)
	if stats.MostConnected != "" {
		fmt.Printf("Most Connected: %s (%d connections)\n", stats.MostConnected, stats.MaxDegree)
	}
	return nil
}
