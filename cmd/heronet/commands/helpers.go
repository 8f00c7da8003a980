package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dataiskole/heronet/config"
	"github.com/dataiskole/heronet/errors"
	"github.com/dataiskole/heronet/ingest"
	"github.com/dataiskole/heronet/logger"
	"github.com/dataiskole/heronet/network"
)

// openNetwork loads configuration and builds the in-memory store from the
// CSV sources. The returned loader writes mutations back to the same files.
func openNetwork() (*network.Store, *ingest.Loader, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load configuration")
	}

	loader := ingest.NewLoader(cfg.Data.HeroesPath, cfg.Data.LinksPath, logger.Logger)
	store, err := loader.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	return store, loader, cfg, nil
}

// today returns the current date at midnight UTC. Hero creation dates carry
// no time component, so recency comparisons work on whole days the way the
// dataset does.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// jsonRequested reports whether the persistent --json flag is set.
func jsonRequested(cmd *cobra.Command) bool {
	jsonOutput, _ := cmd.Root().PersistentFlags().GetBool("json")
	return jsonOutput
}
