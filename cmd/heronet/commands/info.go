package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dataiskole/heronet/display"
	"github.com/dataiskole/heronet/errors"
	"github.com/dataiskole/heronet/sym"
)

// defaultProbe is the hero the assignment asks about when none is given.
const defaultProbe = "dataiskole"

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info [id-or-name]",
	Short: sym.Info + " Show a single hero's profile",
	Long: `Show when a hero was added to the network and who their friends are.
The argument is resolved first as a hero id, then as a display name.
Defaults to "` + defaultProbe + `" when omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	probe := defaultProbe
	if len(args) == 1 {
		probe = args[0]
	}

	store, _, _, err := openNetwork()
	if err != nil {
		return err
	}

	hero, err := store.FindHero(probe)
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Printf("%s %s not found in superhero list.\n", sym.Missing, probe)
		}
		return err
	}

	profile, err := store.Profile(hero.ID)
	if err != nil {
		return err
	}

	if jsonRequested(cmd) {
		return display.OutputJSON(profile)
	}

	fmt.Printf("\n%s Info about '%s':\n", sym.Info, probe)
	fmt.Printf("%s Added on: %s\n", sym.OK, profile.Hero.CreatedAt.Format("2006-01-02"))

	if len(profile.Friends) == 0 {
		fmt.Printf("%s No friends found.\n", sym.Missing)
		return nil
	}

	names := make([]string, 0, len(profile.Friends))
	for _, friend := range profile.Friends {
		names = append(names, friend.Name)
	}
	fmt.Printf("%s Friends: %s\n", sym.Friends, strings.Join(names, ", "))
	return nil
}
