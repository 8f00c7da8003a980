package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dataiskole/heronet/errors"
	"github.com/dataiskole/heronet/sym"
)

// AddCmd represents the add command
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: sym.Added + " Add heroes and friendships",
	Long: sym.Added + ` add — Grow the superhero network

Add a new hero or a new friendship. Missing arguments are prompted for
interactively. Successful additions are written back to the CSV files.

Examples:
  heronet add hero h42 Batgirl   # add a hero, created today
  heronet add hero               # prompt for id and name
  heronet add link h42 h7        # befriend two heroes by id
  heronet add link Batgirl Robin # names work too`,
}

var addHeroCmd = &cobra.Command{
	Use:   "hero [id] [name]",
	Short: "Add a new superhero, created today",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runAddHero,
}

var addLinkCmd = &cobra.Command{
	Use:   "link [id-or-name] [id-or-name]",
	Short: "Add a friendship between two existing heroes",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runAddLink,
}

func init() {
	AddCmd.AddCommand(addHeroCmd)
	AddCmd.AddCommand(addLinkCmd)
}

// promptIfMissing returns args[i] when present, otherwise asks interactively.
func promptIfMissing(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return strings.TrimSpace(args[i]), nil
	}
	value, err := pterm.DefaultInteractiveTextInput.Show(prompt)
	if err != nil {
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(value), nil
}

func runAddHero(cmd *cobra.Command, args []string) error {
	id, err := promptIfMissing(args, 0, "Enter new superhero id")
	if err != nil {
		return err
	}
	if id == "" {
		return errors.New("superhero id must not be empty")
	}

	name, err := promptIfMissing(args, 1, "Enter new superhero name")
	if err != nil {
		return err
	}
	if name == "" {
		name = id
	}

	store, loader, _, err := openNetwork()
	if err != nil {
		return err
	}

	if err := store.AddHero(id, name, today()); err != nil {
		pterm.Error.Printf("Could not add superhero: %v\n", err)
		return err
	}
	if err := loader.Save(store); err != nil {
		return err
	}

	pterm.Success.Printf("Superhero '%s' added with ID %s.\n", name, id)
	return nil
}

func runAddLink(cmd *cobra.Command, args []string) error {
	first, err := promptIfMissing(args, 0, "Enter first superhero")
	if err != nil {
		return err
	}
	second, err := promptIfMissing(args, 1, "Enter second superhero")
	if err != nil {
		return err
	}

	store, loader, _, err := openNetwork()
	if err != nil {
		return err
	}

	heroA, err := store.FindHero(first)
	if err != nil {
		pterm.Error.Printf("Superhero %q not found.\n", first)
		return err
	}
	heroB, err := store.FindHero(second)
	if err != nil {
		pterm.Error.Printf("Superhero %q not found.\n", second)
		return err
	}

	if err := store.AddFriendship(heroA.ID, heroB.ID); err != nil {
		pterm.Error.Printf("Could not add friendship: %v\n", err)
		return err
	}
	if err := loader.Save(store); err != nil {
		return err
	}

	pterm.Success.Printf("Friendship added between '%s' and '%s'.\n", heroA.Name, heroB.Name)
	return nil
}
