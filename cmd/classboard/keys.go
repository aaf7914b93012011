package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jyj1227/class-board/internal/tui"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the default keybindings as an override file",
		Long: `Print every action with its default keys in the format read from keys.file.
Copy the actions you want to change and edit their key lists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "# classboard keybindings")
			doc := map[string]map[string][]string{
				"keys": tui.DefaultKeybindingsByAction(tui.DefaultKeyBindings()),
			}
			if err := toml.NewEncoder(out).Encode(doc); err != nil {
				return fmt.Errorf("encode keybindings: %w", err)
			}
			return nil
		},
	}
}
