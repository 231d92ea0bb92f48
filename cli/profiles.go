package cli

import (
	"github.com/mobile-next/swipecli/commands"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List gesture profiles",
	Long:  `Lists the builtin gesture profiles and those loaded from the --config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return respond(commands.ProfilesCommand())
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
