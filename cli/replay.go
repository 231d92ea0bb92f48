package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mobile-next/swipecli/commands"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Replay a recorded sample stream through a gesture session",
	Long:  `Feeds recorded motion samples through a fresh gesture session and prints every emitted event. The file holds a JSON array of {dx, dy, vx, vy} objects or a property list with the same structure. Use "-" to read from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fail(fmt.Errorf("failed to read samples: %w", err))
		}

		samples, err := commands.LoadSamples(data)
		if err != nil {
			return fail(err)
		}

		c, err := gestureConfig(cmd)
		if err != nil {
			return fail(err)
		}

		req := commands.ReplayRequest{
			Samples:   samples,
			Config:    c,
			Terminate: !replayKeepOpen,
		}

		return respond(commands.ReplayCommand(req))
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	addGestureFlags(replayCmd)
	replayCmd.Flags().BoolVar(&replayKeepOpen, "no-release", false, "do not release the pointer after the last sample")
}
