package cli

import (
	"github.com/mobile-next/swipecli/commands"
	"github.com/mobile-next/swipecli/pointer"
	"github.com/spf13/cobra"
)

var swipeCmd = &cobra.Command{
	Use:   "swipe [x1,y1,x2,y2]",
	Short: "Play a synthesized swipe through a gesture session",
	Long:  `Builds a single finger swipe from x1,y1 to x2,y2, samples it like a touch screen would and prints the swipe events it produces. Coordinates should be provided as a single string "x1,y1,x2,y2".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseFloats(args[0], 4, "x1,y1,x2,y2")
		if err != nil {
			return fail(err)
		}

		c, err := gestureConfig(cmd)
		if err != nil {
			return fail(err)
		}

		req := commands.SwipeRequest{
			X1:       int(values[0]),
			Y1:       int(values[1]),
			X2:       int(values[2]),
			Y2:       int(values[3]),
			Duration: swipeDuration,
			Step:     playbackStep,
			Config:   c,
		}

		return respond(commands.SwipeCommand(req))
	},
}

var gestureCmd = &cobra.Command{
	Use:   "gesture [actions-json]",
	Short: "Play a pointer action script through a gesture session",
	Long:  `Plays a W3C pointer action script (pointerMove, pointerDown, pointerUp, pause) through a gesture session and prints the swipe events it produces.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := pointer.ParseActions([]byte(args[0]))
		if err != nil {
			return fail(err)
		}

		c, err := gestureConfig(cmd)
		if err != nil {
			return fail(err)
		}

		req := commands.GestureRequest{
			Actions: actions,
			Step:    playbackStep,
			Config:  c,
		}

		return respond(commands.GestureCommand(req))
	},
}

func init() {
	rootCmd.AddCommand(swipeCmd)
	rootCmd.AddCommand(gestureCmd)

	addGestureFlags(swipeCmd)
	addGestureFlags(gestureCmd)

	swipeCmd.Flags().IntVar(&swipeDuration, "duration", pointer.DefaultSwipeDuration, "swipe duration in milliseconds")
	swipeCmd.Flags().IntVar(&playbackStep, "step", pointer.DefaultStep, "sampling interval in milliseconds")
	gestureCmd.Flags().IntVar(&playbackStep, "step", pointer.DefaultStep, "sampling interval in milliseconds")
}
