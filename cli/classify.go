package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mobile-next/swipecli/commands"
	"github.com/mobile-next/swipecli/gesture"
	"github.com/spf13/cobra"
)

// parseFloats splits a comma separated list of exactly n numbers
func parseFloats(s string, n int, format string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid format. Expected '%s', got '%s'", format, s)
	}

	values := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s' in '%s', values must be numbers", part, s)
		}
		values[i] = v
	}
	return values, nil
}

var classifyCmd = &cobra.Command{
	Use:   "classify [dx,dy,vx,vy]",
	Short: "Classify a single motion sample",
	Long:  `Reports whether a motion sample qualifies as the start of a swipe and which direction it would lock in. The sample is given as a single string "dx,dy,vx,vy".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseFloats(args[0], 4, "dx,dy,vx,vy")
		if err != nil {
			return fail(err)
		}

		c, err := gestureConfig(cmd)
		if err != nil {
			return fail(err)
		}

		req := commands.ClassifyRequest{
			Sample: gesture.MotionSample{Dx: values[0], Dy: values[1], Vx: values[2], Vy: values[3]},
			Config: c,
		}

		return respond(commands.ClassifyCommand(req))
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	addGestureFlags(classifyCmd)
}
