package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mobile-next/swipecli/commands"
	"github.com/mobile-next/swipecli/config"
	"github.com/mobile-next/swipecli/gesture"
	"github.com/mobile-next/swipecli/utils"
	"github.com/spf13/cobra"
)

const version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "swipecli",
	Short: "Swipe gesture classification from the command line",
	Long:  `Classifies pointer drags into up, down, left and right swipes, replays recorded gestures and serves live gesture sessions over JSON-RPC.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadProfiles,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

// loadProfiles installs the profiles file given with --config
func loadProfiles(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		configPath = os.Getenv("SWIPECLI_CONFIG")
	}
	if configPath == "" {
		return nil
	}

	profiles, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	utils.Verbose("loaded profiles %v from %s", profiles.Names(), configPath)
	commands.SetProfiles(profiles)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "INI file with gesture profiles (default: $SWIPECLI_CONFIG)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// respond prints a command response and turns an error status into an error
func respond(response *commands.CommandResponse) error {
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}

// fail reports an argument error in the same shape as command errors
func fail(err error) error {
	return respond(commands.NewErrorResponse(err))
}

// addGestureFlags registers the flags that select and override a profile
func addGestureFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&profileName, "profile", "", "gesture profile to use (default: default)")
	flags.Bool("horizontal", false, "detect left and right swipes")
	flags.Bool("vertical", false, "detect up and down swipes")
	flags.Bool("left", false, "detect left swipes")
	flags.Bool("right", false, "detect right swipes")
	flags.Bool("up", false, "detect up swipes")
	flags.Bool("down", false, "detect down swipes")
	flags.Bool("continuous", true, "report progress after the swipe locked in")
	flags.Float64("velocity-threshold", gesture.DefaultInitialVelocityThreshold, "minimum velocity to lock in a swipe")
	flags.Float64("vertical-threshold", gesture.DefaultVerticalThreshold, "maximum vertical drift of a horizontal swipe")
	flags.Float64("horizontal-threshold", gesture.DefaultHorizontalThreshold, "maximum horizontal drift of a vertical swipe")
	flags.Bool("report-gesture-state", true, "include the gesture state snapshot in the output")
}

// gestureFlagKeys maps flag names to gesture.Config json keys
var gestureFlagKeys = map[string]string{
	"horizontal":           "horizontal",
	"vertical":             "vertical",
	"left":                 "left",
	"right":                "right",
	"up":                   "up",
	"down":                 "down",
	"continuous":           "continuous",
	"velocity-threshold":   "initialVelocityThreshold",
	"vertical-threshold":   "verticalThreshold",
	"horizontal-threshold": "horizontalThreshold",
	"report-gesture-state": "reportGestureState",
}

// gestureConfig resolves the selected profile with the explicitly set flags
// applied on top
func gestureConfig(cmd *cobra.Command) (gesture.Config, error) {
	overrides := map[string]interface{}{}
	for flag, key := range gestureFlagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}

		var value interface{}
		var err error
		switch f.Value.Type() {
		case "bool":
			value, err = cmd.Flags().GetBool(flag)
		default:
			value, err = cmd.Flags().GetFloat64(flag)
		}
		if err != nil {
			return gesture.Config{}, err
		}
		overrides[key] = value
	}

	var raw json.RawMessage
	if len(overrides) > 0 {
		data, err := json.Marshal(overrides)
		if err != nil {
			return gesture.Config{}, err
		}
		raw = data
	}

	return commands.ResolveConfig(profileName, raw)
}
