package cli

var (
	verbose bool

	// all commands
	configPath  string
	profileName string

	// for replay command
	replayKeepOpen bool

	// for swipe and gesture commands
	swipeDuration int
	playbackStep  int
)
