package cli

import (
	"fmt"

	"github.com/mobile-next/swipecli/commands"
	"github.com/mobile-next/swipecli/daemon"
	"github.com/mobile-next/swipecli/server"
	"github.com/spf13/cobra"
)

const defaultServerAddress = "localhost:12000"

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the swipecli JSON-RPC server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the swipecli server",
	Long:  `Starts the swipecli server, serving JSON-RPC on /rpc and /ws.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr := cmd.Flag("listen").Value.String()
		if listenAddr == "" {
			listenAddr = defaultServerAddress
		}

		// GetBool/GetInt cannot fail for defined flags
		enableCORS, _ := cmd.Flags().GetBool("cors")
		isDaemon, _ := cmd.Flags().GetBool("daemon")
		requireToken, _ := cmd.Flags().GetBool("require-token")
		maxSessions, _ := cmd.Flags().GetInt("max-sessions")

		var token string
		if requireToken {
			var err error
			token, err = loadToken()
			if err != nil {
				return err
			}
		}

		if isDaemon && !daemon.IsChild() {
			_, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
			return nil
		}

		registry, err := commands.NewSessionRegistry(maxSessions)
		if err != nil {
			return err
		}
		commands.SetRegistry(registry)
		defer registry.CloseAll()

		return server.StartServer(listenAddr, server.Options{
			EnableCORS: enableCORS,
			Token:      token,
		})
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop the daemonized swipecli server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// GetString cannot fail for defined flags
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = defaultServerAddress
		}

		// the token is optional, servers started without --require-token accept anything
		token, _ := loadToken()

		err := daemon.KillServer(addr, token)
		if err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// add server subcommands
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	// server start flags
	serverStartCmd.Flags().String("listen", "", "Address to listen on (e.g., 'localhost:12000' or '0.0.0.0:13000')")
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")
	serverStartCmd.Flags().Bool("require-token", false, "Require the auth token stored with 'auth token set' as a bearer token")
	serverStartCmd.Flags().Int("max-sessions", commands.DefaultMaxSessions, "Maximum number of live gesture sessions")

	// server kill flags
	serverKillCmd.Flags().String("listen", "", fmt.Sprintf("Address of server to kill (default: %s)", defaultServerAddress))
}
