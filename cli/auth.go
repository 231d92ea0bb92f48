package cli

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringService = "swipecli"
const keyringUser = "server-token"

// loadToken reads the server token from the OS keyring
func loadToken() (string, error) {
	token, err := keyring.Get(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("no server token found, run 'swipecli auth token set' or 'swipecli auth token generate' first")
	}
	if err != nil {
		return "", fmt.Errorf("failed to read server token: %w", err)
	}
	return token, nil
}

func storeToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if err := keyring.Set(keyringService, keyringUser, token); err != nil {
		return fmt.Errorf("failed to store server token: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	tokenBytes := make([]byte, 24)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(tokenBytes), nil
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Commands for managing the bearer token the server requires when started with --require-token.`,
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the server token",
	Long:  `Stores, shows and removes the server token kept in the OS keyring.`,
}

var authTokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store a server token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := storeToken(args[0]); err != nil {
			return err
		}
		fmt.Println("Server token stored.")
		return nil
	},
}

var authTokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store a random server token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := generateToken()
		if err != nil {
			return err
		}
		if err := storeToken(token); err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

var authTokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the server token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := loadToken()
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

var authTokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the server token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(keyringService, keyringUser); err != nil {
			fmt.Println("no server token stored")
			return nil
		}
		fmt.Println("Server token removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authTokenCmd)
	authTokenCmd.AddCommand(authTokenSetCmd, authTokenGenerateCmd, authTokenShowCmd, authTokenClearCmd)
}
