package cmd

import (
	"fmt"

	logger "github.com/lockbox-cli/lockbox/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "lockbox",
		Short: "Lockbox - Encrypt and decrypt files with a password or an RSA key pair.",
		Long: `Lockbox protects files with strong encryption and detects tampering
or wrong credentials on the way back.

Two modes are supported:
  - Password mode: an AES-256 key is derived from your password with PBKDF2
  - Recipient mode: a one-time session key is wrapped with an RSA-2048 public key

Usage:
  lockbox <command> [flags]

Available Commands:
  encrypt    Encrypt a file
  decrypt    Decrypt a previously encrypted file
  keygen     Generate an RSA key pair
  version    Print the version

Run 'lockbox help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing lockbox with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Welcome to Lockbox! Run 'lockbox --help' to see available commands.")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetKeygenCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
