package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lockbox-cli/lockbox/internal/audit"
	"github.com/lockbox-cli/lockbox/internal/configs"
	"github.com/lockbox-cli/lockbox/internal/utils"
	"github.com/lockbox-cli/lockbox/internal/vault"
)

var (
	keygenDir   string
	keygenName  string
	keygenForce bool
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generates an RSA-2048 key pair for recipient-mode encryption",
	Long: `Generates an RSA-2048 key pair and writes it as two PEM files.

Share the .pub file with anyone who should be able to encrypt files for
you; keep the private .pem file to yourself. Decryption is impossible
without it and Lockbox keeps no copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command")

		cfg, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		dir := keygenDir
		if dir == "" {
			dir = cfg.KeyDirectory
		}
		privatePath := filepath.Join(dir, keygenName+".pem")
		publicPath := filepath.Join(dir, keygenName+".pub")

		spinner, cleanup := startSpinner("Generating key pair...", verbose)
		defer cleanup()

		if !keygenForce {
			for _, path := range []string{privatePath, publicPath} {
				if _, err := os.Stat(path); err == nil {
					spinner.FinalMSG = color.RedString("✗") + " " + color.YellowString(path) + " already exists\n" +
						color.CyanString("→") + " Use " + color.YellowString("--force") + " to overwrite it"
					return nil
				}
			}
		}

		if err := os.MkdirAll(dir, 0700); err != nil {
			return Logger.ErrorfAndReturn("failed to create key directory at %s: %v", dir, err)
		}

		Logger.Debugf("Generating RSA key pair")
		keyPair, err := vault.Default().GenerateKeyPair()
		if err != nil {
			audit.Log(audit.Entry{Operation: "keygen", Outcome: "failed", FailureKind: err.Error()})
			return Logger.ErrorfAndReturn("failed to generate key pair: %v", err)
		}

		if err := os.WriteFile(privatePath, vault.EncodePrivateKeyPEM(keyPair.Private), 0600); err != nil {
			return Logger.ErrorfAndReturn("failed to write private key to %s: %v", privatePath, err)
		}

		publicPEM, err := vault.EncodePublicKeyPEM(keyPair.Public)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to encode public key: %v", err)
		}
		// #nosec G306 -- the public key is meant to be shared.
		if err := os.WriteFile(publicPath, publicPEM, 0644); err != nil {
			return Logger.ErrorfAndReturn("failed to write public key to %s: %v", publicPath, err)
		}

		audit.Log(audit.Entry{Operation: "keygen", OutputPath: privatePath, Outcome: "ok"})
		Logger.Infof("Keygen command completed successfully")

		spinner.FinalMSG = color.GreenString("✓") + " Key pair generated successfully!\n" +
			"The following files were created: " + utils.FormatPaths([]string{privatePath, publicPath}) +
			color.CyanString("→") + " Share " + color.YellowString(keygenName+".pub") + " with people who should encrypt files for you\n" +
			color.CyanString("→") + " Keep " + color.YellowString(keygenName+".pem") + " private; without it your files cannot be decrypted"
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVarP(&keygenDir, "dir", "D", "", "directory to write the key pair to (default: the configured key directory)")
	keygenCmd.Flags().StringVarP(&keygenName, "name", "n", "lockbox", "base name for the key files")
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "overwrite existing key files")
}

func resetKeygenCommandState() {
	keygenDir = ""
	keygenName = "lockbox"
	keygenForce = false
}
