package cmd

import (
	"os"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lockbox-cli/lockbox/internal/audit"
	"github.com/lockbox-cli/lockbox/internal/configs"
	"github.com/lockbox-cli/lockbox/internal/passwords"
	"github.com/lockbox-cli/lockbox/internal/utils"
	"github.com/lockbox-cli/lockbox/internal/vault"
)

var (
	encryptRecipient string
	encryptOutput    string
	encryptPassword  string
	encryptForce     bool
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [file]",
	Short: "Encrypts a file with a password or a recipient's public key",
	Long: `Encrypts a file into a self-contained encrypted container.

With --recipient, the file is encrypted for the holder of the matching
private key (a fresh session key is wrapped with their RSA public key).
Without it, you are prompted for a password and an AES-256 key is derived
from it. Weak passwords are refused unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		Logger.Infof("Starting encrypt command for %s", inputPath)

		cfg, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		plaintext, err := os.ReadFile(inputPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read %s: %v", inputPath, err)
		}
		if len(plaintext) == 0 {
			finalMessage := color.RedString("✗") + " " + color.YellowString(inputPath) + " is empty; nothing to encrypt"
			spinner, cleanup := startSpinner("Encrypting...", verbose)
			defer cleanup()
			spinner.FinalMSG = finalMessage
			return nil
		}

		codec := vault.Default()
		mode := "symmetric"
		var container []byte

		if encryptRecipient != "" {
			mode = "hybrid"
			Logger.Debugf("Loading recipient public key from %s", encryptRecipient)
			pemData, err := os.ReadFile(encryptRecipient)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read public key %s: %v", encryptRecipient, err)
			}
			publicKey, err := vault.ParsePublicKeyPEM(pemData)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to parse public key %s: %v", encryptRecipient, err)
			}

			spinner, cleanup := startSpinner("Encrypting for recipient...", verbose)
			defer cleanup()

			container, err = codec.EncryptHybrid(plaintext, publicKey)
			if err != nil {
				audit.Log(audit.Entry{Operation: "encrypt", Mode: mode, File: inputPath, Outcome: "failed", FailureKind: err.Error()})
				return Logger.ErrorfAndReturn("encryption failed: %v", err)
			}

			return writeContainer(spinner, cfg, mode, inputPath, container)
		}

		// Password mode: collect and vet the password before the spinner
		// starts so the prompt isn't fighting the spinner for the terminal.
		password, err := resolvePassword(encryptPassword, true)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %v", err)
		}

		if err := passwords.Check(string(password)); err != nil {
			if !encryptForce {
				spinner, cleanup := startSpinner("Encrypting...", verbose)
				defer cleanup()
				spinner.FinalMSG = color.RedString("✗") + " Weak password: " + err.Error() + "\n" +
					color.CyanString("→") + " Use " + color.YellowString("--force") + " to encrypt with it anyway"
				return nil
			}
			Logger.WarnfAlways("Encrypting with a weak password (%v)", err)
		}

		spinner, cleanup := startSpinner("Encrypting...", verbose)
		defer cleanup()

		container, err = codec.EncryptSymmetric(plaintext, password)
		if err != nil {
			audit.Log(audit.Entry{Operation: "encrypt", Mode: mode, File: inputPath, Outcome: "failed", FailureKind: err.Error()})
			return Logger.ErrorfAndReturn("encryption failed: %v", err)
		}

		return writeContainer(spinner, cfg, mode, inputPath, container)
	},
}

// writeContainer writes the encrypted container next to the input, records
// the operation, and sets the success message.
func writeContainer(s *spinner.Spinner, cfg configs.Config, mode, inputPath string, container []byte) error {
	outputPath := encryptOutputName(inputPath, encryptOutput, cfg.OutputSuffix)

	if err := os.WriteFile(outputPath, container, 0600); err != nil {
		audit.Log(audit.Entry{Operation: "encrypt", Mode: mode, File: inputPath, Outcome: "failed", FailureKind: "write failed"})
		return Logger.ErrorfAndReturn("failed to write %s: %v", outputPath, err)
	}

	audit.Log(audit.Entry{Operation: "encrypt", Mode: mode, File: inputPath, OutputPath: outputPath, Outcome: "ok"})
	Logger.Infof("Encrypt command completed successfully: %s", outputPath)

	s.FinalMSG = color.GreenString("✓") + " File encrypted successfully!\n" +
		"Created: " + utils.FormatPaths([]string{outputPath}) +
		color.CyanString("→") + " Decrypt it later with " + color.YellowString("lockbox decrypt "+outputPath)
	return nil
}

func init() {
	encryptCmd.Flags().StringVarP(&encryptRecipient, "recipient", "r", "", "PEM public key file; encrypt for its holder instead of a password")
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "output path (default: input plus the configured suffix)")
	encryptCmd.Flags().StringVarP(&encryptPassword, "password", "p", "", "password (prompted when omitted; prefer the prompt, flags end up in shell history)")
	encryptCmd.Flags().BoolVarP(&encryptForce, "force", "f", false, "allow a weak password")
}

func resetEncryptCommandState() {
	encryptRecipient = ""
	encryptOutput = ""
	encryptPassword = ""
	encryptForce = false
}
