package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is the Lockbox release version.
const Version = "0.4.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the Lockbox version",
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("Lockbox", "", true).Print()
		fmt.Printf("lockbox version %s\n", Version)
	},
}
