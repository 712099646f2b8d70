// Package cmd implements the nrml command line.
package cmd

import (
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nigellippett2/nrml/internal/config"
)

// staticFiles is the asset tree served under /static/. Execute replaces it
// with the embedded tree.
var staticFiles fs.FS = os.DirFS("static")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nrml",
	Short: "The nrml.io website",
	Long: `nrml serves the nrml.io marketing site and its design-system gallery.

Run "nrml serve" to start the web server. Configuration is read from the
environment, with .env and .env.local in the working directory loaded first.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadDotEnv()
	},
}

// NewRootCommand returns the root command.
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command with static as the asset tree.
// This is called by main.main().
func Execute(static fs.FS) error {
	staticFiles = static
	return rootCmd.Execute()
}
