package cmd

import (
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/nigellippett2/nrml/internal/backend"
	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/email"
	"github.com/nigellippett2/nrml/internal/handlers"
	"github.com/nigellippett2/nrml/internal/logger"
	"github.com/nigellippett2/nrml/internal/server"
	"github.com/nigellippett2/nrml/internal/signup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Start the HTTP server for the landing page, signup form, health
endpoints and, outside production, the design-system gallery at /styles.

The process stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// appOptions wires every module the web server needs.
func appOptions(static fs.FS) fx.Option {
	return fx.Options(
		fx.Supply(server.StaticFS{FS: static}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,

		// Collaborators
		backend.Module,
		email.Module,
		signup.Module,

		handlers.Module,
	)
}

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		appOptions(staticFiles),
	)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}
