package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/handlers"
	"github.com/nigellippett2/nrml/internal/logger"
	"github.com/nigellippett2/nrml/internal/metrics"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// StaticFS holds the embedded assets served under /static/.
type StaticFS struct {
	fs.FS
}

// RouterParams are the dependencies for building the router
type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *slog.Logger
	Pages  *handlers.Pages
	Health *handlers.Health
	Static StaticFS
}

// NewRouter creates the chi router with the middleware stack and all routes.
func NewRouter(p RouterParams) http.Handler {
	log := p.Log.With(logger.Scope("http"))

	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(log),
		Recoverer(log),
		Metrics,
		middleware.GetHead,
	)

	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(p.Static, p.Config.IsProduction())))
	r.Handle("/metrics", metrics.Handler())

	handlers.RegisterRoutes(r, p.Pages, p.Health, p.Config)

	return r
}

// staticHandler serves the asset tree. Production responses are cacheable;
// elsewhere every request revalidates so edited assets show up at once.
func staticHandler(static StaticFS, production bool) http.Handler {
	cacheControl := "no-cache"
	if production {
		cacheControl = "public, max-age=3600"
	}

	files := http.FileServer(http.FS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	})
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, handler http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Bind synchronously so a taken port fails startup.
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.Bool("showcase", cfg.ShowcaseEnabled),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
