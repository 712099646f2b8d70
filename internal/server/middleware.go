package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nigellippett2/nrml/internal/apperror"
	"github.com/nigellippett2/nrml/internal/components"
	"github.com/nigellippett2/nrml/internal/logger"
	"github.com/nigellippett2/nrml/internal/metrics"
)

func skipLogging(path string) bool {
	switch path {
	case "/health", "/healthz", "/api/health", "/metrics":
		return true
	}
	return false
}

// RequestLogger logs one line per request, skipping health and metrics.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipLogging(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("uri", r.URL.RequestURI()),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// Recoverer turns panics into a 500 and logs the stack. API requests get
// a JSON error carrying the request id, everything else the HTML error
// page. A response whose header was already sent is left as is.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered",
					logger.Error(fmt.Errorf("%v", rec)),
					slog.String("path", r.URL.Path),
					slog.Int("status_sent", ww.Status()),
					slog.String("stack", string(debug.Stack())),
				)
				if ww.Status() != 0 {
					return
				}

				if wantsJSON(r) {
					apperror.WriteJSON(ww, r, log, apperror.ErrInternal.WithDetails(map[string]any{
						"request_id": middleware.GetReqID(r.Context()),
					}))
					return
				}

				ww.Header().Set("Content-Type", "text/html; charset=utf-8")
				ww.WriteHeader(apperror.ErrInternal.HTTPStatus)
				if r.Method == http.MethodHead {
					return
				}
				if err := components.InternalErrorPage().Render(ww); err != nil {
					log.Error("render error page", logger.Error(err))
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/health" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// Metrics records request counts and latency by route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.ObserveRequest(r.Method, route, status, time.Since(start))
	})
}
