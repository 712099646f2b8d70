package apperror

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/nigellippett2/nrml/internal/logger"
)

// WriteJSON writes err as a JSON error body. 5xx errors are logged at
// error level; anything else is the caller's fault and is not logged.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code, body := ToHTTPError(err)

	if code >= 500 {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
