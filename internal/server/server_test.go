package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/antchfx/htmlquery"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigellippett2/nrml/internal/backend"
	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/email"
	"github.com/nigellippett2/nrml/internal/handlers"
	"github.com/nigellippett2/nrml/internal/logger"
	"github.com/nigellippett2/nrml/internal/metrics"
	"github.com/nigellippett2/nrml/internal/signup"
)

func newTestRouter(t *testing.T, environ map[string]string) http.Handler {
	t.Helper()

	cfg, err := config.Parse(environ)
	require.NoError(t, err)

	log := logger.Discard()
	client := backend.NewClient(cfg, log)
	svc := signup.NewService(cfg, client, email.NewSender(cfg, log), log)

	return NewRouter(RouterParams{
		Config: cfg,
		Log:    log,
		Pages:  handlers.NewPages(svc, log),
		Health: handlers.NewHealth(client, cfg, log),
		Static: StaticFS{FS: fstest.MapFS{
			"styles.css":  {Data: []byte("body{}")},
			"js/theme.js": {Data: []byte("// theme")},
		}},
	})
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_ServesStaticAssets(t *testing.T) {
	h := newTestRouter(t, map[string]string{})

	rec := serve(h, http.MethodGet, "/static/styles.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	rec = serve(h, http.MethodGet, "/static/js/theme.js")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/static/missing.css")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_StaticAssetsCachedInProduction(t *testing.T) {
	h := newTestRouter(t, map[string]string{"ENVIRONMENT": "production"})

	rec := serve(h, http.MethodGet, "/static/styles.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestRouter_Pages(t *testing.T) {
	h := newTestRouter(t, map[string]string{"ENVIRONMENT": "production"})

	rec := serve(h, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	rec = serve(h, http.MethodGet, "/styles")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodHead, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_ShowcaseInDevelopment(t *testing.T) {
	h := newTestRouter(t, map[string]string{"ENVIRONMENT": "development"})

	rec := serve(h, http.MethodGet, "/styles")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthReportsDisabledBackend(t *testing.T) {
	h := newTestRouter(t, map[string]string{})

	rec := serve(h, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Checks map[string]struct {
			Status string `json:"status"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "disabled", body.Checks["backend"].Status)
}

func TestRouter_ExposesMetrics(t *testing.T) {
	h := newTestRouter(t, map[string]string{})

	before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200"))
	serve(h, http.MethodGet, "/healthz")
	after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200"))
	assert.Equal(t, before+1, after)

	rec := serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "website_http_requests_total")
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	h := newTestRouter(t, map[string]string{})

	before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	serve(h, http.MethodGet, "/no/such/page")
	after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	assert.Equal(t, before+1, after)
}

func panicRouter(log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, Recoverer(log))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/api/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/late", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<p>partial"))
		panic("late boom")
	})
	return r
}

func TestRecoverer_HTMLPage(t *testing.T) {
	var buf bytes.Buffer
	h := panicRouter(slog.New(slog.NewJSONHandler(&buf, nil)))

	rec := serve(h, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	doc, err := htmlquery.Parse(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	h1 := htmlquery.FindOne(doc, "//h1")
	require.NotNil(t, h1)
	assert.Equal(t, "Something went wrong", htmlquery.InnerText(h1))

	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestRecoverer_JSONForAPI(t *testing.T) {
	h := panicRouter(logger.Discard())

	rec := serve(h, http.MethodGet, "/api/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotEmpty(t, body.Error.Details["request_id"])
}

func TestRecoverer_HeaderAlreadySent(t *testing.T) {
	h := panicRouter(logger.Discard())

	rec := serve(h, http.MethodGet, "/late")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>partial", rec.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(RequestLogger(log))
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {})

	serve(r, http.MethodGet, "/healthz")
	assert.Empty(t, buf.String())

	serve(r, http.MethodGet, "/?q=1")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/?q=1", entry["uri"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
}
