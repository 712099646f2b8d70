package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/", "200"))

	ObserveRequest("GET", "/", http.StatusOK, 12*time.Millisecond)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/", "200"))
	assert.Equal(t, before+1, after)
}

func TestObserveRequestUnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "unmatched", "404"))

	ObserveRequest("GET", "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	Signups.WithLabelValues(SignupAccepted).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `website_signups_total{result="accepted"}`)
}
