package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestResolution(t *testing.T) {
	c := New("test-svc")

	c.Resolution("inventory", "preference")
	c.Resolution("inventory", "preference")
	c.Resolution("display", "time_of_day")

	if got := testutil.ToFloat64(c.resolutionsTotal.WithLabelValues("inventory", "preference")); got != 2 {
		t.Errorf("inventory/preference = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.resolutionsTotal.WithLabelValues("display", "time_of_day")); got != 1 {
		t.Errorf("display/time_of_day = %v, want 1", got)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New("test-svc")

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })
	r.GET("/metrics", c.Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	if got := testutil.ToFloat64(c.httpRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "204")); got != 1 {
		t.Errorf("requests for /ping = %v, want 1", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "test_svc_http_requests_total") {
		t.Error("exposition is missing the namespaced request counter")
	}
}

func TestNewNop(t *testing.T) {
	NewNop().Resolution("inventory", "most_stocked")
}
