package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTransitionMetrics(t *testing.T) {
	before := testutil.ToFloat64(Transitions.WithLabelValues("accept", "confirmed"))

	TransitionMetrics{}.ObserveTransition("accept", "confirmed", 120*time.Millisecond)

	if got := testutil.ToFloat64(Transitions.WithLabelValues("accept", "confirmed")); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
}

func TestObservePoll(t *testing.T) {
	adopted := testutil.ToFloat64(PollRecords.WithLabelValues("adopted"))
	skipped := testutil.ToFloat64(PollRecords.WithLabelValues("skipped"))

	TransitionMetrics{}.ObservePoll("ok", 3, 1)

	if got := testutil.ToFloat64(PollRecords.WithLabelValues("adopted")); got != adopted+3 {
		t.Fatalf("adopted: expected %v, got %v", adopted+3, got)
	}
	if got := testutil.ToFloat64(PollRecords.WithLabelValues("skipped")); got != skipped+1 {
		t.Fatalf("skipped: expected %v, got %v", skipped+1, got)
	}
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/v1/ping", "200"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if got := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/v1/ping", "200")); got != before+1 {
		t.Fatalf("expected request counted, got %v", got)
	}
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{0: "error", 200: "2xx", 404: "4xx", 503: "5xx"}
	for code, want := range cases {
		if got := StatusClass(code); got != want {
			t.Fatalf("StatusClass(%d) = %s, want %s", code, got, want)
		}
	}
}

func TestRegisterDefaultIsIdempotent(t *testing.T) {
	RegisterDefault()
	RegisterDefault()
}
