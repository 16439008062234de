package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Dunklab/pkg/logger"
	"Dunklab/pkg/metrics"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORS(t *testing.T) {
	Convey("Given the CORS middleware", t, func() {
		h := CORS("https://dunklab.example", ok)

		Convey("When a preflight request arrives", func() {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/tools/dunk/calc", nil))

			Convey("Then it is answered without reaching the handler", func() {
				So(rec.Code, ShouldEqual, http.StatusNoContent)
				So(rec.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://dunklab.example")
			})
		})

		Convey("When a normal request arrives", func() {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "POST")
		})
	})
}

func TestIPRateLimiter(t *testing.T) {
	Convey("Given a limiter with a burst of two and no refill", t, func() {
		h := NewIPRateLimiter(0, 2).LimitMiddleware(ok)
		send := func(remote string) int {
			req := httptest.NewRequest(http.MethodPost, "/api/tools/dunk/calc", nil)
			req.RemoteAddr = remote
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			return rec.Code
		}

		Convey("Then the third request from one host is rejected", func() {
			So(send("10.0.0.1:4000"), ShouldEqual, http.StatusOK)
			So(send("10.0.0.1:4001"), ShouldEqual, http.StatusOK)
			So(send("10.0.0.1:4002"), ShouldEqual, http.StatusTooManyRequests)
		})

		Convey("Then another host has its own bucket", func() {
			So(send("10.0.0.1:4000"), ShouldEqual, http.StatusOK)
			So(send("10.0.0.1:4000"), ShouldEqual, http.StatusOK)
			So(send("10.0.0.2:4000"), ShouldEqual, http.StatusOK)
		})

		Convey("Then the rejection is a JSON error", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/x", nil)
			req.RemoteAddr = "10.0.0.3:1"
			for i := 0; i < 2; i++ {
				h.ServeHTTP(httptest.NewRecorder(), req)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			So(rec.Body.String(), ShouldContainSubstring, `"code":"rate_limited"`)
		})
	})
}

func TestIPRateLimiterSweep(t *testing.T) {
	Convey("Given a limiter that has seen two hosts at different times", t, func() {
		l := NewIPRateLimiter(1, 1)
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return now }
		h := l.LimitMiddleware(ok)
		visit := func(remote string) {
			req := httptest.NewRequest(http.MethodGet, "/api/calculators", nil)
			req.RemoteAddr = remote
			h.ServeHTTP(httptest.NewRecorder(), req)
		}

		visit("10.0.0.1:1")
		now = now.Add(8 * time.Minute)
		visit("10.0.0.2:1")
		So(l.Len(), ShouldEqual, 2)

		Convey("When sweeping after the first host went idle", func() {
			now = now.Add(3 * time.Minute)
			dropped := l.Sweep(10 * time.Minute)

			Convey("Then only the idle host is forgotten", func() {
				So(dropped, ShouldEqual, 1)
				So(l.Len(), ShouldEqual, 1)
			})
		})

		Convey("When a host comes back its idle clock restarts", func() {
			visit("10.0.0.1:2")
			now = now.Add(9 * time.Minute)
			So(l.Sweep(10*time.Minute), ShouldEqual, 0)
		})
	})
}

func TestIPRateLimiterRunStopsWithContext(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond, time.Minute)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRequestIDAndAccessLog(t *testing.T) {
	Convey("Given request id and access log middleware", t, func() {
		var buf bytes.Buffer
		So(logger.InitWriter(&buf, "json"), ShouldBeNil)

		var seen string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = logger.RequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
		h := RequestID(AccessLog(logger.Get())(inner))

		Convey("When the caller sends an id", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set(RequestIDHeader, "abc-123")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			Convey("Then it is reused on the context, response and log line", func() {
				So(seen, ShouldEqual, "abc-123")
				So(rec.Header().Get(RequestIDHeader), ShouldEqual, "abc-123")
				So(buf.String(), ShouldContainSubstring, `"request_id":"abc-123"`)
				So(buf.String(), ShouldContainSubstring, `"status":418`)
			})
		})

		Convey("When the caller sends none", func() {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			Convey("Then a uuid is generated", func() {
				So(seen, ShouldHaveLength, 36)
				So(rec.Header().Get(RequestIDHeader), ShouldEqual, seen)
			})
		})
	})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/api/shared/{token}", ok).Methods(http.MethodGet)

	for _, token := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/shared/"+token, nil))
	}

	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	var count float64
	for _, mf := range families {
		if mf.GetName() != "dunklab_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "route" && strings.Contains(l.GetValue(), "{token}") {
					count += m.GetCounter().GetValue()
				}
			}
		}
	}
	if count != 2 {
		t.Fatalf("requests on /api/shared/{token} = %v, want 2", count)
	}
}

func TestRecorderDefaultsToOK(t *testing.T) {
	rec := record(httptest.NewRecorder())
	_, _ = rec.Write([]byte("x"))
	if rec.Status() != http.StatusOK {
		t.Fatalf("Status() = %d", rec.Status())
	}
	if record(rec) != rec {
		t.Fatal("record should reuse an existing recorder")
	}
}
