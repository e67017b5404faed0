// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/soraprompt/gallery/internal/log"
)

// HeaderRequestID carries the request correlation ID, inbound and out.
const HeaderRequestID = "X-Request-ID"

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gallery_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	httpRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gallery_http_requests_in_flight",
		Help: "Current number of HTTP requests being served.",
	})
)

// requestID adds a unique ID to every request, honouring one supplied
// by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, reqID)
		ctx := log.ContextWithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// recoverer keeps panics inside handlers from crashing the process. It
// logs the panic with context and returns a JSON 500.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				buf := make([]byte, 8192)
				n := runtime.Stack(buf, false)

				logger := log.WithComponentFromContext(r.Context(), "panic-recovery")
				logger.Error().
					Str(log.FieldEvent, "panic.recovered").
					Str("method", r.Method).
					Str(log.FieldPath, r.URL.Path).
					Interface("panic_value", rec).
					Str("stack_trace", string(buf[:n])).
					Msg("panic recovered in HTTP handler")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one structured log line per handled request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Info().
			Str(log.FieldEvent, "request.handled").
			Str("method", r.Method).
			Str(log.FieldPath, r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}

// requestMetrics records Prometheus metrics for every request.
func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		httpRequestDuration.WithLabelValues(
			r.Method,
			r.URL.Path,
			strconv.Itoa(ww.Status()),
		).Observe(time.Since(start).Seconds())
	})
}

// rateLimit returns a per-IP sliding-window limiter for mutating
// endpoints, answering 429 with a JSON body and Retry-After.
func rateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
		}),
	)
}
