// SPDX-License-Identifier: MIT

// Package telemetry exposes game counters to Prometheus.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "decodoku"

// Metrics holds the game collectors, registered on one registry.
type Metrics struct {
	rounds         *prometheus.CounterVec
	syndromeWeight *prometheus.HistogramVec
	decodeFailures *prometheus.CounterVec
}

// New registers the game collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// Labels: code, outcome (correct, wrong)
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "rounds_total",
			Help:      "Finished rounds by code and outcome",
		}, []string{"code", "outcome"}),
		// Labels: code
		syndromeWeight: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "syndrome_weight",
			Help:      "Number of fired checks per round",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 12, 16},
		}, []string{"code"}),
		// Labels: code
		decodeFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "decode_failures_total",
			Help:      "Rounds whose syndrome the decoder could not resolve",
		}, []string{"code"}),
	}
}

// RoundFinished implements game.Recorder.
func (m *Metrics) RoundFinished(code string, correct bool, fired int) {
	outcome := "wrong"
	if correct {
		outcome = "correct"
	}
	m.rounds.WithLabelValues(code, outcome).Inc()
	m.syndromeWeight.WithLabelValues(code).Observe(float64(fired))
}

// DecodeFailed implements game.Recorder.
func (m *Metrics) DecodeFailed(code string) {
	m.decodeFailures.WithLabelValues(code).Inc()
}

// Handler serves the collectors of g in the text exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
