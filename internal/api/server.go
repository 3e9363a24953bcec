// Package api exposes the optional metrics/debug HTTP server that runs for
// the duration of a scan: Prometheus metrics, a liveness endpoint and pprof.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"swaggerhunter/internal/config"
	"swaggerhunter/pkg/controller"
)

// Options holds configuration for the metrics server. All durations configure
// server timeouts; zero values fall back to net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Metrics.Addr,
		MetricsPath:       cfg.Metrics.Path,
		ReadTimeout:       cfg.Metrics.ReadTimeout,
		ReadHeaderTimeout: cfg.Metrics.ReadHeaderTimeout,
		WriteTimeout:      cfg.Metrics.WriteTimeout,
		IdleTimeout:       cfg.Metrics.IdleTimeout,
	}
}

// NewServer wires up and returns a configured *http.Server exposing:
//   - Prometheus metrics (MetricsPath), with an OpenTelemetry meter provider
//     bridged into the default Prometheus registry
//   - a /healthz liveness endpoint
//   - pprof endpoints for profiling
//
// The mux is wrapped with the access-log middleware.
func NewServer(opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	mux.HandleFunc("/healthz", controller.Healthz)
	mux.Handle("/debug/pprof/", controller.PprofMux())

	handler := controller.WithLogger(mux)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
	}, nil
}
