// Package hunter implements the scan pipeline: per-domain candidate
// generation and validation fan-out, and the orchestration of all domains
// under one process-wide admission limiter.
package hunter

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"swaggerhunter/internal/config"
	"swaggerhunter/internal/probe"
	"swaggerhunter/pkg/domain"
	"swaggerhunter/pkg/logger"
	"swaggerhunter/pkg/metrics"
	"swaggerhunter/pkg/storage"
)

// Options configure a scan run.
type Options struct {
	// Deep enables the extended endpoint-path and port sets.
	Deep bool
	// Concurrency caps in-flight HTTP probes process-wide, across all domains.
	Concurrency int
	// UserAgent is sent with every probe.
	UserAgent string
	// MaxBodyBytes caps how much of a response body the validator reads.
	MaxBodyBytes int64
}

// NewOptions constructs an Options value from the provided application config.
// Deep comes from a CLI flag and starts false.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:  cfg.Scanner.Concurrency,
		UserAgent:    cfg.Scanner.UserAgent,
		MaxBodyBytes: cfg.Scanner.MaxBodyBytes,
	}
}

// hunter is the concrete implementation of the Hunter interface. It owns the
// admission limiter for the lifetime of a run.
type hunter struct {
	options   Options
	runID     domain.RunID
	validator *probe.Validator
	reporter  Reporter
	sinks     []storage.FindingSink
}

// New creates a Hunter probing through the given HTTP client (which fixes the
// timeout, redirect and TLS policy for the whole run). The admission limiter
// is constructed here, once, and handed to the validator; nothing else may
// issue probes outside it.
func New(client *http.Client, options Options, reporter Reporter, sinks ...storage.FindingSink) Hunter {
	admission := semaphore.NewWeighted(int64(options.Concurrency))

	return &hunter{
		options:   options,
		runID:     domain.NewRunID(),
		validator: probe.NewValidator(client, admission, options.UserAgent, options.MaxBodyBytes),
		reporter:  reporter,
		sinks:     sinks,
	}
}

// Run scans all domains concurrently. Blank entries are dropped before the
// total is computed so progress percentages stay accurate. Domains fan out
// without their own cap; the admission limiter inside the validator is the
// only throttle.
func (h *hunter) Run(ctx context.Context, domains []string) ([]domain.Result, error) {
	ctx = logger.WithFields(ctx, zap.String("runId", h.runID.String()))

	targets := make([]string, 0, len(domains))
	for _, d := range domains {
		if d = strings.TrimSpace(d); d != "" {
			targets = append(targets, d)
		}
	}

	total := len(targets)
	results := make([]domain.Result, total)
	var completed int64

	logger.Info(ctx, "starting scan",
		zap.Int("domains", total),
		zap.Bool("deep", h.options.Deep),
		zap.Int("concurrency", h.options.Concurrency))

	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			res := h.scanDomain(gctx, target)
			results[i] = res

			metrics.DomainsScannedTotal.Inc()
			done := int(atomic.AddInt64(&completed, 1))
			h.reporter.Progress(done, total)

			if !res.Found() {
				return nil
			}

			h.reporter.Found(res)
			now := time.Now().UTC()
			for _, endpoint := range res.Endpoints {
				metrics.FindingsTotal.Inc()
				finding := domain.Finding{
					RunID:    h.runID,
					Domain:   res.Domain,
					Endpoint: endpoint,
					FoundAt:  now,
				}
				for _, sink := range h.sinks {
					// a lost finding means silently wrong results, so a sink
					// failure aborts the whole run
					if err := sink.Append(gctx, finding); err != nil {
						return err
					}
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	h.reporter.Done(total)
	logger.Info(ctx, "scan complete", zap.Int("domains", total))

	return results, nil
}

// scanDomain resolves every candidate URL of one domain and returns the
// confirmed subset in candidate-generation order. It only returns once all
// candidates have resolved; there is no partial result.
func (h *hunter) scanDomain(ctx context.Context, target string) domain.Result {
	if strings.TrimSpace(target) == "" {
		return domain.Result{Domain: target}
	}

	candidates := probe.Candidates(target, h.options.Deep)
	outcomes := make([]probe.Outcome, len(candidates))

	var wg sync.WaitGroup
	for i, url := range candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = h.validator.Check(ctx, url)
		}()
	}
	wg.Wait()

	var endpoints []string
	for _, out := range outcomes {
		if out.Confirmed() {
			endpoints = append(endpoints, out.URL)
		}
	}

	return domain.Result{Domain: target, Endpoints: endpoints}
}
