package probe

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"swaggerhunter/pkg/logger"
	"swaggerhunter/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// specKeys are the top-level JSON keys that identify a Swagger/OpenAPI
// document. A 200 JSON response without any of them is a false positive.
var specKeys = []string{"swagger", "openapi", "paths", "info"} //nolint: gochecknoglobals

// ClientOptions configure the shared HTTP client used for all probes.
type ClientOptions struct {
	// Timeout bounds a single probe end to end, connection setup included.
	Timeout time.Duration
	// Insecure disables TLS certificate verification.
	Insecure bool
}

// NewClient builds the HTTP client shared by every probe of a run. Redirects
// are followed (net/http default, 10 hops) and the TLS verification mode is
// fixed at construction and never mutated afterwards.
func NewClient(opts ClientOptions) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint: forcetypeassert
	if opts.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint: gosec
	}

	return &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}
}

// Validator fetches candidate URLs and classifies the responses. All fetches
// go through the shared admission limiter, so at no point do more probes run
// than the limiter's capacity, regardless of how many domains are in flight.
type Validator struct {
	// client is the shared HTTP client (timeout, redirect and TLS policy).
	client *http.Client
	// admission is the process-wide cap on concurrently in-flight probes.
	// It is owned by the orchestrator and shared across all domains.
	admission *semaphore.Weighted
	// userAgent is sent with every probe request.
	userAgent string
	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes int64
}

// NewValidator constructs a Validator that probes through the given client
// under the given admission limiter.
func NewValidator(client *http.Client, admission *semaphore.Weighted, userAgent string, maxBodyBytes int64) *Validator {
	return &Validator{
		client:       client,
		admission:    admission,
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
	}
}

// Check fetches one candidate URL and classifies it. Every failure mode maps
// to a Rejected outcome; Check never returns an error, because unreachable
// candidates are the expected common case, not a fault.
//
// Checks are ordered cheapest first: status, then content-type header, then
// body parse, then key presence.
func (v *Validator) Check(ctx context.Context, url string) Outcome {
	if err := v.admission.Acquire(ctx, 1); err != nil {
		// run canceled while waiting for a slot
		return Outcome{URL: url, Reason: RejectRequestFailed}
	}
	defer v.admission.Release(1)

	metrics.InFlightProbes.Inc()
	defer metrics.InFlightProbes.Dec()
	start := time.Now()

	out := v.check(ctx, url)

	metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	metrics.ProbesTotal.WithLabelValues(out.Reason.String()).Inc()
	logger.Debug(ctx, "candidate checked",
		zap.String("url", url),
		zap.String("outcome", out.Reason.String()))

	return out
}

func (v *Validator) check(ctx context.Context, url string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{URL: url, Reason: RejectRequestFailed}
	}
	req.Header.Set("User-Agent", v.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return Outcome{URL: url, Reason: RejectRequestFailed}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return Outcome{URL: url, Reason: RejectBadStatus}
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "json") {
		return Outcome{URL: url, Reason: RejectNotJSON}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, v.maxBodyBytes))
	if err != nil {
		return Outcome{URL: url, Reason: RejectRequestFailed}
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return Outcome{URL: url, Reason: RejectParseFailed}
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return Outcome{URL: url, Reason: RejectNoSpecKeys}
	}
	for _, k := range specKeys {
		if _, ok := obj[k]; ok {
			return Outcome{URL: url, Reason: RejectNone}
		}
	}

	return Outcome{URL: url, Reason: RejectNoSpecKeys}
}
