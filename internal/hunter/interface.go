package hunter

import (
	"context"

	"swaggerhunter/pkg/domain"
)

// Hunter drives a full scan run over a list of domains.
type Hunter interface {
	// Run scans every non-blank domain concurrently and returns one Result per
	// domain, input order preserved, empty-result domains included. It returns
	// an error only for fatal conditions (a sink write failing, the run being
	// canceled); a domain with zero confirmed endpoints is a normal outcome.
	Run(ctx context.Context, domains []string) ([]domain.Result, error)
}

// Reporter receives live progress while a run executes. Implementations must
// be safe for concurrent use; domain tasks complete in arbitrary order.
type Reporter interface {
	// Progress is called after each domain fully resolves.
	Progress(completed, total int)
	// Found is called for each domain with at least one confirmed endpoint.
	Found(res domain.Result)
	// Done is called once after every domain has resolved.
	Done(total int)
}
