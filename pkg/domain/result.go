package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunID uniquely identifies one scan run.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type RunID uuid.UUID

// NewRunID returns a fresh random RunID.
func NewRunID() RunID { return RunID(uuid.New()) }

// String renders the RunID in canonical UUID form.
func (id RunID) String() string { return uuid.UUID(id).String() }

// Result is the outcome of scanning a single domain. Endpoints holds the
// confirmed specification URLs in candidate-generation order and is empty for
// domains where nothing was found. A Result is immutable once produced.
type Result struct {
	// Domain is the probed target, as given in the input list (trimmed).
	Domain string `json:"domain"`
	// Endpoints are the confirmed specification URLs, generator order preserved.
	Endpoints []string `json:"endpoints"`
}

// Found reports whether the domain exposed at least one specification endpoint.
func (r Result) Found() bool { return len(r.Endpoints) > 0 }

// Finding is a single (domain, endpoint) pair confirmed during a run.
// Findings are what gets appended to the result sinks as domains complete.
type Finding struct {
	// RunID ties the finding to the scan run that produced it.
	RunID RunID `json:"runId"`
	// Domain is the target the endpoint belongs to.
	Domain string `json:"domain"`
	// Endpoint is the fully-qualified confirmed URL.
	Endpoint string `json:"endpoint"`
	// FoundAt is when the endpoint was confirmed.
	FoundAt time.Time `json:"foundAt"`
}
