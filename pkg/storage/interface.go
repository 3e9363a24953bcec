// Package storage defines the result-sink abstraction the scan pipeline
// writes confirmed findings to. Different backends (a delimited file, a
// PostgreSQL table) provide concrete implementations.
package storage

import (
	"context"

	"swaggerhunter/pkg/domain"
)

// FindingSink is a durable append target for confirmed findings. Findings are
// streamed to the sink as domains complete, not buffered to the end of the
// run, so a partially completed run still leaves its findings behind.
//
// Append must be safe for concurrent use: multiple domain tasks may complete
// around the same time and rows must never interleave.
type FindingSink interface {
	// Append durably records one finding.
	Append(ctx context.Context, finding domain.Finding) error

	// Close releases any resources held by the sink (file handles, connection
	// pools). After Close, the sink must not be used.
	Close() error
}
