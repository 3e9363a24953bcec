// Package csvfile implements the delimited-file finding sink. The file gets a
// `Domain,Endpoint` header on creation and one row per confirmed finding,
// flushed as it arrives.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"swaggerhunter/pkg/domain"
	"swaggerhunter/pkg/storage"
)

// Sink appends findings to a CSV file. A single lock serializes appends so
// rows from concurrently completing domains never interleave; the lock is
// never held across anything but the one row write.
type Sink struct {
	mu sync.Mutex
	f  *os.File
	w  *csv.Writer
}

// New creates (truncating if present) the CSV file at path and writes the
// header row.
func New(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Domain", "Endpoint"}); err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("could not write header row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("could not flush header row: %w", err)
	}

	return &Sink{f: f, w: w}, nil
}

// Append writes one `domain,endpoint` row and flushes it to disk.
func (s *Sink) Append(_ context.Context, finding domain.Finding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Write([]string{finding.Domain, finding.Endpoint}); err != nil {
		return fmt.Errorf("could not append finding: %w", err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("could not flush finding: %w", err)
	}

	return nil
}

// Close flushes pending rows and closes the file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.w.Flush()
	if err := s.w.Error(); err != nil {
		_ = s.f.Close()

		return fmt.Errorf("could not flush output file: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("could not close output file: %w", err)
	}

	return nil
}

// Ensure Sink conforms to the storage.FindingSink interface at compile time.
var _ storage.FindingSink = (*Sink)(nil)
