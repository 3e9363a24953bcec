// Package ui renders scan progress and findings to a terminal: a single
// overwriting progress line plus a highlighted block for each domain that
// exposed a specification endpoint.
package ui

import (
	"fmt"
	"io"
	"math"
	"sync"

	"swaggerhunter/pkg/domain"
)

// Console writes human-readable scan output. A mutex serializes writes so
// progress updates and findings blocks from concurrently completing domains
// never interleave mid-line.
type Console struct {
	mu         sync.Mutex
	out        io.Writer
	outputFile string
}

// NewConsole creates a Console writing to out. outputFile is only used in the
// completion banner to tell the user where results were saved.
func NewConsole(out io.Writer, outputFile string) *Console {
	return &Console{out: out, outputFile: outputFile}
}

// Percent converts a completed/total pair into a percentage rounded to two
// decimals.
func Percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(completed)/float64(total)*10000) / 100
}

// Progress rewrites the single progress line in place.
func (c *Console) Progress(completed, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line := fmt.Sprintf("[+] Progress: %d/%d domains scanned (%v%%)", completed, total, Percent(completed, total))
	fmt.Fprintf(c.out, "\r%s", ProgressStyle.Render(line))
}

// Found prints the highlighted block for a domain with confirmed endpoints.
func (c *Console) Found(res domain.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "\n%s\n", AlertStyle.Render(fmt.Sprintf("[!!!] %s: exposed specification endpoints found:", res.Domain)))
	for _, endpoint := range res.Endpoints {
		fmt.Fprintf(c.out, "    %s\n", EndpointStyle.Render("- "+endpoint))
	}
}

// Done prints the completion banner.
func (c *Console) Done(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "\n\n%s\n\n", DoneStyle.Render(fmt.Sprintf("[+] Scan complete! Results saved to %s", c.outputFile)))
}
