package csvfile_test

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"swaggerhunter/pkg/domain"
	"swaggerhunter/pkg/storage/csvfile"

	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) (*csvfile.Sink, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "results.csv")
	s, err := csvfile.New(path)
	require.NoError(t, err)

	return s, path
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestNewWritesHeader(t *testing.T) {
	s, path := newTestSink(t)
	require.NoError(t, s.Close())

	rows := readRows(t, path)
	require.Equal(t, [][]string{{"Domain", "Endpoint"}}, rows)
}

func TestAppendWritesRowsIncrementally(t *testing.T) {
	s, path := newTestSink(t)

	finding := domain.Finding{
		RunID:    domain.NewRunID(),
		Domain:   "good.example.com",
		Endpoint: "https://good.example.com/openapi.json",
		FoundAt:  time.Now(),
	}
	require.NoError(t, s.Append(context.Background(), finding))

	// rows must be on disk before Close: the sink is incremental
	rows := readRows(t, path)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"good.example.com", "https://good.example.com/openapi.json"}, rows[1])

	require.NoError(t, s.Close())
}

func TestConcurrentAppendsDoNotInterleave(t *testing.T) {
	s, path := newTestSink(t)

	const writers = 50
	runID := domain.NewRunID()

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := domain.Finding{
				RunID:    runID,
				Domain:   fmt.Sprintf("d%d.example.com", i),
				Endpoint: fmt.Sprintf("https://d%d.example.com/swagger.json", i),
				FoundAt:  time.Now(),
			}
			require.NoError(t, s.Append(context.Background(), f))
		}(i)
	}
	wg.Wait()
	require.NoError(t, s.Close())

	rows := readRows(t, path)
	require.Len(t, rows, writers+1)
	for _, row := range rows[1:] {
		// every data row is a complete, well-formed pair
		require.Len(t, row, 2)
		require.Equal(t, "https://"+row[0]+"/swagger.json", row[1])
	}
}
