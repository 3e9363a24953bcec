package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"swaggerhunter/pkg/domain"
	"swaggerhunter/pkg/storage"
)

const (
	findingsTable = "findings"
)

// StoreFindings inserts the given findings and returns them with their
// database-assigned fields filled in.
func (p *PgSQL) StoreFindings(ctx context.Context, findings ...domain.Finding) ([]domain.Finding, error) {
	if len(findings) == 0 {
		return nil, nil
	}

	var result []PgFinding
	if err := p.Builder.Insert(findingsTable).
		Rows(domainFindingsToPg(findings)).
		Returning(&PgFinding{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store findings into pg: %w", err)
	}

	return pgFindingsToDomain(result), nil
}

// FindingsByRun returns all findings recorded for the given run, oldest first.
func (p *PgSQL) FindingsByRun(ctx context.Context, runID domain.RunID) ([]domain.Finding, error) {
	var rows []PgFinding
	if err := p.Builder.From(findingsTable).
		Where(goqu.Ex{"run_id": uuid.UUID(runID)}).
		Order(goqu.I("found_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get findings from pg: %w", err)
	}

	return pgFindingsToDomain(rows), nil
}

// Append implements storage.FindingSink by storing a single finding.
func (p *PgSQL) Append(ctx context.Context, finding domain.Finding) error {
	if _, err := p.StoreFindings(ctx, finding); err != nil {
		return err
	}

	return nil
}

// Ensure PgSQL conforms to the storage.FindingSink interface at compile time.
var _ storage.FindingSink = (*PgSQL)(nil)
