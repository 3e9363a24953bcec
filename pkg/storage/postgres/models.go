package postgres

import (
	"time"

	"github.com/google/uuid"

	"swaggerhunter/pkg/domain"
)

// PgFinding is the database representation of a confirmed finding row.
type PgFinding struct {
	ID    uuid.UUID `db:"id" goqu:"skipinsert"`
	RunID uuid.UUID `db:"run_id"`

	Domain   string `db:"domain"`
	Endpoint string `db:"endpoint"`

	FoundAt time.Time `db:"found_at"`
}

// ToDomain converts a database row to the domain type.
func (p *PgFinding) ToDomain() domain.Finding {
	return domain.Finding{
		RunID:    domain.RunID(p.RunID),
		Domain:   p.Domain,
		Endpoint: p.Endpoint,
		FoundAt:  p.FoundAt,
	}
}

// FromDomain fills the row from the domain type.
func (p *PgFinding) FromDomain(f domain.Finding) {
	*p = PgFinding{
		RunID:    uuid.UUID(f.RunID),
		Domain:   f.Domain,
		Endpoint: f.Endpoint,
		FoundAt:  f.FoundAt,
	}
}

func domainFindingsToPg(findings []domain.Finding) []PgFinding {
	out := make([]PgFinding, len(findings))
	for i := range out {
		out[i].FromDomain(findings[i])
	}

	return out
}

func pgFindingsToDomain(rows []PgFinding) []domain.Finding {
	out := make([]domain.Finding, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out
}
