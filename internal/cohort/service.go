package cohort

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
)

type Config struct {
	DB *pgxpool.Pool
}

// Service controls which cohorts appear on public pages. Rows for the three
// known cohorts are seeded on first read so a fresh database behaves as if
// everything were enabled.
type Service struct {
	db *pgxpool.Pool
}

func NewService(c Config) *Service {
	return &Service{db: c.DB}
}

var defaultCohorts = []domain.Cohort{
	domain.CohortCloud,
	domain.CohortServer,
	domain.CohortCyber,
}

// ListVisibility returns every cohort and its visibility flag, seeding any
// missing rows as enabled.
func (s *Service) ListVisibility(ctx context.Context) ([]domain.CohortVisibility, error) {
	const seedStmt = `
INSERT INTO cohort_visibility (name, enabled) VALUES ($1, TRUE)
ON CONFLICT (name) DO NOTHING;`

	for _, c := range defaultCohorts {
		if _, err := s.db.Exec(ctx, seedStmt, c); err != nil {
			return nil, fmt.Errorf("seed cohort %q: %w", c, err)
		}
	}

	const stmt = `SELECT name, enabled FROM cohort_visibility ORDER BY name;`
	rows, err := s.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("list cohort visibility: %w", err)
	}

	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.CohortVisibility, error) {
		var v domain.CohortVisibility
		err := r.Scan(&v.Cohort, &v.Enabled)
		return v, err
	})
}

type SetEnabledRequest struct {
	Cohort  domain.Cohort
	Enabled bool
}

func (s *Service) SetEnabled(ctx context.Context, req SetEnabledRequest) error {
	const stmt = `
INSERT INTO cohort_visibility (name, enabled) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET enabled = EXCLUDED.enabled;`

	known := false
	for _, c := range defaultCohorts {
		if c == req.Cohort {
			known = true
			break
		}
	}
	if !known {
		return errors.New(errors.CodeNotFound, errors.WithMessagef("unknown cohort %q", req.Cohort))
	}

	if _, err := s.db.Exec(ctx, stmt, req.Cohort, req.Enabled); err != nil {
		return fmt.Errorf("set cohort visibility: %w", err)
	}

	return nil
}
