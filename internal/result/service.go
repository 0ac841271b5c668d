package result

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/event"
)

type Config struct {
	DB       *pgxpool.Pool
	EventBus *event.Bus
}

// Service records quiz recommendations and challenge grades as they happen,
// off the request path, and serves the history to the admin panel.
type Service struct {
	db *pgxpool.Pool
}

func NewService(c Config) *Service {
	s := &Service{db: c.DB}

	c.EventBus.Subscribe(domain.EventNameQuizCompleted, func(ctx context.Context, e event.Event) error {
		return s.RecordRecommendation(ctx, e.(domain.EventQuizCompleted))
	})
	c.EventBus.Subscribe(domain.EventNameChallengeGraded, func(ctx context.Context, e event.Event) error {
		return s.RecordChallenge(ctx, e.(domain.EventChallengeGraded))
	})

	return s
}

func (s *Service) RecordRecommendation(ctx context.Context, e domain.EventQuizCompleted) error {
	const stmt = `
INSERT INTO quiz_results (result_id, email, cloud, server, cyber, cohorts, create_time)
VALUES ($1, $2, $3, $4, $5, $6, $7);`

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate result ID: %w", err)
	}

	rec := e.Recommendation
	_, err = s.db.Exec(ctx, stmt,
		id, e.Email,
		rec.Tally.Cloud, rec.Tally.Server, rec.Tally.Cyber,
		joinCohorts(rec.Cohorts), e.SubmitTime,
	)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}

	return nil
}

func (s *Service) RecordChallenge(ctx context.Context, e domain.EventChallengeGraded) error {
	const stmt = `
INSERT INTO challenge_results (result_id, email, cohort, score, total, percent, create_time)
VALUES ($1, $2, $3, $4, $5, $6, $7);`

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate result ID: %w", err)
	}

	_, err = s.db.Exec(ctx, stmt,
		id, e.Email, e.Cohort,
		e.Result.Score, e.Result.Total, e.Result.Percent(), e.SubmitTime,
	)
	if err != nil {
		return fmt.Errorf("insert challenge result: %w", err)
	}

	return nil
}

type ListRequest struct {
	Email string
}

func (s *Service) ListRecommendations(ctx context.Context, req ListRequest) ([]domain.QuizResultRecord, error) {
	const stmt = `
SELECT result_id, email, cloud, server, cyber, cohorts, create_time
FROM quiz_results WHERE email = $1 ORDER BY create_time DESC;`

	rows, err := s.db.Query(ctx, stmt, req.Email)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}

	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.QuizResultRecord, error) {
		var (
			rec     domain.QuizResultRecord
			cohorts string
		)
		err := r.Scan(&rec.ResultID, &rec.Email,
			&rec.Tally.Cloud, &rec.Tally.Server, &rec.Tally.Cyber,
			&cohorts, &rec.CreateTime)
		rec.Cohorts = splitCohorts(cohorts)
		return rec, err
	})
}

func (s *Service) ListChallengeResults(ctx context.Context, req ListRequest) ([]domain.ChallengeResultRecord, error) {
	const stmt = `
SELECT result_id, email, cohort, score, total, percent, create_time
FROM challenge_results WHERE email = $1 ORDER BY create_time DESC;`

	rows, err := s.db.Query(ctx, stmt, req.Email)
	if err != nil {
		return nil, fmt.Errorf("list challenge results: %w", err)
	}

	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.ChallengeResultRecord, error) {
		var rec domain.ChallengeResultRecord
		err := r.Scan(&rec.ResultID, &rec.Email, &rec.Cohort,
			&rec.Score, &rec.Total, &rec.Percent, &rec.CreateTime)
		return rec, err
	})
}

const cohortSeparator = "|"

func joinCohorts(cohorts []domain.Cohort) string {
	names := make([]string, 0, len(cohorts))
	for _, c := range cohorts {
		names = append(names, string(c))
	}
	return strings.Join(names, cohortSeparator)
}

func splitCohorts(s string) []domain.Cohort {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, cohortSeparator)
	cohorts := make([]domain.Cohort, 0, len(parts))
	for _, p := range parts {
		cohorts = append(cohorts, domain.Cohort(p))
	}
	return cohorts
}
