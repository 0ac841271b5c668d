package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
	"github.com/vets2tech/onboard/internal/event"
)

type Config struct {
	Catalog  []domain.QuizQuestion
	EventBus *event.Bus
}

type Service struct {
	catalog []domain.QuizQuestion
	eb      *event.Bus
}

func NewService(c Config) *Service {
	return &Service{
		catalog: c.Catalog,
		eb:      c.EventBus,
	}
}

// Questions returns the quiz catalog for rendering.
func (s *Service) Questions() []domain.QuizQuestion {
	return s.catalog
}

type RecommendRequest struct {
	Email      string
	Answers    map[string]domain.Category
	SubmitTime time.Time
}

// Recommend tallies the submitted answers and returns every cohort tied at
// the maximum tally, in display order Cloud, Server, Cyber. Ties are
// deliberately surfaced together rather than broken.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) (*domain.Recommendation, error) {
	tally, err := s.tally(req.Answers)
	if err != nil {
		return nil, err
	}

	max := tally.Cloud
	if tally.Server > max {
		max = tally.Server
	}
	if tally.Cyber > max {
		max = tally.Cyber
	}

	var cohorts []domain.Cohort
	if tally.Cloud == max {
		cohorts = append(cohorts, domain.CohortCloud)
	}
	if tally.Server == max {
		cohorts = append(cohorts, domain.CohortServer)
	}
	if tally.Cyber == max {
		cohorts = append(cohorts, domain.CohortCyber)
	}

	rec := &domain.Recommendation{
		Tally:   tally,
		Cohorts: cohorts,
		Message: suggestionMessage(cohorts),
	}

	if s.eb != nil && req.Email != "" {
		s.eb.Publish(ctx, domain.EventQuizCompleted{
			Email:          req.Email,
			Recommendation: *rec,
			SubmitTime:     req.SubmitTime,
		})
	}

	return rec, nil
}

func (s *Service) tally(answers map[string]domain.Category) (domain.Tally, error) {
	var t domain.Tally

	if len(answers) != len(s.catalog) {
		return t, errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("expected %d answers, got %d", len(s.catalog), len(answers)))
	}

	for _, q := range s.catalog {
		switch answers[q.QuestionID] {
		case domain.CategoryCloud:
			t.Cloud++
		case domain.CategoryServer:
			t.Server++
		case domain.CategoryCyber:
			t.Cyber++
		case "":
			return domain.Tally{}, errors.New(errors.CodeInvalidArgument,
				errors.WithMessagef("missing answer for question %q", q.QuestionID))
		default:
			return domain.Tally{}, errors.New(errors.CodeInvalidArgument,
				errors.WithMessagef("invalid answer %q for question %q", answers[q.QuestionID], q.QuestionID))
		}
	}

	return t, nil
}

func suggestionMessage(cohorts []domain.Cohort) string {
	switch len(cohorts) {
	case 1:
		return fmt.Sprintf("Based on your answers, you should consider the %s cohort.", cohorts[0])
	case 2:
		return fmt.Sprintf("Based on your answers, you should consider the %s and %s cohorts.", cohorts[0], cohorts[1])
	default:
		return fmt.Sprintf("Based on your answers, you should consider the %s, %s, and %s cohorts.", cohorts[0], cohorts[1], cohorts[2])
	}
}
