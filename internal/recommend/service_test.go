package recommend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
	"github.com/vets2tech/onboard/internal/event"
	"github.com/vets2tech/onboard/internal/recommend"
)

func TestService_Recommend(t *testing.T) {
	tests := map[string]struct {
		arrange func() map[string]domain.Category
		assert  func(t *testing.T, rec *domain.Recommendation, err error)
	}{
		"all cloud answers should recommend the cloud cohort alone": {
			arrange: func() map[string]domain.Category {
				return answers(
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
				)
			},

			assert: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Tally{Cloud: 6}, rec.Tally)
				assert.Equal(t, []domain.Cohort{domain.CohortCloud}, rec.Cohorts)
				assert.Equal(t, "Based on your answers, you should consider the Cloud Application Development cohort.", rec.Message)
			},
		},

		"a two-way tie should surface both cohorts joined with and": {
			arrange: func() map[string]domain.Category {
				return answers(
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
					domain.CategoryServer, domain.CategoryServer, domain.CategoryServer,
				)
			},

			assert: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Tally{Cloud: 3, Server: 3}, rec.Tally)
				assert.Equal(t, []domain.Cohort{domain.CohortCloud, domain.CohortServer}, rec.Cohorts)
				assert.Equal(t, "Based on your answers, you should consider the Cloud Application Development and Server & Cloud Applications cohorts.", rec.Message)
			},
		},

		"a three-way tie should surface all cohorts with an oxford comma": {
			arrange: func() map[string]domain.Category {
				return answers(
					domain.CategoryCloud, domain.CategoryCloud,
					domain.CategoryServer, domain.CategoryServer,
					domain.CategoryCyber, domain.CategoryCyber,
				)
			},

			assert: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Tally{Cloud: 2, Server: 2, Cyber: 2}, rec.Tally)
				assert.Equal(t, []domain.Cohort{domain.CohortCloud, domain.CohortServer, domain.CohortCyber}, rec.Cohorts)
				assert.Equal(t, "Based on your answers, you should consider the Cloud Application Development, Server & Cloud Applications, and Cybersecurity Administration cohorts.", rec.Message)
			},
		},

		"cyber majority should recommend the cyber cohort": {
			arrange: func() map[string]domain.Category {
				return answers(
					domain.CategoryCyber, domain.CategoryCyber, domain.CategoryCyber,
					domain.CategoryCyber, domain.CategoryCloud, domain.CategoryServer,
				)
			},

			assert: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Tally{Cloud: 1, Server: 1, Cyber: 4}, rec.Tally)
				assert.Equal(t, []domain.Cohort{domain.CohortCyber}, rec.Cohorts)
			},
		},

		"a missing answer should be rejected": {
			arrange: func() map[string]domain.Category {
				a := answers(
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
				)
				delete(a, "q6")
				return a
			},

			assert: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.Nil(t, rec)
				assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
			},
		},

		"an answer outside the category set should be rejected": {
			arrange: func() map[string]domain.Category {
				a := answers(
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
				)
				a["q3"] = "Quantum"
				return a
			},

			assert: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.Nil(t, rec)
				assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
			},
		},

		"an answer for an unknown question should be rejected": {
			arrange: func() map[string]domain.Category {
				a := answers(
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
					domain.CategoryCloud, domain.CategoryCloud, domain.CategoryCloud,
				)
				delete(a, "q1")
				a["q99"] = domain.CategoryCloud
				return a
			},

			assert: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.Nil(t, rec)
				assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := makeService()
			rec, err := s.Recommend(context.Background(), recommend.RecommendRequest{
				Answers: tt.arrange(),
			})

			if err == nil {
				total := rec.Tally.Cloud + rec.Tally.Server + rec.Tally.Cyber
				assert.Equal(t, 6, total, "tallies should sum to the number of questions")
				assert.NotEmpty(t, rec.Cohorts)
				assert.LessOrEqual(t, len(rec.Cohorts), 3)
			}

			tt.assert(t, rec, err)
		})
	}
}

func TestService_Recommend_PublishesQuizCompleted(t *testing.T) {
	eb := event.NewBus()

	received := make(chan domain.EventQuizCompleted, 1)
	eb.Subscribe(domain.EventNameQuizCompleted, func(ctx context.Context, e event.Event) error {
		received <- e.(domain.EventQuizCompleted)
		return nil
	})

	s := recommend.NewService(recommend.Config{
		Catalog:  recommend.DefaultCatalog(),
		EventBus: eb,
	})

	_, err := s.Recommend(context.Background(), recommend.RecommendRequest{
		Email: "student@example.com",
		Answers: answers(
			domain.CategoryServer, domain.CategoryServer, domain.CategoryServer,
			domain.CategoryServer, domain.CategoryServer, domain.CategoryServer,
		),
	})
	require.NoError(t, err)

	eb.Stop()

	e := <-received
	assert.Equal(t, "student@example.com", e.Email)
	assert.Equal(t, []domain.Cohort{domain.CohortServer}, e.Recommendation.Cohorts)
}

func makeService() *recommend.Service {
	return recommend.NewService(recommend.Config{
		Catalog:  recommend.DefaultCatalog(),
		EventBus: event.NewBus(),
	})
}

func answers(cats ...domain.Category) map[string]domain.Category {
	a := make(map[string]domain.Category, len(cats))
	for i, c := range cats {
		a[formatQuestionID(i+1)] = c
	}
	return a
}

func formatQuestionID(n int) string {
	return "q" + string(rune('0'+n))
}
