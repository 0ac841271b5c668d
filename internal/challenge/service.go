package challenge

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
	"github.com/vets2tech/onboard/internal/event"
)

type Config struct {
	Bank     map[string][]domain.ChallengeQuestion
	Sessions *Store
	EventBus *event.Bus

	// StrictCohorts upgrades an unknown cohort on Build from an empty
	// session to a not-found error.
	StrictCohorts bool
}

type Service struct {
	bank     map[string][]domain.ChallengeQuestion
	sessions *Store
	eb       *event.Bus
	strict   bool
}

func NewService(c Config) *Service {
	return &Service{
		bank:     c.Bank,
		sessions: c.Sessions,
		eb:       c.EventBus,
		strict:   c.StrictCohorts,
	}
}

type BuildRequest struct {
	Cohort string
}

// Build creates one presentation of the cohort's challenge test: every
// question's options are uniformly shuffled and relabeled A, B, C by their
// new position, and the key now carrying the originally-correct text is
// recorded as the answer. The answer key is kept server-side until the
// session is graded or expires.
//
// An unknown cohort yields an empty session unless StrictCohorts is set.
func (s *Service) Build(ctx context.Context, req BuildRequest) (*domain.ChallengeSession, error) {
	questions, ok := s.bank[req.Cohort]
	if !ok && s.strict {
		return nil, errors.New(errors.CodeNotFound,
			errors.WithMessagef("unknown cohort %q", req.Cohort))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate session ID: %w", err)
	}

	ss := &domain.ChallengeSession{
		SessionID: id.String(),
		Cohort:    req.Cohort,
		Questions: make([]domain.SessionQuestion, 0, len(questions)),
		AnswerKey: make(map[string]string, len(questions)),
	}

	for _, q := range questions {
		shuffled := make([]domain.ChallengeOption, len(q.Options))
		copy(shuffled, q.Options)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		sq := domain.SessionQuestion{
			QuestionID: q.QuestionID,
			Prompt:     q.Prompt,
			Options:    make([]domain.SessionOption, 0, len(shuffled)),
		}

		for i, opt := range shuffled {
			key := optionKey(i)
			sq.Options = append(sq.Options, domain.SessionOption{
				Key:  key,
				Text: opt.Text,
			})
			if opt.Correct {
				ss.AnswerKey[q.QuestionID] = key
			}
		}

		ss.Questions = append(ss.Questions, sq)
	}

	if err := s.sessions.Save(ctx, ss.SessionID, sessionRecord{
		Cohort:    ss.Cohort,
		AnswerKey: ss.AnswerKey,
	}); err != nil {
		return nil, err
	}

	return ss, nil
}

type EvaluateRequest struct {
	SessionID  string
	Email      string
	Answers    map[string]string
	SubmitTime time.Time
}

// Evaluate grades submitted answers against the session built earlier.
// Grading a session that was never built, or whose key expired, is a caller
// error. Evaluate does not consume the session, so regrading the same
// submission returns the same result.
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (*domain.ChallengeResult, error) {
	r, ok, err := s.sessions.Load(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.CodeFailedPrecondition,
			errors.WithMessagef("challenge session %q was not built or has expired", req.SessionID))
	}

	result := Grade(r.AnswerKey, req.Answers)

	if s.eb != nil && req.Email != "" {
		s.eb.Publish(ctx, domain.EventChallengeGraded{
			Email:      req.Email,
			Cohort:     r.Cohort,
			Result:     result,
			SubmitTime: req.SubmitTime,
		})
	}

	return &result, nil
}

// Grade scores submitted option keys against an answer key. Omitted question
// ids count as incorrect; submitted ids not in the key are ignored. Pure.
func Grade(answerKey, submitted map[string]string) domain.ChallengeResult {
	result := domain.ChallengeResult{
		Total: len(answerKey),
	}

	for id, key := range answerKey {
		if submitted[id] == key {
			result.Score++
		}
	}

	return result
}

func optionKey(i int) string {
	return string(rune('A' + i))
}
