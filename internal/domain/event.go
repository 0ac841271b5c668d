package domain

import "time"

const (
	EventNameUserRegistered         = "user.registered"
	EventNamePasswordResetRequested = "user.password_reset_requested"
	EventNameQuizCompleted          = "quiz.completed"
	EventNameChallengeGraded        = "challenge.graded"
)

type EventUserRegistered struct {
	User User
}

func (EventUserRegistered) Name() string { return EventNameUserRegistered }

type EventPasswordResetRequested struct {
	Email string
	Token string
}

func (EventPasswordResetRequested) Name() string { return EventNamePasswordResetRequested }

type EventQuizCompleted struct {
	Email          string
	Recommendation Recommendation
	SubmitTime     time.Time
}

func (EventQuizCompleted) Name() string { return EventNameQuizCompleted }

type EventChallengeGraded struct {
	Email      string
	Cohort     string
	Result     ChallengeResult
	SubmitTime time.Time
}

func (EventChallengeGraded) Name() string { return EventNameChallengeGraded }
