package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cohort is one of the program tracks a student can be recommended into.
type Cohort string

const (
	CohortCloud  Cohort = "Cloud Application Development"
	CohortServer Cohort = "Server & Cloud Applications"
	CohortCyber  Cohort = "Cybersecurity Administration"
)

// Category tags a cohort-quiz choice. Every choice in the quiz catalog maps
// to exactly one category.
type Category string

const (
	CategoryCloud  Category = "Cloud"
	CategoryServer Category = "Server"
	CategoryCyber  Category = "Cyber"
)

// QuizQuestion is one question of the cohort-recommendation quiz.
type QuizQuestion struct {
	QuestionID string
	Prompt     string
	Choices    []QuizChoice
}

type QuizChoice struct {
	Category Category
	Label    string
}

// Tally counts how many quiz answers fell into each category.
type Tally struct {
	Cloud  int
	Server int
	Cyber  int
}

// Recommendation is the outcome of one cohort quiz. Cohorts holds every
// cohort tied at the maximum tally, in display order Cloud, Server, Cyber.
type Recommendation struct {
	Tally   Tally
	Cohorts []Cohort
	Message string
}

// ChallengeQuestion is a bank entry for the cohort challenge test.
// Exactly one option is marked correct.
type ChallengeQuestion struct {
	QuestionID string
	Prompt     string
	Options    []ChallengeOption
}

type ChallengeOption struct {
	Key     string
	Text    string
	Correct bool
}

// ChallengeSession is one presentation of a challenge test: the questions
// with freshly shuffled options, and the answer key recomputed for the new
// option ordering. The answer key never leaves the server.
type ChallengeSession struct {
	SessionID string
	Cohort    string
	Questions []SessionQuestion
	AnswerKey map[string]string
}

type SessionQuestion struct {
	QuestionID string
	Prompt     string
	Options    []SessionOption
}

type SessionOption struct {
	Key  string
	Text string
}

// ChallengeResult is the grade of one submitted challenge test.
type ChallengeResult struct {
	Score int
	Total int
}

// Percent returns the score as a percentage. A zero-question session grades
// to zero percent.
func (r ChallengeResult) Percent() decimal.Decimal {
	if r.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(r.Score)).
		Div(decimal.NewFromInt(int64(r.Total))).
		Mul(decimal.NewFromInt(100))
}

// StudentType categorizes an account at registration time.
type StudentType string

const (
	StudentTypeFuture  StudentType = "Future"
	StudentTypeCurrent StudentType = "Current"
	StudentTypeAlumni  StudentType = "Alumni"
	StudentTypeNone    StudentType = "None"
)

// User is a registered account. Email is the login identity.
type User struct {
	UserID      string
	Email       string
	FullName    string
	StudentType StudentType
	Admin       bool
	CreateTime  time.Time
}

// CohortVisibility controls whether a cohort is shown on public pages.
type CohortVisibility struct {
	Cohort  Cohort
	Enabled bool
}

// StudyResource describes one entry of the study-resource catalog.
type StudyResource struct {
	Title       string
	Description string
	URL         string
	Skills      string
}

// QuizResultRecord is a persisted cohort-quiz outcome.
type QuizResultRecord struct {
	ResultID   string
	Email      string
	Tally      Tally
	Cohorts    []Cohort
	CreateTime time.Time
}

// ChallengeResultRecord is a persisted challenge-test grade.
type ChallengeResultRecord struct {
	ResultID   string
	Email      string
	Cohort     string
	Score      int
	Total      int
	Percent    decimal.Decimal
	CreateTime time.Time
}
