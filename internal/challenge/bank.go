package challenge

import "github.com/vets2tech/onboard/internal/domain"

// Bank keys match the cohort slugs used in challenge-test URLs.
const (
	BankCloud  = "cloud"
	BankCyber  = "cybersecurity"
	BankServer = "server"
)

// DefaultBank returns the per-cohort challenge question bank. Static
// configuration, injected at construction.
func DefaultBank() map[string][]domain.ChallengeQuestion {
	return map[string][]domain.ChallengeQuestion{
		BankCloud: {
			{
				QuestionID: "q1",
				Prompt:     "What is serverless computing?",
				Options: []domain.ChallengeOption{
					{Key: "A", Text: "A cloud computing model", Correct: true},
					{Key: "B", Text: "A type of database"},
					{Key: "C", Text: "A security protocol"},
				},
			},
			{
				QuestionID: "q2",
				Prompt:     "Which of these is a popular cloud provider?",
				Options: []domain.ChallengeOption{
					{Key: "A", Text: "AWS", Correct: true},
					{Key: "B", Text: "React"},
					{Key: "C", Text: "TensorFlow"},
				},
			},
		},
		BankCyber: {
			{
				QuestionID: "q1",
				Prompt:     "What does a firewall do?",
				Options: []domain.ChallengeOption{
					{Key: "A", Text: "Prevents unauthorized access", Correct: true},
					{Key: "B", Text: "Stores backup files"},
					{Key: "C", Text: "Speeds up network traffic"},
				},
			},
			{
				QuestionID: "q2",
				Prompt:     "Which is an example of multi-factor authentication?",
				Options: []domain.ChallengeOption{
					{Key: "A", Text: "Password + SMS code", Correct: true},
					{Key: "B", Text: "Username only"},
					{Key: "C", Text: "Public WiFi login"},
				},
			},
		},
		BankServer: {
			{
				QuestionID: "q1",
				Prompt:     "What is a virtual machine?",
				Options: []domain.ChallengeOption{
					{Key: "A", Text: "An emulation of a computer system", Correct: true},
					{Key: "B", Text: "A programming language"},
					{Key: "C", Text: "A type of network cable"},
				},
			},
			{
				QuestionID: "q2",
				Prompt:     "Which tool is used for containerization?",
				Options: []domain.ChallengeOption{
					{Key: "A", Text: "Docker", Correct: true},
					{Key: "B", Text: "Photoshop"},
					{Key: "C", Text: "Microsoft Word"},
				},
			},
		},
	}
}
