package recommend

import "github.com/vets2tech/onboard/internal/domain"

// DefaultCatalog returns the six-question cohort quiz. The catalog is
// injected into the service at construction so alternate locales can swap in
// translated prompts without touching process-wide state.
func DefaultCatalog() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			QuestionID: "q1",
			Prompt:     "1. How do you prefer to work?",
			Choices: []domain.QuizChoice{
				{Category: domain.CategoryCloud, Label: "I love designing and coding innovative applications."},
				{Category: domain.CategoryServer, Label: "I enjoy configuring and managing IT infrastructure."},
				{Category: domain.CategoryCyber, Label: "I like protecting systems and networks from threats."},
			},
		},
		{
			QuestionID: "q2",
			Prompt:     "2. What aspect of technology excites you the most?",
			Choices: []domain.QuizChoice{
				{Category: domain.CategoryCloud, Label: "Building user-friendly web applications and software."},
				{Category: domain.CategoryServer, Label: "Optimizing system performance and scalability."},
				{Category: domain.CategoryCyber, Label: "Investigating vulnerabilities and safeguarding data."},
			},
		},
		{
			QuestionID: "q3",
			Prompt:     "3. What type of projects inspire you?",
			Choices: []domain.QuizChoice{
				{Category: domain.CategoryCloud, Label: "Developing full-stack applications and interactive interfaces."},
				{Category: domain.CategoryServer, Label: "Deploying, monitoring, and managing cloud infrastructure."},
				{Category: domain.CategoryCyber, Label: "Conducting penetration tests and implementing security measures."},
			},
		},
		{
			QuestionID: "q4",
			Prompt:     "4. How do you approach problem-solving?",
			Choices: []domain.QuizChoice{
				{Category: domain.CategoryCloud, Label: "I enjoy creatively coding and prototyping solutions."},
				{Category: domain.CategoryServer, Label: "I systematically troubleshoot and optimize systems."},
				{Category: domain.CategoryCyber, Label: "I analyze risks and design defensive strategies."},
			},
		},
		{
			QuestionID: "q5",
			Prompt:     "5. What work environment appeals most to you?",
			Choices: []domain.QuizChoice{
				{Category: domain.CategoryCloud, Label: "A creative, collaborative team developing new software."},
				{Category: domain.CategoryServer, Label: "A dynamic IT department handling complex infrastructure challenges."},
				{Category: domain.CategoryCyber, Label: "A security operations center where threats are monitored and mitigated."},
			},
		},
		{
			QuestionID: "q6",
			Prompt:     "6. How do you prefer to learn?",
			Choices: []domain.QuizChoice{
				{Category: domain.CategoryCloud, Label: "Through hands-on coding projects and interactive tutorials."},
				{Category: domain.CategoryServer, Label: "By tackling real-world system and network challenges."},
				{Category: domain.CategoryCyber, Label: "Using simulated security scenarios and case studies."},
			},
		},
	}
}
