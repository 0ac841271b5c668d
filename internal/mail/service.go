package mail

import (
	"context"
	"fmt"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/event"
)

type Config struct {
	Mailer   Mailer
	EventBus *event.Bus

	// ResetBaseURL is the public URL prefix of the reset-password page; the
	// one-time token is appended as the final path segment.
	ResetBaseURL string
}

// Service turns account events into outbound mail.
type Service struct {
	mailer       Mailer
	resetBaseURL string
}

func NewService(c Config) *Service {
	s := &Service{
		mailer:       c.Mailer,
		resetBaseURL: c.ResetBaseURL,
	}

	c.EventBus.Subscribe(domain.EventNameUserRegistered, func(ctx context.Context, e event.Event) error {
		return s.SendWelcome(ctx, e.(domain.EventUserRegistered))
	})
	c.EventBus.Subscribe(domain.EventNamePasswordResetRequested, func(ctx context.Context, e event.Event) error {
		return s.SendPasswordReset(ctx, e.(domain.EventPasswordResetRequested))
	})

	return s
}

func (s *Service) SendWelcome(ctx context.Context, e domain.EventUserRegistered) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account has been created. Take the cohort quiz to find the program track that fits you best.\n",
		e.User.FullName,
	)

	return s.mailer.Send(ctx, e.User.Email, "Welcome to Vets2Tech", body)
}

func (s *Service) SendPasswordReset(ctx context.Context, e domain.EventPasswordResetRequested) error {
	link := fmt.Sprintf("%s/%s", s.resetBaseURL, e.Token)
	body := fmt.Sprintf("Click here to reset your password: %s\n\nThe link expires in one hour.\n", link)

	return s.mailer.Send(ctx, e.Email, "Reset Password", body)
}
