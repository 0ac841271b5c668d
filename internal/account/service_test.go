package account_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/vets2tech/onboard/internal/account"
	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
	"github.com/vets2tech/onboard/internal/event"
)

func TestService_Register_Validation(t *testing.T) {
	valid := account.RegisterRequest{
		Email:       "student@example.com",
		Password:    "long-enough-password",
		FullName:    "Sam Student",
		StudentType: domain.StudentTypeFuture,
	}

	tests := map[string]struct {
		arrange func() account.RegisterRequest
	}{
		"an empty email should be rejected": {
			arrange: func() account.RegisterRequest {
				req := valid
				req.Email = "   "
				return req
			},
		},

		"an email without an at sign should be rejected": {
			arrange: func() account.RegisterRequest {
				req := valid
				req.Email = "student.example.com"
				return req
			},
		},

		"a blank full name should be rejected": {
			arrange: func() account.RegisterRequest {
				req := valid
				req.FullName = "  "
				return req
			},
		},

		"a short password should be rejected": {
			arrange: func() account.RegisterRequest {
				req := valid
				req.Password = "short"
				return req
			},
		},

		"an unknown student type should be rejected": {
			arrange: func() account.RegisterRequest {
				req := valid
				req.StudentType = "Visitor"
				return req
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// No DB is wired: validation must fail before any query runs.
			s := account.NewService(account.Config{EventBus: event.NewBus()})

			u, err := s.Register(context.Background(), tt.arrange())
			assert.Nil(t, u)
			assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
		})
	}
}

func TestService_ResetPassword(t *testing.T) {
	t.Run("a short password should be rejected before the token is consumed", func(t *testing.T) {
		s := account.NewService(account.Config{EventBus: event.NewBus()})

		err := s.ResetPassword(context.Background(), account.ResetPasswordRequest{
			Token:    "some-token",
			Password: "short",
		})
		assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
	})

	t.Run("an unknown token should be rejected", func(t *testing.T) {
		rs := miniredis.RunT(t)
		rc := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{rs.Addr()},
		})

		s := account.NewService(account.Config{
			Redis:       rc,
			EventBus:    event.NewBus(),
			ResetPrefix: "test",
		})

		err := s.ResetPassword(context.Background(), account.ResetPasswordRequest{
			Token:    "never-issued",
			Password: "long-enough-password",
		})
		assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
	})
}

func TestService_UpdateUser_Validation(t *testing.T) {
	s := account.NewService(account.Config{EventBus: event.NewBus()})

	err := s.UpdateUser(context.Background(), account.UpdateUserRequest{
		Email:       "student@example.com",
		FullName:    "Sam Student",
		StudentType: "Visitor",
	})
	assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
}
