package account

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
	"github.com/vets2tech/onboard/internal/event"
)

const (
	minPasswordLen  = 8
	defaultResetTTL = time.Hour
)

type Config struct {
	DB       *pgxpool.Pool
	Redis    redis.UniversalClient
	EventBus *event.Bus
	Tokens   *TokenSigner

	// AdminEmail grants admin rights to a matching registration. Replaces
	// the hardcoded bootstrap address of earlier deployments.
	AdminEmail string

	// ResetPrefix namespaces password-reset tokens in Redis.
	ResetPrefix string
	ResetTTL    time.Duration
}

type Service struct {
	db          *pgxpool.Pool
	redis       redis.UniversalClient
	eb          *event.Bus
	tokens      *TokenSigner
	adminEmail  string
	resetPrefix string
	resetTTL    time.Duration
}

func NewService(c Config) *Service {
	ttl := c.ResetTTL
	if ttl <= 0 {
		ttl = defaultResetTTL
	}

	return &Service{
		db:          c.DB,
		redis:       c.Redis,
		eb:          c.EventBus,
		tokens:      c.Tokens,
		adminEmail:  strings.ToLower(c.AdminEmail),
		resetPrefix: c.ResetPrefix,
		resetTTL:    ttl,
	}
}

type RegisterRequest struct {
	Email       string
	Password    string
	FullName    string
	StudentType domain.StudentType
}

// Register creates a new account. Email is the login identity and must be
// unique.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if err := validateRegistration(email, req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	u := &domain.User{
		UserID:      id.String(),
		Email:       email,
		FullName:    strings.TrimSpace(req.FullName),
		StudentType: req.StudentType,
		Admin:       s.adminEmail != "" && email == s.adminEmail,
		CreateTime:  time.Now(),
	}

	if err := s.insertUser(ctx, u, hash); err != nil {
		return nil, err
	}

	s.eb.Publish(ctx, domain.EventUserRegistered{User: *u})

	return u, nil
}

func (s *Service) insertUser(ctx context.Context, u *domain.User, hash []byte) error {
	const stmt = `
INSERT INTO users (user_id, email, full_name, student_type, password_hash, is_admin, create_time)
VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := s.db.Exec(ctx, stmt, u.UserID, u.Email, u.FullName, u.StudentType, hash, u.Admin, u.CreateTime)

	var pgErr *pgconn.PgError
	const codeUniqueViolation = "23505"
	if stderrors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return errors.New(errors.CodeAlreadyExists,
			errors.WithMessagef("email %q is already in use", u.Email),
			errors.WithCause(err))
	}

	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResponse struct {
	Token string
	User  domain.User
}

// Login verifies credentials and issues a bearer token. A missing account and
// a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, hash, err := s.findUser(ctx, normalizeEmail(req.Email))
	if errors.IsCode(err, errors.CodeNotFound) {
		return nil, errInvalidCredentials()
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		return nil, errInvalidCredentials()
	}

	token, err := s.tokens.Sign(*u)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: *u}, nil
}

func errInvalidCredentials() error {
	return errors.New(errors.CodeUnauthenticated, errors.WithMessagef("invalid email or password"))
}

func (s *Service) findUser(ctx context.Context, email string) (*domain.User, []byte, error) {
	const stmt = `
SELECT user_id, email, full_name, student_type, password_hash, is_admin, create_time
FROM users WHERE email = $1;`

	var (
		u    domain.User
		hash []byte
	)
	err := s.db.QueryRow(ctx, stmt, email).
		Scan(&u.UserID, &u.Email, &u.FullName, &u.StudentType, &hash, &u.Admin, &u.CreateTime)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, nil, errors.New(errors.CodeNotFound, errors.WithMessagef("user %q not found", email))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	return &u, hash, nil
}

type RequestPasswordResetRequest struct {
	Email string
}

// RequestPasswordReset issues a one-time reset token for the account and
// hands it to the mail subscriber. An unknown email is silently ignored so
// the endpoint does not leak which addresses are registered.
func (s *Service) RequestPasswordReset(ctx context.Context, req RequestPasswordResetRequest) error {
	email := normalizeEmail(req.Email)

	_, _, err := s.findUser(ctx, email)
	if errors.IsCode(err, errors.CodeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.redis.Set(ctx, s.resetKey(token), email, s.resetTTL).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	s.eb.Publish(ctx, domain.EventPasswordResetRequested{
		Email: email,
		Token: token,
	})

	return nil
}

type ResetPasswordRequest struct {
	Token    string
	Password string
}

// ResetPassword consumes a reset token and replaces the account's password.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if len(req.Password) < minPasswordLen {
		return errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("password must be at least %d characters", minPasswordLen))
	}

	email, err := s.redis.GetDel(ctx, s.resetKey(req.Token)).Result()
	if stderrors.Is(err, redis.Nil) {
		return errors.New(errors.CodeInvalidArgument, errors.WithMessagef("invalid or expired reset token"))
	}
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	const stmt = `UPDATE users SET password_hash = $2 WHERE email = $1;`
	if _, err := s.db.Exec(ctx, stmt, email, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

// ListUsers returns all accounts, newest first. Admin only; enforced by the
// API layer.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	const stmt = `
SELECT user_id, email, full_name, student_type, is_admin, create_time
FROM users ORDER BY create_time DESC;`

	rows, err := s.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		err := r.Scan(&u.UserID, &u.Email, &u.FullName, &u.StudentType, &u.Admin, &u.CreateTime)
		return u, err
	})
}

type UpdateUserRequest struct {
	Email       string
	FullName    string
	StudentType domain.StudentType
}

func (s *Service) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	if !validStudentType(req.StudentType) {
		return errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("invalid student type %q", req.StudentType))
	}

	const stmt = `UPDATE users SET full_name = $2, student_type = $3 WHERE email = $1;`
	tag, err := s.db.Exec(ctx, stmt, normalizeEmail(req.Email), strings.TrimSpace(req.FullName), req.StudentType)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.CodeNotFound, errors.WithMessagef("user %q not found", req.Email))
	}

	return nil
}

type DeleteUserRequest struct {
	Email string
}

func (s *Service) DeleteUser(ctx context.Context, req DeleteUserRequest) error {
	const stmt = `DELETE FROM users WHERE email = $1;`
	tag, err := s.db.Exec(ctx, stmt, normalizeEmail(req.Email))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.CodeNotFound, errors.WithMessagef("user %q not found", req.Email))
	}

	return nil
}

func (s *Service) resetKey(token string) string {
	return fmt.Sprintf("%s:reset:%s", s.resetPrefix, token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email string, req RegisterRequest) error {
	if email == "" || !strings.Contains(email, "@") {
		return errors.New(errors.CodeInvalidArgument, errors.WithMessagef("a valid email is required"))
	}
	if strings.TrimSpace(req.FullName) == "" {
		return errors.New(errors.CodeInvalidArgument, errors.WithMessagef("full name is required"))
	}
	if len(req.Password) < minPasswordLen {
		return errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("password must be at least %d characters", minPasswordLen))
	}
	if !validStudentType(req.StudentType) {
		return errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("invalid student type %q", req.StudentType))
	}

	return nil
}

func validStudentType(t domain.StudentType) bool {
	switch t {
	case domain.StudentTypeFuture, domain.StudentTypeCurrent, domain.StudentTypeAlumni, domain.StudentTypeNone:
		return true
	}
	return false
}
