package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/vets2tech/onboard/internal/account"
	"github.com/vets2tech/onboard/internal/api"
	"github.com/vets2tech/onboard/internal/challenge"
	"github.com/vets2tech/onboard/internal/cohort"
	"github.com/vets2tech/onboard/internal/event"
	"github.com/vets2tech/onboard/internal/mail"
	"github.com/vets2tech/onboard/internal/recommend"
	"github.com/vets2tech/onboard/internal/result"
	"github.com/vets2tech/onboard/internal/study"
	"github.com/vets2tech/onboard/internal/telemetry"
)

type Config struct {
	HTTP struct {
		Port int32
	}

	Auth struct {
		TokenSecret string
		AdminEmail  string
	}

	Redis struct {
		Session struct {
			Addrs  []string
			Pass   string
			Prefix string
		}

		Reset struct {
			Addrs  []string
			Pass   string
			Prefix string
		}
	}

	Postgres struct {
		Account struct {
			Addr string
			User string
			Pass string
			Name string
		}

		Result struct {
			Addr string
			User string
			Pass string
			Name string
		}
	}

	SMTP struct {
		Addr         string
		From         string
		User         string
		Pass         string
		ResetBaseURL string
	}
}

type Server struct {
	c Config

	eb *event.Bus

	infra struct {
		redis struct {
			session redis.UniversalClient
			reset   redis.UniversalClient
		}

		postgres struct {
			account *pgxpool.Pool
			result  *pgxpool.Pool
		}
	}

	service struct {
		tokens    *account.TokenSigner
		account   *account.Service
		cohorts   *cohort.Service
		recommend *recommend.Service
		challenge *challenge.Service
		results   *result.Service
		study     *study.Service
		mail      *mail.Service
	}

	http *http.Server
}

func Init(c Config) (*Server, error) {
	s := &Server{c: c}

	s.eb = event.NewBus()

	if err := s.initInfra(); err != nil {
		return nil, fmt.Errorf("server: init infra: %w", err)
	}

	s.initService()
	s.initAPI()
	return s, nil
}

func (s *Server) initInfra() error {
	if err := s.initRedis(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if err := s.initPostgres(); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	return nil
}

func (s *Server) initRedis() error {
	connect := func(addrs []string, pass string) (redis.UniversalClient, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		r := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    addrs,
			Password: pass,
		})

		if err := telemetry.MonitorRedis(r); err != nil {
			return nil, err
		}

		if err := r.Ping(ctx).Err(); err != nil {
			return nil, err
		}

		return r, nil
	}

	var err error
	s.infra.redis.session, err = connect(s.c.Redis.Session.Addrs, s.c.Redis.Session.Pass)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.infra.redis.reset, err = connect(s.c.Redis.Reset.Addrs, s.c.Redis.Reset.Pass)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	return nil
}

func (s *Server) initPostgres() (err error) {
	connect := func(addr, user, pass, name string) (*pgxpool.Pool, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cc, err := pgxpool.ParseConfig(fmt.Sprintf("postgres://%s:%s@%s/%s", user, pass, addr, name))
		if err != nil {
			return nil, err
		}

		db, err := pgxpool.NewWithConfig(ctx, cc)
		if err != nil {
			return nil, err
		}

		if err := db.Ping(ctx); err != nil {
			return nil, err
		}

		return db, nil
	}

	s.infra.postgres.account, err = connect(s.c.Postgres.Account.Addr, s.c.Postgres.Account.User, s.c.Postgres.Account.Pass, s.c.Postgres.Account.Name)
	if err != nil {
		return fmt.Errorf("account: %w", err)
	}

	s.infra.postgres.result, err = connect(s.c.Postgres.Result.Addr, s.c.Postgres.Result.User, s.c.Postgres.Result.Pass, s.c.Postgres.Result.Name)
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}

	return nil
}

func (s *Server) initService() {
	s.service.tokens = account.NewTokenSigner(s.c.Auth.TokenSecret, 0)

	s.service.account = account.NewService(account.Config{
		DB:          s.infra.postgres.account,
		Redis:       s.infra.redis.reset,
		EventBus:    s.eb,
		Tokens:      s.service.tokens,
		AdminEmail:  s.c.Auth.AdminEmail,
		ResetPrefix: s.c.Redis.Reset.Prefix,
	})

	s.service.cohorts = cohort.NewService(cohort.Config{
		DB: s.infra.postgres.account,
	})

	s.service.recommend = recommend.NewService(recommend.Config{
		Catalog:  recommend.DefaultCatalog(),
		EventBus: s.eb,
	})

	s.service.challenge = challenge.NewService(challenge.Config{
		Bank: challenge.DefaultBank(),
		Sessions: challenge.NewStore(challenge.StoreConfig{
			Redis:  s.infra.redis.session,
			Prefix: s.c.Redis.Session.Prefix,
		}),
		EventBus: s.eb,
	})

	s.service.results = result.NewService(result.Config{
		DB:       s.infra.postgres.result,
		EventBus: s.eb,
	})

	s.service.study = study.NewService(study.Config{
		Catalog: study.DefaultCatalog(),
	})

	s.service.mail = mail.NewService(mail.Config{
		Mailer: mail.NewSMTPMailer(mail.SMTPConfig{
			Addr: s.c.SMTP.Addr,
			From: s.c.SMTP.From,
			User: s.c.SMTP.User,
			Pass: s.c.SMTP.Pass,
		}),
		EventBus:     s.eb,
		ResetBaseURL: s.c.SMTP.ResetBaseURL,
	})
}

func (s *Server) initAPI() {
	e := gin.New()
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
	pprof.Register(e, "/debug/pprof")
	e.Use(gin.Recovery(), telemetry.HTTPMetrics())

	api.New(api.Config{
		Engine:    e,
		Account:   s.service.account,
		Cohorts:   s.service.cohorts,
		Recommend: s.service.recommend,
		Challenge: s.service.challenge,
		Results:   s.service.results,
		Study:     s.service.study,
		Tokens:    s.service.tokens,
	})

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.c.HTTP.Port),
		Handler:           e,
		ReadHeaderTimeout: 60 * time.Second,
	}
}

func (s *Server) Start() {
	ctx := context.TODO()

	var eg errgroup.Group
	eg.Go(func() error {
		slog.InfoContext(ctx, fmt.Sprintf("server: HTTP listening on port %d", s.c.HTTP.Port))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "server: shutdown with error", "error", err)
	}
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "server: shutdown HTTP failed", "error", err)
	}

	s.eb.Stop()

	slog.InfoContext(ctx, "server: shutdown completed")
}
