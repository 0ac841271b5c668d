package challenge

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 30 * time.Minute

// Store keeps the answer key of a built session between the request that
// rendered the test and the request that grades it. Keys expire so an
// abandoned test leaves nothing behind.
type Store struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

type StoreConfig struct {
	Redis  redis.UniversalClient
	Prefix string
	TTL    time.Duration
}

func NewStore(c StoreConfig) *Store {
	ttl := c.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &Store{
		redis:  c.Redis,
		prefix: c.Prefix,
		ttl:    ttl,
	}
}

type sessionRecord struct {
	Cohort    string            `json:"cohort"`
	AnswerKey map[string]string `json:"answer_key"`
}

func (st *Store) Save(ctx context.Context, sessionID string, r sessionRecord) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	if err := st.redis.Set(ctx, st.sessionKey(sessionID), b, st.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Load returns the stored record, or ok=false when the session was never
// built or has expired.
func (st *Store) Load(ctx context.Context, sessionID string) (sessionRecord, bool, error) {
	b, err := st.redis.Get(ctx, st.sessionKey(sessionID)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return sessionRecord{}, false, nil
	}
	if err != nil {
		return sessionRecord{}, false, fmt.Errorf("load session: %w", err)
	}

	var r sessionRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return sessionRecord{}, false, fmt.Errorf("unmarshal session record: %w", err)
	}

	return r, true, nil
}

func (st *Store) sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:challenge:%s", st.prefix, sessionID)
}
