package identity

import (
	"context"
	"encoding"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rmorlok/graphbrowser/internal/apctx"
	"github.com/rmorlok/graphbrowser/internal/apredis"
)

type loginState struct {
	Id           uuid.UUID `json:"id"`
	Verifier     string    `json:"verifier"`
	ReturnTo     string    `json:"return_to"`
	ForceConsent bool      `json:"force_consent"`
	Scopes       []string  `json:"scopes,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *loginState) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

func (s *loginState) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, s)
}

var _ encoding.BinaryMarshaler = (*loginState)(nil)
var _ encoding.BinaryUnmarshaler = (*loginState)(nil)

func (s *loginState) IsValid() bool {
	return s.Id != uuid.Nil && s.Verifier != "" && !s.ExpiresAt.IsZero()
}

func getLoginStateRedisKey(u uuid.UUID) string {
	// Keyed by a parsed UUID so the raw state value from the callback URL is never used as a key
	return fmt.Sprintf("login:state:%s", u.String())
}

type loginStateStore struct {
	r   apredis.Client
	ttl time.Duration
}

func (s *loginStateStore) save(ctx context.Context, ls *loginState) error {
	ls.ExpiresAt = apctx.GetClock(ctx).Now().Add(s.ttl)

	if err := s.r.Set(ctx, getLoginStateRedisKey(ls.Id), ls, s.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to save login state %s", ls.Id)
	}

	return nil
}

// take loads and removes the state. States are single use.
func (s *loginStateStore) take(ctx context.Context, rawId string) (*loginState, error) {
	id, err := uuid.Parse(rawId)
	if err != nil {
		return nil, ErrInvalidState
	}

	result := s.r.GetDel(ctx, getLoginStateRedisKey(id))
	if result.Err() != nil {
		if errors.Is(result.Err(), redis.Nil) {
			return nil, ErrInvalidState
		}

		return nil, errors.Wrapf(result.Err(), "failed to load login state %s", id)
	}

	var ls loginState
	if err := result.Scan(&ls); err != nil {
		return nil, errors.Wrap(err, "failed to parse login state from redis value")
	}

	if !ls.IsValid() || ls.Id != id {
		return nil, ErrInvalidState
	}

	if ls.ExpiresAt.Before(apctx.GetClock(ctx).Now()) {
		return nil, ErrInvalidState
	}

	return &ls, nil
}
