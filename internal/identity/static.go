package identity

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

// staticAuthenticator presents a fixed bearer token. Intended for development against a token copied from
// Graph Explorer or similar.
type staticAuthenticator struct {
	mu        sync.Mutex
	token     string
	signedOut bool
}

func NewStatic(ctx context.Context, cfg *sconfig.Identity) (Authenticator, error) {
	if cfg == nil || cfg.Token == nil {
		return nil, errors.New("static identity requires a token")
	}

	token, err := cfg.Token.GetValue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read static token")
	}

	return NewStaticToken(token), nil
}

func NewStaticToken(token string) Authenticator {
	return &staticAuthenticator{token: token}
}

func (s *staticAuthenticator) GetCredential(ctx context.Context) (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signedOut || s.token == "" {
		return Credential{}, ErrNotSignedIn
	}

	return Credential{
		AccessToken: s.token,
		TokenType:   "Bearer",
	}, nil
}

func (s *staticAuthenticator) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.signedOut = true
	return nil
}

func (s *staticAuthenticator) BeginInteractive(ctx context.Context, req InteractiveRequest) (string, error) {
	return "", ErrInteractiveNotSupported
}

func (s *staticAuthenticator) CompleteInteractive(ctx context.Context, state, code string) (string, error) {
	return "", ErrInteractiveNotSupported
}

func (s *staticAuthenticator) Status(ctx context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		Type:     sconfig.IdentityTypeStatic,
		SignedIn: !s.signedOut && s.token != "",
	}
}

var _ Authenticator = (*staticAuthenticator)(nil)
