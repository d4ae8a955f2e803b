package identity

import (
	"context"
	"time"

	"github.com/pkg/errors"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

var (
	// ErrNotSignedIn is returned by GetCredential when no user has completed sign in.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrInteractiveNotSupported is returned by authenticators that cannot prompt the user.
	ErrInteractiveNotSupported = errors.New("interactive sign in is not supported by this identity type")

	ErrInvalidState = errors.New("login state is invalid or has expired")
)

// InteractiveRequest starts a sign in round trip.
type InteractiveRequest struct {
	// ForceConsent shows the consent prompt even if the user has already consented.
	ForceConsent bool

	// Scopes are requested in addition to the configured scopes.
	Scopes []string

	// ReturnTo is where the browser is sent once the round trip completes.
	ReturnTo string
}

type Account struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	TenantId string `json:"tenant_id,omitempty"`
}

type Status struct {
	Type     sconfig.IdentityType `json:"type"`
	SignedIn bool                 `json:"signed_in"`
	Account  *Account             `json:"account,omitempty"`
	Expiry   *time.Time           `json:"expiry,omitempty"`
}

//go:generate mockgen -source=./interface.go -destination=./mock/authenticator.go -package=mock
type Authenticator interface {
	// GetCredential returns a credential that is valid now, refreshing it if needed.
	GetCredential(ctx context.Context) (Credential, error)

	SignOut(ctx context.Context) error

	// BeginInteractive returns the URL the user must visit to sign in or grant consent.
	BeginInteractive(ctx context.Context, req InteractiveRequest) (string, error)

	// CompleteInteractive finishes a round trip started by BeginInteractive and returns the ReturnTo of the
	// original request.
	CompleteInteractive(ctx context.Context, state, code string) (string, error)

	Status(ctx context.Context) Status
}
