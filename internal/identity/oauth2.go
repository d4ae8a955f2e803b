package identity

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/apctx"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/apredis"
	"github.com/rmorlok/graphbrowser/internal/httpf"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// Scopes always requested so the identity platform returns an id_token and a refresh token.
var baseScopes = []string{"openid", "profile", "offline_access"}

type oauth2Authenticator struct {
	cfg    *sconfig.Identity
	conf   *oauth2.Config
	states *loginStateStore
	httpf  httpf.F
	logger *slog.Logger

	mu      sync.Mutex
	source  oauth2.TokenSource
	account *Account
	expiry  time.Time
}

func endpointFor(cfg *sconfig.Identity) oauth2.Endpoint {
	if cfg.AuthorityUrl == "" {
		return microsoft.AzureADEndpoint(cfg.GetTenantId())
	}

	base := strings.TrimSuffix(cfg.AuthorityUrl, "/") + "/" + cfg.GetTenantId()
	return oauth2.Endpoint{
		AuthURL:   base + "/oauth2/v2.0/authorize",
		TokenURL:  base + "/oauth2/v2.0/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

func mergeScopes(lists ...[]string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, l := range lists {
		for _, s := range l {
			if s == "" || seen[strings.ToLower(s)] {
				continue
			}
			seen[strings.ToLower(s)] = true
			result = append(result, s)
		}
	}

	return result
}

// NewOAuth2 builds an authenticator that signs the user in with the authorization code flow and PKCE.
func NewOAuth2(
	ctx context.Context,
	cfg *sconfig.Identity,
	r apredis.Client,
	h httpf.F,
	logger *slog.Logger,
) (Authenticator, error) {
	if cfg == nil {
		return nil, errors.New("identity configuration is required")
	}

	secret := ""
	if cfg.ClientSecret != nil && cfg.ClientSecret.HasValue(ctx) {
		var err error
		secret, err = cfg.ClientSecret.GetValue(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read client secret")
		}
	}

	return &oauth2Authenticator{
		cfg: cfg,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientId,
			ClientSecret: secret,
			Endpoint:     endpointFor(cfg),
			RedirectURL:  cfg.RedirectUrl,
			Scopes:       mergeScopes(baseScopes, cfg.GetScopes()),
		},
		states: &loginStateStore{
			r:   r,
			ttl: cfg.GetLoginStateTtl(),
		},
		httpf:  h.ForRequestType(httpf.RequestTypeIdentity),
		logger: aplog.NewBuilder(logger).WithComponent("identity").Build(),
	}, nil
}

func (o *oauth2Authenticator) configFor(extraScopes []string) *oauth2.Config {
	if len(extraScopes) == 0 {
		return o.conf
	}

	return &oauth2.Config{
		ClientID:     o.conf.ClientID,
		ClientSecret: o.conf.ClientSecret,
		Endpoint:     o.conf.Endpoint,
		RedirectURL:  o.conf.RedirectURL,
		Scopes:       mergeScopes(o.conf.Scopes, extraScopes),
	}
}

// tokenContext carries the factory's http client so token calls go through the same middlewares as Graph calls.
func (o *oauth2Authenticator) tokenContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, o.httpf.NewHttpClient())
}

func (o *oauth2Authenticator) BeginInteractive(ctx context.Context, req InteractiveRequest) (string, error) {
	ls := &loginState{
		Id:           apctx.GetUuidGenerator(ctx).New(),
		Verifier:     oauth2.GenerateVerifier(),
		ReturnTo:     req.ReturnTo,
		ForceConsent: req.ForceConsent,
		Scopes:       req.Scopes,
	}

	if err := o.states.save(ctx, ls); err != nil {
		return "", err
	}

	opts := []oauth2.AuthCodeOption{
		oauth2.S256ChallengeOption(ls.Verifier),
	}

	if req.ForceConsent {
		opts = append(opts, oauth2.SetAuthURLParam("prompt", "consent"))
	} else {
		opts = append(opts, oauth2.SetAuthURLParam("prompt", "select_account"))
	}

	o.logger.DebugContext(ctx, "starting interactive sign in",
		"state_id", ls.Id,
		"force_consent", req.ForceConsent,
	)

	return o.configFor(req.Scopes).AuthCodeURL(ls.Id.String(), opts...), nil
}

func (o *oauth2Authenticator) CompleteInteractive(ctx context.Context, state, code string) (string, error) {
	ls, err := o.states.take(ctx, state)
	if err != nil {
		return "", err
	}

	if code == "" {
		return "", errors.New("authorization code is missing")
	}

	conf := o.configFor(ls.Scopes)
	tok, err := conf.Exchange(o.tokenContext(ctx), code, oauth2.VerifierOption(ls.Verifier))
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange authorization code")
	}

	var account *Account
	if idToken, ok := tok.Extra("id_token").(string); ok && idToken != "" {
		account, err = accountFromIdToken(idToken)
		if err != nil {
			o.logger.WarnContext(ctx, "could not read account from id_token", "error", err)
		}
	}

	// The token source outlives the request so it must not carry the request's context
	source := conf.TokenSource(o.tokenContext(context.Background()), tok)

	o.mu.Lock()
	o.source = source
	o.account = account
	o.expiry = tok.Expiry
	o.mu.Unlock()

	o.logger.InfoContext(ctx, "signed in", "state_id", ls.Id)

	return ls.ReturnTo, nil
}

func (o *oauth2Authenticator) GetCredential(ctx context.Context) (Credential, error) {
	o.mu.Lock()
	source := o.source
	o.mu.Unlock()

	if source == nil {
		return Credential{}, ErrNotSignedIn
	}

	tok, err := source.Token()
	if err != nil {
		return Credential{}, errors.Wrap(err, "failed to refresh access token")
	}

	o.mu.Lock()
	o.expiry = tok.Expiry
	o.mu.Unlock()

	return CredentialFromToken(tok), nil
}

func (o *oauth2Authenticator) SignOut(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.source = nil
	o.account = nil
	o.expiry = time.Time{}

	o.logger.InfoContext(ctx, "signed out")
	return nil
}

func (o *oauth2Authenticator) Status(ctx context.Context) Status {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := Status{
		Type:     sconfig.IdentityTypeOAuth2,
		SignedIn: o.source != nil,
		Account:  o.account,
	}

	if s.SignedIn && !o.expiry.IsZero() {
		e := o.expiry
		s.Expiry = &e
	}

	return s
}

var _ Authenticator = (*oauth2Authenticator)(nil)
