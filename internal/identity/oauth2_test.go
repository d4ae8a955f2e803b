package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rmorlok/graphbrowser/internal/apctx"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/apredis"
	"github.com/rmorlok/graphbrowser/internal/httpf"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
	"github.com/stretchr/testify/require"
)

type tokenServer struct {
	srv      *httptest.Server
	lastForm url.Values
}

func newTokenServer(t *testing.T) *tokenServer {
	ts := &tokenServer{}

	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name":               "Ada Lovelace",
		"preferred_username": "ada@contoso.com",
		"tid":                "tenant-1",
	}).SignedString([]byte("not-verified"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/tenant-1/oauth2/v2.0/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		ts.lastForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access-1",
			"token_type":    "Bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-1",
			"id_token":      idToken,
		})
	})

	ts.srv = httptest.NewServer(mux)
	t.Cleanup(ts.srv.Close)
	return ts
}

func TestOAuth2Authenticator(t *testing.T) {
	stateId := uuid.MustParse("6f1a3c52-8d0e-4d7b-9a59-2f1c2a7c9f10")

	setup := func(t *testing.T) (Authenticator, *tokenServer, func(time.Duration)) {
		ts := newTokenServer(t)
		r, mr := apredis.MustNewTestRedis(t)

		a, err := NewOAuth2(context.Background(), &sconfig.Identity{
			Type:         sconfig.IdentityTypeOAuth2,
			TenantId:     "tenant-1",
			ClientId:     "client-1",
			RedirectUrl:  "http://localhost:8080/api/v1/auth/callback",
			AuthorityUrl: ts.srv.URL,
		}, r, httpf.CreateFactory(5*time.Second, aplog.NewNoopLogger()), aplog.NewNoopLogger())
		require.NoError(t, err)

		return a, ts, mr.FastForward
	}

	ctx := apctx.WithFixedUuidGenerator(context.Background(), stateId)

	t.Run("not signed in", func(t *testing.T) {
		a, _, _ := setup(t)

		_, err := a.GetCredential(ctx)
		require.ErrorIs(t, err, ErrNotSignedIn)
		require.False(t, a.Status(ctx).SignedIn)
	})

	t.Run("full round trip", func(t *testing.T) {
		a, ts, _ := setup(t)

		authUrl, err := a.BeginInteractive(ctx, InteractiveRequest{
			ForceConsent: true,
			Scopes:       []string{"FileStorageContainer.Selected"},
			ReturnTo:     "/containers",
		})
		require.NoError(t, err)

		u, err := url.Parse(authUrl)
		require.NoError(t, err)
		require.Equal(t, "/tenant-1/oauth2/v2.0/authorize", u.Path)
		require.Equal(t, stateId.String(), u.Query().Get("state"))
		require.Equal(t, "consent", u.Query().Get("prompt"))
		require.Equal(t, "S256", u.Query().Get("code_challenge_method"))
		require.NotEmpty(t, u.Query().Get("code_challenge"))
		require.Contains(t, u.Query().Get("scope"), "offline_access")

		returnTo, err := a.CompleteInteractive(ctx, stateId.String(), "code-1")
		require.NoError(t, err)
		require.Equal(t, "/containers", returnTo)
		require.Equal(t, "authorization_code", ts.lastForm.Get("grant_type"))
		require.Equal(t, "code-1", ts.lastForm.Get("code"))
		require.NotEmpty(t, ts.lastForm.Get("code_verifier"))

		cred, err := a.GetCredential(ctx)
		require.NoError(t, err)
		require.Equal(t, "access-1", cred.AccessToken)
		require.Equal(t, "Bearer access-1", cred.AuthorizationHeader())

		status := a.Status(ctx)
		require.True(t, status.SignedIn)
		require.NotNil(t, status.Expiry)
		require.Equal(t, &Account{Name: "Ada Lovelace", Username: "ada@contoso.com", TenantId: "tenant-1"}, status.Account)

		require.NoError(t, a.SignOut(ctx))
		_, err = a.GetCredential(ctx)
		require.ErrorIs(t, err, ErrNotSignedIn)
	})

	t.Run("state is single use", func(t *testing.T) {
		a, _, _ := setup(t)

		_, err := a.BeginInteractive(ctx, InteractiveRequest{ReturnTo: "/"})
		require.NoError(t, err)

		_, err = a.CompleteInteractive(ctx, stateId.String(), "code-1")
		require.NoError(t, err)

		_, err = a.CompleteInteractive(ctx, stateId.String(), "code-1")
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("state expires", func(t *testing.T) {
		a, _, fastForward := setup(t)

		authUrl, err := a.BeginInteractive(ctx, InteractiveRequest{})
		require.NoError(t, err)
		require.Contains(t, authUrl, "prompt=select_account")

		fastForward(sconfig.DefaultLoginStateTtl + time.Second)

		_, err = a.CompleteInteractive(ctx, stateId.String(), "code-1")
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("garbage state", func(t *testing.T) {
		a, _, _ := setup(t)

		_, err := a.CompleteInteractive(ctx, "../../etc", "code-1")
		require.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestMergeScopes(t *testing.T) {
	require.Equal(t,
		[]string{"openid", "User.Read", "Sites.Read.All"},
		mergeScopes([]string{"openid", "User.Read"}, []string{"user.read", "", "Sites.Read.All"}),
	)
}

func TestEndpointFor(t *testing.T) {
	e := endpointFor(&sconfig.Identity{})
	require.Equal(t, "https://login.microsoftonline.com/common/oauth2/v2.0/authorize", e.AuthURL)

	e = endpointFor(&sconfig.Identity{TenantId: "t", AuthorityUrl: "https://login.example.com/"})
	require.Equal(t, "https://login.example.com/t/oauth2/v2.0/token", e.TokenURL)
}
