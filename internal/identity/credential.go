package identity

import (
	"time"

	"golang.org/x/oauth2"
)

// Credential is the bearer credential presented on each Graph request.
type Credential struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
}

func (c Credential) IsValid() bool {
	return c.AccessToken != ""
}

func (c Credential) AuthorizationHeader() string {
	tt := c.TokenType
	if tt == "" || tt == "bearer" {
		tt = "Bearer"
	}

	return tt + " " + c.AccessToken
}

// CredentialFromToken converts an oauth2 token. A nil token yields an invalid credential.
func CredentialFromToken(t *oauth2.Token) Credential {
	if t == nil {
		return Credential{}
	}

	return Credential{
		AccessToken: t.AccessToken,
		TokenType:   t.Type(),
		Expiry:      t.Expiry,
	}
}
