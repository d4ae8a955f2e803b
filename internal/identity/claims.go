package identity

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// accountFromIdToken reads the display claims from an id_token. The signature is not verified; the token was
// received directly from the token endpoint and is only used for display.
func accountFromIdToken(idToken string) (*Account, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse id_token")
	}

	str := func(k string) string {
		if v, ok := claims[k].(string); ok {
			return v
		}
		return ""
	}

	a := &Account{
		Name:     str("name"),
		Username: str("preferred_username"),
		TenantId: str("tid"),
	}

	if a.Username == "" {
		a.Username = str("email")
	}

	return a, nil
}
