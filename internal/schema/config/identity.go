package config

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rmorlok/graphbrowser/internal/schema/common"
)

type IdentityType string

const (
	IdentityTypeOAuth2 IdentityType = "oauth2"
	IdentityTypeStatic IdentityType = "static"
)

const (
	DefaultTenantId      = "common"
	DefaultLoginStateTtl = 15 * time.Minute
)

// DefaultScopes are the delegated Graph permissions needed to browse every resource kind.
var DefaultScopes = []string{
	"User.Read",
	"User.ReadBasic.All",
	"Sites.Read.All",
	"Files.Read.All",
	"FileStorageContainer.Selected",
}

// Identity configures how the signed in user's credential is obtained.
type Identity struct {
	Type          IdentityType          `json:"type" yaml:"type"`
	TenantId      string                `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	ClientId      string                `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	ClientSecret  *common.StringValue   `json:"-" yaml:"client_secret,omitempty"`
	RedirectUrl   string                `json:"redirect_url,omitempty" yaml:"redirect_url,omitempty"`
	Scopes        []string              `json:"scopes,omitempty" yaml:"scopes,omitempty"`
	LoginStateTtl *common.HumanDuration `json:"login_state_ttl,omitempty" yaml:"login_state_ttl,omitempty"`

	// AuthorityUrl overrides the identity platform host. Used for sovereign clouds and tests.
	AuthorityUrl string `json:"authority_url,omitempty" yaml:"authority_url,omitempty"`

	// Token is the bearer token used by the static identity type.
	Token *common.StringValue `json:"-" yaml:"token,omitempty"`
}

func (i *Identity) GetType() IdentityType {
	if i == nil || i.Type == "" {
		return IdentityTypeOAuth2
	}
	return i.Type
}

func (i *Identity) GetTenantId() string {
	if i == nil || i.TenantId == "" {
		return DefaultTenantId
	}
	return i.TenantId
}

func (i *Identity) GetScopes() []string {
	if i == nil || len(i.Scopes) == 0 {
		return DefaultScopes
	}
	return i.Scopes
}

func (i *Identity) GetLoginStateTtl() time.Duration {
	if i == nil {
		return DefaultLoginStateTtl
	}
	return i.LoginStateTtl.GetOrDefault(DefaultLoginStateTtl)
}

func (i *Identity) Validate(vc *common.ValidationContext) error {
	result := &multierror.Error{}

	switch i.GetType() {
	case IdentityTypeOAuth2:
		if i.ClientId == "" {
			result = multierror.Append(result, vc.NewErrorForField("client_id", "client_id is required for oauth2 identity"))
		}
		if i.RedirectUrl == "" {
			result = multierror.Append(result, vc.NewErrorForField("redirect_url", "redirect_url is required for oauth2 identity"))
		}
	case IdentityTypeStatic:
		if i.Token == nil {
			result = multierror.Append(result, vc.NewErrorForField("token", "token is required for static identity"))
		}
	default:
		result = multierror.Append(result, vc.NewErrorfForField("type", "unknown identity type '%s'", i.Type))
	}

	for idx, s := range i.Scopes {
		if s == "" {
			result = multierror.Append(result, vc.PushField("scopes").PushIndex(idx).NewError("scope must not be empty"))
		}
	}

	return result.ErrorOrNil()
}
