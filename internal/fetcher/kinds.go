package fetcher

import (
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/identity"
)

func withKind(cfg Config, kind graph.Kind) Config {
	cfg.Kind = kind
	return cfg
}

func NewSites(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.Site] {
	return New[*graph.Site](withKind(cfg, graph.KindSites), client, auth)
}

// NewDrives lists every drive the user can see, falling back to the user's own drives when the tenant-wide
// listing is refused.
func NewDrives(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.Drive] {
	return New[*graph.Drive](withKind(cfg, graph.KindDrives), client, auth)
}

func NewMyDrives(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.Drive] {
	return New[*graph.Drive](withKind(cfg, graph.KindMyDrives), client, auth)
}

func NewSiteDrives(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.Drive] {
	return New[*graph.Drive](withKind(cfg, graph.KindSiteDrives), client, auth)
}

func NewContainers(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.Container] {
	return New[*graph.Container](withKind(cfg, graph.KindContainers), client, auth)
}

func NewContainerTypes(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.ContainerType] {
	return New[*graph.ContainerType](withKind(cfg, graph.KindContainerTypes), client, auth)
}

func NewContainerPermissions(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.Permission] {
	return New[*graph.Permission](withKind(cfg, graph.KindContainerPermissions), client, auth)
}

func NewUsers(cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[*graph.User] {
	return New[*graph.User](withKind(cfg, graph.KindUsers), client, auth)
}

// NewResource builds the fetcher for any kind behind the Resource interface.
func NewResource(cfg Config, client graph.Client, auth identity.Authenticator) (Resource, error) {
	switch cfg.Kind {
	case graph.KindSites:
		return Erase(NewSites(cfg, client, auth)), nil
	case graph.KindDrives:
		return Erase(NewDrives(cfg, client, auth)), nil
	case graph.KindMyDrives:
		return Erase(NewMyDrives(cfg, client, auth)), nil
	case graph.KindSiteDrives:
		return Erase(NewSiteDrives(cfg, client, auth)), nil
	case graph.KindContainers:
		return Erase(NewContainers(cfg, client, auth)), nil
	case graph.KindContainerTypes:
		return Erase(NewContainerTypes(cfg, client, auth)), nil
	case graph.KindContainerPermissions:
		return Erase(NewContainerPermissions(cfg, client, auth)), nil
	case graph.KindUsers:
		return Erase(NewUsers(cfg, client, auth)), nil
	default:
		return nil, errors.Errorf("unknown resource kind '%s'", cfg.Kind)
	}
}
