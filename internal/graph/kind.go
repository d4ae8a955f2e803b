package graph

import (
	"fmt"
	"strings"
)

// Kind identifies a browsable Graph collection.
type Kind string

const (
	KindSites                Kind = "sites"
	KindDrives               Kind = "drives"
	KindMyDrives             Kind = "my_drives"
	KindSiteDrives           Kind = "site_drives"
	KindContainers           Kind = "containers"
	KindContainerTypes       Kind = "container_types"
	KindContainerPermissions Kind = "container_permissions"
	KindUsers                Kind = "users"
)

// AllKinds lists every kind in the order they are presented to the user.
var AllKinds = []Kind{
	KindSites,
	KindDrives,
	KindMyDrives,
	KindSiteDrives,
	KindContainers,
	KindContainerTypes,
	KindContainerPermissions,
	KindUsers,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	for _, v := range AllKinds {
		if v == k {
			return true
		}
	}

	return false
}

// ParseKind converts a string to a kind. Hyphens are accepted in place of underscores so kinds can be used
// directly as URL segments.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown resource kind '%s'", s)
	}

	return k, nil
}
