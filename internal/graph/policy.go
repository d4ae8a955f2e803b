package graph

import (
	"strings"
)

type ApiVersion string

const (
	ApiVersionV1   ApiVersion = "v1.0"
	ApiVersionBeta ApiVersion = "beta"
)

// SearchMode describes how a kind supports searching.
type SearchMode int

const (
	// SearchModeClient means Graph cannot search the collection. The fetcher filters a single page locally.
	SearchModeClient SearchMode = iota

	// SearchModeSiteQuery uses the sites `search` query parameter.
	SearchModeSiteQuery

	// SearchModeDirectory uses the directory `$search` syntax, which requires eventual consistency.
	SearchModeDirectory
)

// ParameterLocation describes where a kind's required parameter goes on the first page request.
type ParameterLocation int

const (
	ParameterNone ParameterLocation = iota

	// ParameterFilter renders the parameter as an equality `$filter`.
	ParameterFilter

	// ParameterPath substitutes the parameter for `{id}` in the path.
	ParameterPath
)

// Policy is the per-kind record that drives both the client and the fetcher.
type Policy struct {
	Kind    Kind
	Path    string
	Version ApiVersion

	// Select is the default `$select` list. Empty means Graph's default projection.
	Select []string

	// SupportsTop is false for collections that reject `$top`.
	SupportsTop bool

	Search SearchMode

	Parameter ParameterLocation

	// ParameterName is the property used in the equality filter, or a human name for path parameters.
	ParameterName string

	// Fallback is tried once when the first page of a load fails.
	Fallback Kind

	// ConsentScopes are requested when the user grants consent after a Forbidden error for this kind.
	ConsentScopes []string
}

func (p *Policy) RequiresParameter() bool {
	return p.Parameter != ParameterNone
}

func (p *Policy) SupportsRemoteSearch() bool {
	return p.Search != SearchModeClient
}

// FilterFor renders the mandatory equality filter for the given parameter value.
func (p *Policy) FilterFor(value string) string {
	if p.Parameter != ParameterFilter || value == "" {
		return ""
	}

	return p.ParameterName + " eq '" + strings.ReplaceAll(value, "'", "''") + "'"
}

// PathFor resolves the collection path, substituting the path parameter when the kind uses one.
func (p *Policy) PathFor(value string) string {
	if p.Parameter != ParameterPath {
		return p.Path
	}

	return strings.Replace(p.Path, "{id}", value, 1)
}

var policies = map[Kind]*Policy{
	KindSites: {
		Kind:          KindSites,
		Path:          "/sites",
		Version:       ApiVersionV1,
		Select:        []string{"id", "displayName", "name", "webUrl", "createdDateTime", "lastModifiedDateTime", "description"},
		SupportsTop:   true,
		Search:        SearchModeSiteQuery,
		ConsentScopes: []string{"Sites.Read.All"},
	},
	KindDrives: {
		Kind:          KindDrives,
		Path:          "/drives",
		Version:       ApiVersionV1,
		Select:        []string{"id", "name", "driveType", "webUrl", "createdDateTime", "owner", "quota"},
		SupportsTop:   true,
		Search:        SearchModeClient,
		Fallback:      KindMyDrives,
		ConsentScopes: []string{"Files.Read.All"},
	},
	KindMyDrives: {
		Kind:          KindMyDrives,
		Path:          "/me/drives",
		Version:       ApiVersionV1,
		Select:        []string{"id", "name", "driveType", "webUrl", "createdDateTime", "owner", "quota"},
		SupportsTop:   true,
		Search:        SearchModeClient,
		ConsentScopes: []string{"Files.Read.All"},
	},
	KindSiteDrives: {
		Kind:          KindSiteDrives,
		Path:          "/sites/{id}/drives",
		Version:       ApiVersionV1,
		Select:        []string{"id", "name", "driveType", "webUrl", "createdDateTime", "owner", "quota"},
		SupportsTop:   true,
		Search:        SearchModeClient,
		Parameter:     ParameterPath,
		ParameterName: "siteId",
		ConsentScopes: []string{"Sites.Read.All", "Files.Read.All"},
	},
	KindContainers: {
		Kind:          KindContainers,
		Path:          "/storage/fileStorage/containers",
		Version:       ApiVersionBeta,
		Select:        []string{"id", "displayName", "description", "containerTypeId", "createdDateTime", "status", "storageUsedInBytes"},
		SupportsTop:   true,
		Search:        SearchModeClient,
		Parameter:     ParameterFilter,
		ParameterName: "containerTypeId",
		ConsentScopes: []string{"FileStorageContainer.Selected"},
	},
	KindContainerTypes: {
		Kind:          KindContainerTypes,
		Path:          "/storage/fileStorage/containerTypes",
		Version:       ApiVersionBeta,
		SupportsTop:   false,
		Search:        SearchModeClient,
		ConsentScopes: []string{"FileStorageContainerType.Manage.All"},
	},
	KindContainerPermissions: {
		Kind:          KindContainerPermissions,
		Path:          "/storage/fileStorage/containers/{id}/permissions",
		Version:       ApiVersionBeta,
		SupportsTop:   false,
		Search:        SearchModeClient,
		Parameter:     ParameterPath,
		ParameterName: "containerId",
		ConsentScopes: []string{"FileStorageContainer.Selected"},
	},
	KindUsers: {
		Kind:          KindUsers,
		Path:          "/users",
		Version:       ApiVersionV1,
		Select:        []string{"id", "displayName", "userPrincipalName", "mail", "jobTitle", "department", "officeLocation"},
		SupportsTop:   true,
		Search:        SearchModeDirectory,
		ConsentScopes: []string{"User.ReadBasic.All"},
	},
}

// PolicyFor returns the policy for the kind. Unknown kinds return nil.
func PolicyFor(kind Kind) *Policy {
	return policies[kind]
}
