package httpf

type RequestType string

const (
	// RequestTypeGraph is a call to the Microsoft Graph API on behalf of the signed in user
	RequestTypeGraph RequestType = "graph"

	// RequestTypeIdentity is a call to the identity platform, e.g. the token endpoint
	RequestTypeIdentity RequestType = "identity"
)

// RequestInfo describes the purpose of the requests a client will make. Middlewares use it to label what they
// record.
type RequestInfo struct {
	Type         RequestType
	ResourceKind string
}
