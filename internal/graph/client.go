package graph

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/apctx"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/httpf"
	"github.com/rmorlok/graphbrowser/internal/identity"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

// RawPage is one page of a Graph collection before the items are decoded.
type RawPage struct {
	Items    []json.RawMessage
	NextLink string
	Count    *int64
}

type collectionResponse struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"@odata.nextLink"`
	Count    *int64            `json:"@odata.count"`
}

//go:generate mockgen -source=./client.go -destination=./mock/client.go -package=mock
type Client interface {
	// FetchPage performs exactly one GET. When cursor is set it is requested verbatim and the query is only used
	// for labeling; otherwise the request is built from the query. Failures are returned as *Error.
	FetchPage(ctx context.Context, q Query, cursor string, cred identity.Credential) (*RawPage, error)
}

type client struct {
	cfg    *sconfig.Graph
	httpf  httpf.F
	logger *slog.Logger
}

func NewClient(cfg *sconfig.Graph, h httpf.F, logger *slog.Logger) Client {
	if cfg == nil {
		cfg = &sconfig.Graph{}
	}

	return &client{
		cfg:    cfg,
		httpf:  h,
		logger: aplog.NewBuilder(logger).WithComponent("graph_client").Build(),
	}
}

func (c *client) baseUrlFor(v ApiVersion) string {
	if v == ApiVersionBeta {
		return strings.TrimSuffix(c.cfg.GetBetaBaseUrl(), "/")
	}

	return strings.TrimSuffix(c.cfg.GetBaseUrl(), "/")
}

func (c *client) FetchPage(ctx context.Context, q Query, cursor string, cred identity.Credential) (*RawPage, error) {
	if !cred.IsValid() {
		return nil, &Error{
			Kind:   ErrorKindUnauthorized,
			Detail: "no access token available",
			Remedy: RemedySignIn,
		}
	}

	req := c.httpf.
		ForRequestType(httpf.RequestTypeGraph).
		ForResourceKind(string(q.Kind)).
		New().
		UseContext(ctx).
		Request().
		Method("GET").
		SetHeader("Authorization", cred.AuthorizationHeader()).
		SetHeader("Accept", "application/json")

	if cid := apctx.CorrelationID(ctx); cid != "" {
		req.SetHeader("client-request-id", cid)
	}

	if cursor != "" {
		req.URL(cursor)
	} else {
		if err := q.Validate(); err != nil {
			return nil, err
		}

		p := q.Policy()
		req.URL(c.baseUrlFor(p.Version) + p.PathFor(strings.TrimSpace(q.Parameter)))

		if sel := q.EffectiveSelect(); len(sel) > 0 {
			req.AddQuery("$select", strings.Join(sel, ","))
		}

		if p.SupportsTop {
			req.AddQuery("$top", strconv.Itoa(q.PageSize))
		}

		if f := q.EffectiveFilter(); f != "" {
			req.AddQuery("$filter", f)
		}

		if term := strings.TrimSpace(q.SearchTerm); term != "" {
			switch p.Search {
			case SearchModeSiteQuery:
				req.AddQuery("search", term)
			case SearchModeDirectory:
				req.AddQuery("$search", directorySearch(term))
				req.SetHeader("ConsistencyLevel", "eventual")
			}
		}
	}

	resp, err := req.Send()
	if err != nil {
		c.logger.Debug("graph request failed", "resource_kind", q.Kind, "error", err)

		// No response was received, so there is no status to classify
		return nil, &Error{
			Kind:   ErrorKindUnknown,
			Detail: err.Error(),
			cause:  errors.Wrap(err, "graph request failed"),
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		ge := ClassifyResponse(resp.StatusCode, resp.Bytes())
		c.logger.Debug("graph request rejected",
			"resource_kind", q.Kind,
			"status", resp.StatusCode,
			"code", ge.Code,
			"classified", ge.Kind,
		)
		return nil, ge
	}

	var body collectionResponse
	if err := resp.JSON(&body); err != nil {
		return nil, &Error{
			Kind:   ErrorKindUnknown,
			Detail: "malformed collection response",
			Status: resp.StatusCode,
			cause:  errors.Wrap(err, "failed to parse graph response"),
		}
	}

	return &RawPage{
		Items:    body.Value,
		NextLink: body.NextLink,
		Count:    body.Count,
	}, nil
}

// directorySearch builds the directory `$search` expression over display name and mail.
func directorySearch(term string) string {
	t := strings.ReplaceAll(term, `"`, "")
	return `"displayName:` + t + `" OR "mail:` + t + `"`
}
