package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	mockH "github.com/rmorlok/graphbrowser/internal/httpf/mock"
	"github.com/rmorlok/graphbrowser/internal/identity"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
	"github.com/stretchr/testify/require"
	genmock "gopkg.in/h2non/gentleman-mock.v2"
	"gopkg.in/h2non/gock.v1"
)

const graphHost = "https://graph.microsoft.com"

func TestClientFetchPage(t *testing.T) {
	ctx := context.Background()
	cred := identity.Credential{
		AccessToken: "tok",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour),
	}

	setup := func(t *testing.T) Client {
		ctrl := gomock.NewController(t)
		h := mockH.NewFactoryWithMockingClient(ctrl)
		return NewClient(&sconfig.Graph{}, h, aplog.NewNoopLogger())
	}

	t.Run("first page of sites", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/v1.0/sites").
			MatchHeader("Authorization", "^Bearer tok$").
			MatchParam("$top", "^25$").
			MatchParam("$select", "^id,displayName").
			Reply(200).
			JSON(map[string]interface{}{
				"value": []map[string]interface{}{
					{"id": "s1", "displayName": "Finance"},
					{"id": "s2", "displayName": "HR"},
				},
				"@odata.nextLink": graphHost + "/v1.0/sites?$skiptoken=abc",
			})

		q := NewQuery(KindSites)
		q.PageSize = 25

		raw, err := c.FetchPage(ctx, q, "", cred)
		require.NoError(t, err)
		require.Len(t, raw.Items, 2)
		require.Equal(t, graphHost+"/v1.0/sites?$skiptoken=abc", raw.NextLink)

		page, err := DecodePage[Site](raw)
		require.NoError(t, err)
		require.True(t, page.HasMore)
		require.Equal(t, "Finance", page.Results[0].Label())
		require.True(t, gock.IsDone())
	})

	t.Run("cursor is replayed verbatim", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/v1.0/sites").
			MatchParam("$skiptoken", "^abc$").
			Reply(200).
			JSON(map[string]interface{}{
				"value": []map[string]interface{}{{"id": "s3"}},
			})

		q := NewQuery(KindSites)
		q.SearchTerm = "ignored"

		raw, err := c.FetchPage(ctx, q, graphHost+"/v1.0/sites?$skiptoken=abc", cred)
		require.NoError(t, err)
		require.Len(t, raw.Items, 1)
		require.Equal(t, "", raw.NextLink)
		require.True(t, gock.IsDone())
	})

	t.Run("containers use beta and the container type filter", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/beta/storage/fileStorage/containers").
			MatchParam("$filter", "^containerTypeId eq 'ct-1'$").
			Reply(200).
			JSON(map[string]interface{}{
				"value": []map[string]interface{}{
					{"id": "c1", "displayName": "Contracts", "containerTypeId": "ct-1"},
				},
			})

		q := NewQuery(KindContainers)
		q.Parameter = "ct-1"

		raw, err := c.FetchPage(ctx, q, "", cred)
		require.NoError(t, err)

		page, err := DecodePage[Container](raw)
		require.NoError(t, err)
		require.Equal(t, "Contracts", page.Results[0].DisplayName)
		require.False(t, page.HasMore)
	})

	t.Run("containers without a filter never reach the network", func(t *testing.T) {
		c := setup(t)

		_, err := c.FetchPage(ctx, NewQuery(KindContainers), "", cred)
		require.Error(t, err)
		require.True(t, IsKind(err, ErrorKindMissingRequiredFilter))

		var ge *Error
		require.True(t, errors.As(err, &ge))
		require.Equal(t, RemedyProvideFilter, ge.Remedy)
		require.True(t, gock.IsDone())
	})

	t.Run("site drives substitute the site id", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/v1.0/sites/site-42/drives").
			Reply(200).
			JSON(map[string]interface{}{"value": []interface{}{}})

		q := NewQuery(KindSiteDrives)
		q.Parameter = "site-42"

		raw, err := c.FetchPage(ctx, q, "", cred)
		require.NoError(t, err)
		require.Empty(t, raw.Items)
		require.True(t, gock.IsDone())
	})

	t.Run("site search uses the search parameter", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/v1.0/sites").
			MatchParam("search", "^finance$").
			Reply(200).
			JSON(map[string]interface{}{"value": []interface{}{}})

		q := NewQuery(KindSites)
		q.SearchTerm = " finance "

		_, err := c.FetchPage(ctx, q, "", cred)
		require.NoError(t, err)
		require.True(t, gock.IsDone())
	})

	t.Run("user search uses directory search with eventual consistency", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/v1.0/users").
			MatchHeader("ConsistencyLevel", "^eventual$").
			MatchParam("$search", `^"displayName:ada" OR "mail:ada"$`).
			Reply(200).
			JSON(map[string]interface{}{
				"value": []map[string]interface{}{{"id": "u1", "displayName": "Ada Lovelace"}},
			})

		q := NewQuery(KindUsers)
		q.SearchTerm = "ada"

		raw, err := c.FetchPage(ctx, q, "", cred)
		require.NoError(t, err)
		require.Len(t, raw.Items, 1)
		require.True(t, gock.IsDone())
	})

	t.Run("missing credential is unauthorized", func(t *testing.T) {
		c := setup(t)

		_, err := c.FetchPage(ctx, NewQuery(KindSites), "", identity.Credential{})
		require.True(t, IsKind(err, ErrorKindUnauthorized))
	})

	t.Run("error responses are classified", func(t *testing.T) {
		tests := []struct {
			name   string
			status int
			body   map[string]interface{}
			kind   ErrorKind
			remedy Remedy
			detail string
		}{
			{
				name:   "unauthorized",
				status: 401,
				body:   graphErrorBody("InvalidAuthenticationToken", "Access token has expired or is not yet valid."),
				kind:   ErrorKindUnauthorized,
				remedy: RemedySignIn,
				detail: "Access token has expired or is not yet valid.",
			},
			{
				name:   "forbidden with permission hint",
				status: 403,
				body:   graphErrorBody("Authorization_RequestDenied", "Insufficient privileges to complete the operation."),
				kind:   ErrorKindForbidden,
				remedy: RemedyConsent,
			},
			{
				name:   "forbidden without hint",
				status: 403,
				body:   graphErrorBody("generalException", "Tenant is locked"),
				kind:   ErrorKindForbidden,
			},
			{
				name:   "bad request keeps the server message",
				status: 400,
				body:   graphErrorBody("BadRequest", "Invalid filter clause"),
				kind:   ErrorKindBadRequest,
				detail: "Invalid filter clause",
			},
			{
				name:   "not found",
				status: 404,
				body:   graphErrorBody("itemNotFound", "The resource could not be found."),
				kind:   ErrorKindNotFoundOrUnavailable,
			},
			{
				name:   "server error",
				status: 503,
				body:   graphErrorBody("serviceNotAvailable", "Service unavailable"),
				kind:   ErrorKindUnknown,
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				c := setup(t)

				genmock.
					New(graphHost).
					Get("/v1.0/users").
					Reply(test.status).
					JSON(test.body)

				_, err := c.FetchPage(ctx, NewQuery(KindUsers), "", cred)
				require.Error(t, err)

				var ge *Error
				require.True(t, errors.As(err, &ge))
				require.Equal(t, test.kind, ge.Kind)
				require.Equal(t, test.status, ge.Status)
				require.Equal(t, test.remedy, ge.Remedy)
				if test.detail != "" {
					require.Equal(t, test.detail, ge.Detail)
				}
			})
		}
	})

	t.Run("malformed payload is unknown", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/v1.0/users").
			Reply(200).
			BodyString("<html>not json</html>")

		_, err := c.FetchPage(ctx, NewQuery(KindUsers), "", cred)
		require.True(t, IsKind(err, ErrorKindUnknown))
	})

	t.Run("transport failure is unknown", func(t *testing.T) {
		c := setup(t)

		genmock.
			New(graphHost).
			Get("/v1.0/users").
			ReplyError(errors.New("connection reset by peer"))

		_, err := c.FetchPage(ctx, NewQuery(KindUsers), "", cred)
		require.True(t, IsKind(err, ErrorKindUnknown))
	})

	t.Run("transport failure with status-like digits is unknown", func(t *testing.T) {
		for _, msg := range []string{
			"dial tcp 127.0.0.1:40013: connect: connection refused",
			"dial tcp 10.0.0.1:401: i/o timeout",
			"proxyconnect tcp: 403 from upstream proxy",
		} {
			t.Run(msg, func(t *testing.T) {
				c := setup(t)

				genmock.
					New(graphHost).
					Get("/v1.0/users").
					ReplyError(errors.New(msg))

				_, err := c.FetchPage(ctx, NewQuery(KindUsers), "", cred)
				require.True(t, IsKind(err, ErrorKindUnknown))

				var ge *Error
				require.True(t, errors.As(err, &ge))
				require.Contains(t, ge.Detail, msg)
				require.Equal(t, 0, ge.Status)
			})
		}
	})
}

func graphErrorBody(code, message string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}
}
