package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/routes"
	"github.com/stretchr/testify/require"
)

func writeState(t *testing.T, w http.ResponseWriter, s routes.ResourceStateJson) {
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(s))
}

func TestRunList(t *testing.T) {
	t.Run("loads every page", func(t *testing.T) {
		var calls []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)

			switch r.URL.Path {
			case "/api/v1/resources/sites/load":
				writeState(t, w, routes.ResourceStateJson{
					Kind:    graph.KindSites,
					HasMore: true,
					Rows:    []routes.Row{{"name": "Finance"}},
				})
			case "/api/v1/resources/sites/load-more":
				writeState(t, w, routes.ResourceStateJson{
					Kind: graph.KindSites,
					Rows: []routes.Row{{"name": "Finance"}, {"name": "HR"}},
				})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		var buf bytes.Buffer
		err := runList(resty.New(), listParams{apiUrl: srv.URL + "/", kind: graph.KindSites, all: true}, &output[routes.Row]{w: &buf})
		require.NoError(t, err)
		require.Equal(t, []string{
			"POST /api/v1/resources/sites/load",
			"POST /api/v1/resources/sites/load-more",
		}, calls)

		var rows []routes.Row
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
		require.Equal(t, []routes.Row{{"name": "Finance"}, {"name": "HR"}}, rows)
	})

	t.Run("sets parameter and searches", func(t *testing.T) {
		var bodies []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			bodies = append(bodies, r.Method+" "+r.URL.Path+" "+string(b))
			writeState(t, w, routes.ResourceStateJson{
				Kind: graph.KindContainers,
				Rows: []routes.Row{{"name": "Box"}},
			})
		}))
		defer srv.Close()

		var buf bytes.Buffer
		err := runList(resty.New(), listParams{
			apiUrl:    srv.URL,
			kind:      graph.KindContainers,
			parameter: "ct-1",
			search:    "box",
		}, &output[routes.Row]{w: &buf})
		require.NoError(t, err)
		require.Equal(t, []string{
			`PUT /api/v1/resources/containers/parameter {"value":"ct-1"}`,
			`POST /api/v1/resources/containers/search {"term":"box"}`,
		}, bodies)
	})

	t.Run("resource error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeState(t, w, routes.ResourceStateJson{
				Kind: graph.KindUsers,
				Error: &routes.ErrorJson{
					Kind:    graph.ErrorKindForbidden,
					Message: "Insufficient privileges",
					Remedy:  graph.RemedyConsent,
				},
			})
		}))
		defer srv.Close()

		var buf bytes.Buffer
		err := runList(resty.New(), listParams{apiUrl: srv.URL, kind: graph.KindUsers}, &output[routes.Row]{w: &buf})
		require.ErrorContains(t, err, "Insufficient privileges")
		require.ErrorContains(t, err, "consent?kind=users")
		require.Equal(t, "[]\n", buf.String())
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown resource kind 'lists'"}`))
		}))
		defer srv.Close()

		var buf bytes.Buffer
		err := runList(resty.New(), listParams{apiUrl: srv.URL, kind: graph.KindSites}, &output[routes.Row]{w: &buf})
		require.Error(t, err)
		require.Contains(t, buf.String(), `"status": 404`)
	})
}
