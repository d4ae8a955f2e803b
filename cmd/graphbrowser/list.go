package main

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/api_common"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/routes"
	"github.com/rmorlok/graphbrowser/internal/util"
	"github.com/spf13/cobra"
)

const (
	ApiUrlEnvVar  = "GRAPHBROWSER_API_URL"
	DefaultApiUrl = "http://localhost:8080"
)

type listParams struct {
	apiUrl    string
	kind      graph.Kind
	search    string
	parameter string
	all       bool
}

// resourceError turns an error held in the resource state into a CLI error.
func resourceError(s *routes.ResourceStateJson) error {
	if s.Error == nil {
		return nil
	}

	msg := fmt.Sprintf("%s: %s", s.Error.Kind, s.Error.Message)
	switch s.Error.Remedy {
	case graph.RemedySignIn:
		msg += " (sign in at /api/v1/auth/login)"
	case graph.RemedyConsent:
		msg += fmt.Sprintf(" (grant consent at /api/v1/auth/consent?kind=%s)", s.Kind)
	case graph.RemedyProvideFilter:
		msg += " (pass --parameter)"
	}

	return errors.New(msg)
}

// runList drives one resource on a running browser service and emits its rows. With all set, pages are
// requested until the resource reports there are no more.
func runList(client *resty.Client, p listParams, out Output[routes.Row]) error {
	base := strings.TrimRight(p.apiUrl, "/") + "/api/v1/resources/" + string(p.kind)

	var state routes.ResourceStateJson
	var apiErr api_common.ErrorResponse

	if p.parameter != "" {
		resp, err := client.R().
			SetBody(routes.ParameterRequestJson{Value: p.parameter}).
			SetResult(&state).
			SetError(&apiErr).
			Put(base + "/parameter")
		if err != nil {
			return err
		} else if resp.IsError() {
			return out.ErrorResponse(resp)
		}
	}

	req := client.R().
		SetResult(&state).
		SetError(&apiErr)

	var resp *resty.Response
	var err error
	if p.search != "" {
		resp, err = req.SetBody(routes.SearchRequestJson{Term: p.search}).Post(base + "/search")
	} else {
		resp, err = req.Post(base + "/load")
	}
	if err != nil {
		return err
	} else if resp.IsError() {
		return out.ErrorResponse(resp)
	}

	defer out.Done()

	if err := resourceError(&state); err != nil {
		return err
	}

	out.EmitAll(state.Rows)
	emitted := len(state.Rows)

	for p.all && state.HasMore {
		state = routes.ResourceStateJson{}
		resp, err = client.R().
			SetResult(&state).
			SetError(&apiErr).
			Post(base + "/load-more")
		if err != nil {
			return err
		} else if resp.IsError() {
			return errors.New(apiErr.Error)
		}

		if err := resourceError(&state); err != nil {
			return err
		}

		// The state holds every loaded row, so only the newly appended ones are emitted
		if len(state.Rows) <= emitted {
			break
		}
		out.EmitAll(state.Rows[emitted:])
		emitted = len(state.Rows)
	}

	return nil
}

func cmdList() *cobra.Command {
	var (
		out Output[routes.Row]
		p   listParams
	)

	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List a resource kind from a running browser service",
		Long: "List a resource kind from a running browser service. Kinds: " +
			strings.Join(util.Map(graph.AllKinds, func(k graph.Kind) string { return string(k) }), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := graph.ParseKind(args[0])
			if err != nil {
				return err
			}
			p.kind = kind

			if p.apiUrl == "" {
				p.apiUrl = util.GetEnvDefault(ApiUrlEnvVar, DefaultApiUrl)
			}

			return runList(resty.New(), p, out)
		},
	}

	out = OutputMultiple[routes.Row](cmd)

	cmd.Flags().StringVar(&p.apiUrl, "api-url", "", "browser service url; may also be specified in "+ApiUrlEnvVar)
	cmd.Flags().StringVar(&p.search, "search", "", "search term")
	cmd.Flags().StringVar(&p.parameter, "parameter", "", "container type id, site id or container id for kinds that need one")
	cmd.Flags().BoolVar(&p.all, "all", false, "keep loading pages until there are no more")

	return cmd
}
