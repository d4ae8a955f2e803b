package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/api_common"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/config"
	"github.com/rmorlok/graphbrowser/internal/fetcher"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/util"
)

type ErrorJson struct {
	Kind    graph.ErrorKind `json:"kind"`
	Message string          `json:"message"`
	Status  int             `json:"status,omitempty"`
	Remedy  graph.Remedy    `json:"remedy,omitempty"`
}

func ErrorToJson(e *graph.Error) *ErrorJson {
	if e == nil {
		return nil
	}

	return &ErrorJson{
		Kind:    e.Kind,
		Message: e.Detail,
		Status:  e.Status,
		Remedy:  e.Remedy,
	}
}

// ResourceStateJson is the state of one resource kind as rendered for the browser. Items holds the raw Graph
// objects; Rows holds the same items projected to the kind's table columns.
type ResourceStateJson struct {
	Kind        graph.Kind    `json:"kind"`
	Phase       fetcher.Phase `json:"phase"`
	Loading     bool          `json:"loading"`
	LoadingMore bool          `json:"loading_more"`
	HasMore     bool          `json:"has_more"`
	Error       *ErrorJson    `json:"error,omitempty"`
	SearchTerm  string        `json:"search_term,omitempty"`
	Parameter   string        `json:"parameter,omitempty"`
	Columns     []Column      `json:"columns"`
	Rows        []Row         `json:"rows"`
	Items       []any         `json:"items"`
}

func ResourceStateToJson(kind graph.Kind, s fetcher.State[any]) ResourceStateJson {
	items := s.Items
	if items == nil {
		items = []any{}
	}

	return ResourceStateJson{
		Kind:        kind,
		Phase:       s.Phase,
		Loading:     s.Loading,
		LoadingMore: s.LoadingMore,
		HasMore:     s.HasMore,
		Error:       ErrorToJson(s.Error),
		SearchTerm:  s.SearchTerm,
		Parameter:   s.Parameter,
		Columns:     ColumnsFor(kind),
		Rows:        util.Map(items, ProjectRow),
		Items:       items,
	}
}

type SearchRequestJson struct {
	Term string `json:"term"`
}

type ParameterRequestJson struct {
	Value string `json:"value"`
}

type ResourcesRoutes struct {
	cfg      config.C
	registry *fetcher.Registry
	logger   *slog.Logger
}

func (r *ResourcesRoutes) resource(gctx *gin.Context) (fetcher.Resource, bool) {
	kind, err := graph.ParseKind(gctx.Param("kind"))
	if err == nil {
		var res fetcher.Resource
		res, err = r.registry.Get(kind)
		if err == nil {
			return res, true
		}
	}

	api_common.NewHttpStatusErrorBuilder().
		WithStatusNotFound().
		WithResponseMsgf("unknown resource kind '%s'", gctx.Param("kind")).
		WithInternalErr(err).
		BuildStatusError().
		WriteGinResponse(r.cfg, gctx)
	return nil, false
}

// writeState responds with the state. Errors in the state are data, so the response is still a 200.
func (r *ResourcesRoutes) writeState(gctx *gin.Context, res fetcher.Resource, s fetcher.State[any]) {
	if s.Error != nil {
		aplog.NewBuilder(r.logger).
			WithCtx(gctx.Request.Context()).
			WithResourceKind(string(res.Kind())).
			Build().
			Info("resource operation failed",
				"error_kind", s.Error.Kind,
				"status", s.Error.Status,
			)
	}

	gctx.PureJSON(http.StatusOK, ResourceStateToJson(res.Kind(), s))
}

func (r *ResourcesRoutes) get(gctx *gin.Context) {
	res, ok := r.resource(gctx)
	if !ok {
		return
	}

	r.writeState(gctx, res, res.State())
}

func (r *ResourcesRoutes) load(gctx *gin.Context) {
	res, ok := r.resource(gctx)
	if !ok {
		return
	}

	r.writeState(gctx, res, res.Load(gctx.Request.Context()))
}

func (r *ResourcesRoutes) loadMore(gctx *gin.Context) {
	res, ok := r.resource(gctx)
	if !ok {
		return
	}

	r.writeState(gctx, res, res.LoadMore(gctx.Request.Context()))
}

func (r *ResourcesRoutes) reset(gctx *gin.Context) {
	res, ok := r.resource(gctx)
	if !ok {
		return
	}

	r.writeState(gctx, res, res.Reset())
}

func (r *ResourcesRoutes) bindSearch(gctx *gin.Context) (SearchRequestJson, bool) {
	var req SearchRequestJson
	if err := gctx.ShouldBindJSON(&req); err != nil {
		api_common.NewHttpStatusErrorBuilder().
			WithStatusBadRequest().
			WithResponseMsg("invalid search request").
			WithInternalErr(err).
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return req, false
	}

	return req, true
}

func (r *ResourcesRoutes) search(gctx *gin.Context) {
	res, ok := r.resource(gctx)
	if !ok {
		return
	}

	req, ok := r.bindSearch(gctx)
	if !ok {
		return
	}

	r.writeState(gctx, res, res.Search(gctx.Request.Context(), req.Term))
}

// searchInput accepts keystrokes from a search box. The search runs after the input goes quiet; poll the
// resource to see the result.
func (r *ResourcesRoutes) searchInput(gctx *gin.Context) {
	res, ok := r.resource(gctx)
	if !ok {
		return
	}

	req, ok := r.bindSearch(gctx)
	if !ok {
		return
	}

	if err := r.registry.SearchInput(gctx.Request.Context(), res.Kind(), req.Term); err != nil {
		api_common.NewHttpStatusErrorBuilder().
			WithInternalErr(err).
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	gctx.PureJSON(http.StatusAccepted, ResourceStateToJson(res.Kind(), res.State()))
}

func (r *ResourcesRoutes) setParameter(gctx *gin.Context) {
	res, ok := r.resource(gctx)
	if !ok {
		return
	}

	var req ParameterRequestJson
	if err := gctx.ShouldBindJSON(&req); err != nil {
		api_common.NewHttpStatusErrorBuilder().
			WithStatusBadRequest().
			WithResponseMsg("invalid parameter request").
			WithInternalErr(err).
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	if err := res.SetFilterParameter(req.Value); err != nil {
		b := api_common.NewHttpStatusErrorBuilder().WithInternalErr(err)
		if errors.Is(err, fetcher.ErrParameterNotSupported) {
			b = b.WithStatusBadRequest().
				WithCode("parameter_not_supported").
				WithResponseMsgf("resource kind '%s' does not take a parameter", res.Kind())
		}

		b.BuildStatusError().WriteGinResponse(r.cfg, gctx)
		return
	}

	r.writeState(gctx, res, res.State())
}

// kinds lists every kind with its table columns and whether it needs a parameter before loading.
func (r *ResourcesRoutes) kinds(gctx *gin.Context) {
	type kindJson struct {
		Kind              graph.Kind `json:"kind"`
		Columns           []Column   `json:"columns"`
		RemoteSearch      bool       `json:"remote_search"`
		RequiresParameter bool       `json:"requires_parameter"`
		ParameterName     string     `json:"parameter_name,omitempty"`
	}

	result := make([]kindJson, 0, len(graph.AllKinds))
	for _, k := range graph.AllKinds {
		p := graph.PolicyFor(k)
		result = append(result, kindJson{
			Kind:              k,
			Columns:           ColumnsFor(k),
			RemoteSearch:      p.SupportsRemoteSearch(),
			RequiresParameter: p.RequiresParameter(),
			ParameterName:     p.ParameterName,
		})
	}

	gctx.PureJSON(http.StatusOK, gin.H{"items": result})
}

func (r *ResourcesRoutes) Register(g gin.IRouter) {
	g.GET("/resources", r.kinds)
	g.GET("/resources/:kind", r.get)
	g.POST("/resources/:kind/load", r.load)
	g.POST("/resources/:kind/load-more", r.loadMore)
	g.POST("/resources/:kind/reset", r.reset)
	g.POST("/resources/:kind/search", r.search)
	g.POST("/resources/:kind/search-input", r.searchInput)
	g.PUT("/resources/:kind/parameter", r.setParameter)
}

func NewResourcesRoutes(cfg config.C, registry *fetcher.Registry, logger *slog.Logger) *ResourcesRoutes {
	return &ResourcesRoutes{
		cfg:      cfg,
		registry: registry,
		logger:   aplog.NewBuilder(logger).WithComponent("resources_routes").Build(),
	}
}
