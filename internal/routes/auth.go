package routes

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/api_common"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/config"
	"github.com/rmorlok/graphbrowser/internal/fetcher"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/identity"
)

// ReloadParam is added to the return path of a consent round trip. The callback reloads the named kind so the
// resource that hit the consent error recovers without further input.
const ReloadParam = "reload"

type AuthRoutes struct {
	cfg      config.C
	auth     identity.Authenticator
	registry *fetcher.Registry
	logger   *slog.Logger
}

// safeReturnTo only allows local paths so the callback cannot be used as an open redirect.
func (r *AuthRoutes) safeReturnTo(returnTo string) string {
	if strings.HasPrefix(returnTo, "/") && !strings.HasPrefix(returnTo, "//") && !strings.Contains(returnTo, "\\") {
		return returnTo
	}

	return r.cfg.GetRoot().Server.GetPostLoginRedirect()
}

func withReload(returnTo string, kind graph.Kind) string {
	u, err := url.Parse(returnTo)
	if err != nil {
		return returnTo
	}

	q := u.Query()
	q.Set(ReloadParam, string(kind))
	u.RawQuery = q.Encode()
	return u.String()
}

func (r *AuthRoutes) writeInteractiveError(gctx *gin.Context, err error) {
	b := api_common.NewHttpStatusErrorBuilder().WithInternalErr(err)

	switch {
	case errors.Is(err, identity.ErrInteractiveNotSupported):
		b = b.WithStatusBadRequest().
			WithCode("interactive_not_supported").
			WithResponseMsg("the configured identity does not support interactive sign in")
	case errors.Is(err, identity.ErrInvalidState):
		b = b.WithStatusBadRequest().
			WithCode("invalid_state").
			WithResponseMsg("sign in has expired, please try again")
	}

	b.BuildStatusError().WriteGinResponse(r.cfg, gctx)
}

func (r *AuthRoutes) status(gctx *gin.Context) {
	gctx.PureJSON(http.StatusOK, r.auth.Status(gctx.Request.Context()))
}

func (r *AuthRoutes) begin(gctx *gin.Context, req identity.InteractiveRequest) {
	u, err := r.auth.BeginInteractive(gctx.Request.Context(), req)
	if err != nil {
		r.writeInteractiveError(gctx, err)
		return
	}

	gctx.Redirect(http.StatusFound, u)
}

func (r *AuthRoutes) login(gctx *gin.Context) {
	r.begin(gctx, identity.InteractiveRequest{
		ReturnTo: r.safeReturnTo(gctx.Query("return_to")),
	})
}

// consent sends the user through the consent prompt for the scopes a resource kind needs. This is the remedy
// offered when a kind fails with a consent error.
func (r *AuthRoutes) consent(gctx *gin.Context) {
	kind, err := graph.ParseKind(gctx.Query("kind"))
	if err != nil {
		api_common.NewHttpStatusErrorBuilder().
			WithStatusBadRequest().
			WithResponseMsgf("unknown resource kind '%s'", gctx.Query("kind")).
			WithInternalErr(err).
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	r.begin(gctx, identity.InteractiveRequest{
		ForceConsent: true,
		Scopes:       graph.PolicyFor(kind).ConsentScopes,
		ReturnTo:     withReload(r.safeReturnTo(gctx.Query("return_to")), kind),
	})
}

func (r *AuthRoutes) callback(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	logger := aplog.NewBuilder(r.logger).WithCtx(ctx).Build()

	if e := gctx.Query("error"); e != "" {
		logger.Warn("identity provider returned an error",
			"error", e,
			"error_description", gctx.Query("error_description"),
		)
		api_common.NewHttpStatusErrorBuilder().
			WithStatusUnauthorized().
			WithCode(e).
			WithResponseMsg(gctx.DefaultQuery("error_description", "sign in failed")).
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	returnTo, err := r.auth.CompleteInteractive(ctx, gctx.Query("state"), gctx.Query("code"))
	if err != nil {
		r.writeInteractiveError(gctx, err)
		return
	}

	returnTo = r.safeReturnTo(returnTo)

	if u, err := url.Parse(returnTo); err == nil {
		if raw := u.Query().Get(ReloadParam); raw != "" {
			if kind, err := graph.ParseKind(raw); err == nil {
				if res, err := r.registry.Get(kind); err == nil {
					s := res.Load(ctx)
					logger.Info("reloaded resource after consent",
						"resource_kind", kind,
						"phase", s.Phase,
					)
				}
			}
		}
	}

	gctx.Redirect(http.StatusFound, returnTo)
}

func (r *AuthRoutes) logout(gctx *gin.Context) {
	if err := r.auth.SignOut(gctx.Request.Context()); err != nil {
		api_common.NewHttpStatusErrorBuilder().
			WithWrappedInternalErr(err, "failed to sign out").
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	r.registry.ResetAll()
	gctx.PureJSON(http.StatusOK, r.auth.Status(gctx.Request.Context()))
}

func (r *AuthRoutes) Register(g gin.IRouter) {
	g.GET("/auth/status", r.status)
	g.GET("/auth/login", r.login)
	g.GET("/auth/consent", r.consent)
	g.GET("/auth/callback", r.callback)
	g.POST("/auth/logout", r.logout)
}

func NewAuthRoutes(cfg config.C, auth identity.Authenticator, registry *fetcher.Registry, logger *slog.Logger) *AuthRoutes {
	return &AuthRoutes{
		cfg:      cfg,
		auth:     auth,
		registry: registry,
		logger:   aplog.NewBuilder(logger).WithComponent("auth_routes").Build(),
	}
}
