package service

import (
	"context"
	"log/slog"

	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/apredis"
	"github.com/rmorlok/graphbrowser/internal/config"
	"github.com/rmorlok/graphbrowser/internal/fetcher"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/httpf"
	"github.com/rmorlok/graphbrowser/internal/identity"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

// DependencyManager lazily builds the shared services for a process. Getters panic on construction failures
// since they only happen at startup.
type DependencyManager struct {
	serviceId     string
	cfg           config.C
	logBuilder    aplog.Builder
	logger        *slog.Logger
	r             apredis.Client
	httpf         httpf.F
	graphClient   graph.Client
	authenticator identity.Authenticator
	registry      *fetcher.Registry
}

func NewDependencyManager(serviceId string, cfg config.C) *DependencyManager {
	return &DependencyManager{
		serviceId: serviceId,
		cfg:       cfg,
	}
}

func (dm *DependencyManager) GetConfig() config.C {
	return dm.cfg
}

func (dm *DependencyManager) GetConfigRoot() *sconfig.Root {
	return dm.cfg.GetRoot()
}

func (dm *DependencyManager) GetServiceId() string {
	return dm.serviceId
}

func (dm *DependencyManager) GetLogBuilder() aplog.Builder {
	if dm.logBuilder == nil {
		dm.logBuilder = aplog.NewBuilder(dm.cfg.GetRootLogger())
	}

	return dm.logBuilder
}

func (dm *DependencyManager) GetRootLogger() *slog.Logger {
	return dm.GetConfigRoot().GetRootLogger()
}

func (dm *DependencyManager) GetLogger() *slog.Logger {
	if dm.logger == nil {
		dm.logger = dm.GetLogBuilder().WithService(dm.serviceId).Build()
	}

	return dm.logger
}

func (dm *DependencyManager) GetRedisClient() apredis.Client {
	if dm.r == nil {
		var err error
		dm.r, err = apredis.NewForRoot(context.Background(), dm.GetConfigRoot())
		if err != nil {
			panic(err)
		}
	}

	return dm.r
}

func (dm *DependencyManager) GetHttpf() httpf.F {
	if dm.httpf == nil {
		g := dm.GetConfigRoot().Graph

		var requestLogger *httpf.RequestLogger
		if g.GetLogRequests() {
			requestLogger = httpf.NewRequestLogger(dm.GetLogger(), slog.LevelInfo)
		}

		// The limiter is listed first so it sits closest to the network and paces every attempt.
		dm.httpf = httpf.CreateFactory(
			g.GetTimeout(),
			dm.GetLogger(),
			httpf.NewRateLimiter(g.GetRequestsPerSecond(), 1),
			requestLogger,
		)
	}

	return dm.httpf
}

func (dm *DependencyManager) GetGraphClient() graph.Client {
	if dm.graphClient == nil {
		dm.graphClient = graph.NewClient(dm.GetConfigRoot().Graph, dm.GetHttpf(), dm.GetLogger())
	}

	return dm.graphClient
}

func (dm *DependencyManager) GetAuthenticator() identity.Authenticator {
	if dm.authenticator == nil {
		var err error
		dm.authenticator, err = identity.NewForConfig(
			context.Background(),
			dm.GetConfig(),
			dm.GetRedisClient(),
			dm.GetHttpf(),
			dm.GetLogger(),
		)
		if err != nil {
			panic(err)
		}
	}

	return dm.authenticator
}

func (dm *DependencyManager) GetRegistry() *fetcher.Registry {
	if dm.registry == nil {
		root := dm.GetConfigRoot()
		dm.registry = fetcher.NewRegistry(fetcher.RegistryConfig{
			PageSize: root.Graph.GetPageSize(),
			Debounce: root.Search.GetDebounce(),
			Logger:   dm.GetLogger(),
		}, dm.GetGraphClient(), dm.GetAuthenticator())
	}

	return dm.registry
}
