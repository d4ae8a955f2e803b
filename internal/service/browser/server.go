package browser

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rmorlok/graphbrowser/internal/api_common"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/apredis"
	"github.com/rmorlok/graphbrowser/internal/config"
	"github.com/rmorlok/graphbrowser/internal/routes"
	"github.com/rmorlok/graphbrowser/internal/service"
)

const ServiceId = "browser"

// GetGinEngine builds the engine with every browser route mounted.
func GetGinEngine(dm *service.DependencyManager) *gin.Engine {
	root := dm.GetConfigRoot()
	logger := dm.GetLogger()

	server := api_common.GinForService(ServiceId)

	corsConfig := root.Server.ToGinCorsConfig()
	if corsConfig != nil {
		logger.Info("Enabling CORS")
		server.Use(cors.New(*corsConfig))
	}

	server.GET("/ping", func(c *gin.Context) {
		c.PureJSON(http.StatusOK, gin.H{
			"service": ServiceId,
			"message": "pong",
		})
	})

	server.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		redisOk := apredis.Ping(ctx, dm.GetRedisClient())
		status := http.StatusOK
		if !redisOk {
			status = http.StatusServiceUnavailable
		}

		c.PureJSON(status, gin.H{
			"service": ServiceId,
			"redis":   redisOk,
			"ok":      redisOk,
		})
	})

	routesResources := routes.NewResourcesRoutes(
		dm.GetConfig(),
		dm.GetRegistry(),
		logger,
	)
	routesAuth := routes.NewAuthRoutes(
		dm.GetConfig(),
		dm.GetAuthenticator(),
		dm.GetRegistry(),
		logger,
	)

	api := server.Group("/api/v1")

	routesResources.Register(api)
	routesAuth.Register(api)

	return server
}

func GetGinServer(dm *service.DependencyManager) *http.Server {
	return &http.Server{
		Addr:    dm.GetConfigRoot().Server.Addr(),
		Handler: GetGinEngine(dm),
	}
}

func Serve(cfg config.C) error {
	dm := service.NewDependencyManager(ServiceId, cfg)
	aplog.SetDefaultLog(dm.GetRootLogger())
	logger := dm.GetLogger()

	if !cfg.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Close redis connections when we exit
	defer dm.GetRedisClient().Close()
	defer dm.GetRegistry().Stop()

	server := GetGinServer(dm)

	logger.Info("running service", "addr", server.Addr)
	if err := api_common.RunServer(server, logger); err != nil {
		logger.Error(err.Error())
		return err
	}

	logger.Info("browser shutdown complete")
	return nil
}
