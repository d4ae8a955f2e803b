package api_common

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/apctx"
)

// CorrelationMiddleware makes sure every request context carries a correlation id and echoes it back to the
// caller.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		ctx := apctx.WithCorrelationID(gctx.Request.Context(), gctx.GetHeader(apctx.CorrelationIdHeader))
		ctx = apctx.EnsureCorrelationID(ctx)
		gctx.Request = gctx.Request.WithContext(ctx)
		gctx.Header(apctx.CorrelationIdHeader, apctx.CorrelationID(ctx))
		gctx.Next()
	}
}

func GinForService(serviceId string) *gin.Engine {
	logFormatter := func(param gin.LogFormatterParams) string {
		var statusColor, methodColor, resetColor string
		if param.IsOutputColor() {
			statusColor = param.StatusCodeColor()
			methodColor = param.MethodColor()
			resetColor = param.ResetColor()
		}

		if param.Latency > time.Minute {
			param.Latency = param.Latency.Truncate(time.Second)
		}
		return fmt.Sprintf("["+serviceId+"] %v |%s %3d %s| %13v | %15s |%s %-7s %s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			statusColor, param.StatusCode, resetColor,
			param.Latency,
			param.ClientIP,
			methodColor, param.Method, resetColor,
			param.Path,
			param.ErrorMessage,
		)
	}

	engine := gin.New()
	engine.Use(gin.LoggerWithFormatter(logFormatter), gin.Recovery(), CorrelationMiddleware())

	return engine
}

// GinForTest creates an engine suitable for handler tests. A nil handler list installs only recovery.
func GinForTest(handlers []gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), CorrelationMiddleware())
	engine.Use(handlers...)
	return engine
}

// RunServer Runs a HTTP server and handles termination signals automatically.
func RunServer(srv *http.Server, logger *slog.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return errors.Wrap(err, "server failed to listen")
		}
	case <-quit:
	}

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	logger.Info("server exiting")

	return nil
}
