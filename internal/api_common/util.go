package api_common

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

const (
	DebugHeader = "x-graphbrowser-debug"
)

func PrintRoutes(g *gin.Engine) {
	for _, route := range g.Routes() {
		fmt.Printf("Method: %s, Path: %s, Handler: %s\n", route.Method, route.Path, route.Handler)
	}
}

func AddGinDebugHeader(cfg Debuggable, gctx *gin.Context, debugMessage string) {
	if cfg != nil && cfg.IsDebugMode() {
		gctx.Header(DebugHeader, debugMessage)
	}
}

func AddGinDebugHeaderError(cfg Debuggable, gctx *gin.Context, err error) {
	AddGinDebugHeader(cfg, gctx, err.Error())
}
