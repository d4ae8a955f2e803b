package config

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/rmorlok/graphbrowser/internal/schema/common"
)

const DefaultServerPort = 8080

type Server struct {
	Host               string   `json:"host,omitempty" yaml:"host,omitempty"`
	PortVal            int      `json:"port,omitempty" yaml:"port,omitempty"`
	Debug              bool     `json:"debug,omitempty" yaml:"debug,omitempty"`
	CorsAllowedOrigins []string `json:"cors_allowed_origins,omitempty" yaml:"cors_allowed_origins,omitempty"`

	// PostLoginRedirect is where the browser is sent after the sign-in callback completes when no explicit return
	// path was requested.
	PostLoginRedirect string `json:"post_login_redirect,omitempty" yaml:"post_login_redirect,omitempty"`
}

func (s *Server) Port() int {
	if s == nil || s.PortVal == 0 {
		return DefaultServerPort
	}
	return s.PortVal
}

func (s *Server) Addr() string {
	if s == nil {
		return fmt.Sprintf(":%d", DefaultServerPort)
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port())
}

func (s *Server) GetPostLoginRedirect() string {
	if s == nil || s.PostLoginRedirect == "" {
		return "/"
	}
	return s.PostLoginRedirect
}

// ToGinCorsConfig returns nil when CORS is not configured.
func (s *Server) ToGinCorsConfig() *cors.Config {
	if s == nil || len(s.CorsAllowedOrigins) == 0 {
		return nil
	}

	return &cors.Config{
		AllowOrigins:     s.CorsAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Cookie", "X-Correlation-Id"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Correlation-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func (s *Server) Validate(vc *common.ValidationContext) error {
	if s == nil {
		return nil
	}

	if s.PortVal < 0 || s.PortVal > 65535 {
		return vc.NewErrorfForField("port", "invalid port %d", s.PortVal)
	}

	return nil
}
