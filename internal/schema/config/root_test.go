package config

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestUnmarshallYamlRoot(t *testing.T) {
	data := `
server:
  port: 9090
  debug: true
graph:
  page_size: 25
  timeout: 10s
identity:
  type: oauth2
  tenant_id: contoso.onmicrosoft.com
  client_id: 00000000-0000-0000-0000-000000000001
  client_secret:
    env_var: GRAPHBROWSER_CLIENT_SECRET
    default: shh
  redirect_url: http://localhost:9090/api/v1/auth/callback
search:
  debounce: 500ms
redis:
  provider: miniredis
logging:
  type: tint
  level: debug
`
	root, err := UnmarshallYamlRoot([]byte(data))
	require.NoError(t, err)
	require.NoError(t, root.Validate())

	require.Equal(t, 9090, root.Server.Port())
	require.Equal(t, ":9090", root.Server.Addr())
	require.True(t, root.Server.Debug)
	require.Equal(t, 25, root.Graph.GetPageSize())
	require.Equal(t, 10*time.Second, root.Graph.GetTimeout())
	require.Equal(t, DefaultGraphBaseUrl, root.Graph.GetBaseUrl())
	require.Equal(t, DefaultGraphBetaBaseUrl, root.Graph.GetBetaBaseUrl())
	require.Equal(t, 500*time.Millisecond, root.Search.GetDebounce())
	require.Equal(t, RedisProviderMiniredis, root.Redis.GetProvider())
	require.Equal(t, LoggingConfigTypeTint, root.Logging.GetType())
	require.NotNil(t, root.GetRootLogger())

	require.Equal(t, IdentityTypeOAuth2, root.Identity.GetType())
	require.Equal(t, "contoso.onmicrosoft.com", root.Identity.GetTenantId())
	require.Equal(t, DefaultScopes, root.Identity.GetScopes())
	require.Equal(t, DefaultLoginStateTtl, root.Identity.GetLoginStateTtl())

	secret, err := root.Identity.ClientSecret.GetValue(context.Background())
	require.NoError(t, err)
	require.Equal(t, "shh", secret)
}

func TestRootDefaults(t *testing.T) {
	root := &Root{Identity: Identity{Type: IdentityTypeStatic}}

	require.Equal(t, DefaultPageSize, root.Graph.GetPageSize())
	require.Equal(t, DefaultGraphTimeout, root.Graph.GetTimeout())
	require.Equal(t, DefaultSearchDebounce, root.Search.GetDebounce())
	require.Equal(t, DefaultServerPort, root.Server.Port())
	require.Equal(t, "/", root.Server.GetPostLoginRedirect())
	require.Nil(t, root.Server.ToGinCorsConfig())
	require.Equal(t, RedisProviderMiniredis, root.Redis.GetProvider())
	require.Equal(t, LoggingConfigTypeNone, root.Logging.GetType())
	require.Equal(t, DefaultTenantId, root.Identity.GetTenantId())
}

func TestRootValidate(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		root := &Root{
			Server: Server{PortVal: 70000},
			Graph:  &Graph{PageSize: -1},
			Identity: Identity{
				Type:   IdentityTypeOAuth2,
				Scopes: []string{"User.Read", ""},
			},
			Redis: &Redis{InnerVal: &RedisReal{Provider: RedisProviderRedis}},
		}

		err := root.Validate()
		require.Error(t, err)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)

		msg := err.Error()
		require.Contains(t, msg, "$.server.port")
		require.Contains(t, msg, "$.graph.page_size")
		require.Contains(t, msg, "$.identity.client_id")
		require.Contains(t, msg, "$.identity.redirect_url")
		require.Contains(t, msg, "$.identity.scopes[1]")
		require.Contains(t, msg, "$.redis.address")
	})

	t.Run("static requires token", func(t *testing.T) {
		root := &Root{Identity: Identity{Type: IdentityTypeStatic}}
		require.ErrorContains(t, root.Validate(), "$.identity.token")
	})

	t.Run("unknown identity type", func(t *testing.T) {
		root := &Root{Identity: Identity{Type: "kerberos"}}
		require.ErrorContains(t, root.Validate(), "unknown identity type")
	})
}

func TestLoggingConfigUnmarshal(t *testing.T) {
	for _, typ := range []LoggingConfigType{LoggingConfigTypeText, LoggingConfigTypeJson, LoggingConfigTypeTint, LoggingConfigTypeNone} {
		t.Run(string(typ), func(t *testing.T) {
			root, err := UnmarshallYamlRoot([]byte("identity:\n  type: static\nlogging:\n  type: " + string(typ) + "\n"))
			require.NoError(t, err)
			require.Equal(t, typ, root.Logging.GetType())
			require.NotNil(t, root.GetRootLogger())

			data, err := root.Logging.MarshalJSON()
			require.NoError(t, err)

			var l LoggingConfig
			require.NoError(t, l.UnmarshalJSON(data))
			require.Equal(t, typ, l.GetType())
		})
	}

	t.Run("missing type", func(t *testing.T) {
		_, err := UnmarshallYamlRoot([]byte("logging:\n  level: debug\n"))
		require.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := UnmarshallYamlRoot([]byte("logging:\n  type: syslog\n"))
		require.Error(t, err)
	})
}

func TestRedisUnmarshal(t *testing.T) {
	root, err := UnmarshallYamlRoot([]byte(`
redis:
  provider: redis
  address: localhost:6379
  password: hunter2
  db: 2
`))
	require.NoError(t, err)
	require.Equal(t, RedisProviderRedis, root.Redis.GetProvider())

	rr := root.Redis.InnerVal.(*RedisReal)
	require.Equal(t, "localhost:6379", rr.Address)
	require.Equal(t, 2, rr.DB)
	pw, err := rr.Password.GetValue(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hunter2", pw)
}

func TestServerCors(t *testing.T) {
	s := &Server{CorsAllowedOrigins: []string{"http://localhost:5173"}}
	c := s.ToGinCorsConfig()
	require.NotNil(t, c)
	require.Equal(t, []string{"http://localhost:5173"}, c.AllowOrigins)
	require.True(t, c.AllowCredentials)
}
