package identity

import (
	"context"
	"testing"

	"github.com/rmorlok/graphbrowser/internal/schema/common"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
	"github.com/stretchr/testify/require"
)

func TestStaticAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a token", func(t *testing.T) {
		_, err := NewStatic(ctx, &sconfig.Identity{Type: sconfig.IdentityTypeStatic})
		require.Error(t, err)
	})

	t.Run("presents the token until signed out", func(t *testing.T) {
		a, err := NewStatic(ctx, &sconfig.Identity{
			Type:  sconfig.IdentityTypeStatic,
			Token: common.NewStringValueDirect("eyJ0eXAi"),
		})
		require.NoError(t, err)

		cred, err := a.GetCredential(ctx)
		require.NoError(t, err)
		require.Equal(t, "Bearer eyJ0eXAi", cred.AuthorizationHeader())
		require.True(t, a.Status(ctx).SignedIn)

		_, err = a.BeginInteractive(ctx, InteractiveRequest{})
		require.ErrorIs(t, err, ErrInteractiveNotSupported)

		require.NoError(t, a.SignOut(ctx))
		_, err = a.GetCredential(ctx)
		require.ErrorIs(t, err, ErrNotSignedIn)
		require.False(t, a.Status(ctx).SignedIn)
	})
}
