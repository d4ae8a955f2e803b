package fetcher

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/identity"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("has a fetcher per kind", func(t *testing.T) {
		client, auth := setup(t)
		r := NewRegistry(RegistryConfig{}, client, auth)

		for _, k := range graph.AllKinds {
			res, err := r.Get(k)
			require.NoError(t, err)
			require.Equal(t, k, res.Kind())
		}

		_, err := r.Get("lists")
		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("search input is debounced", func(t *testing.T) {
		client, auth := setup(t)
		clk := clocktesting.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		r := NewRegistry(RegistryConfig{Clock: clk, Debounce: 300 * time.Millisecond}, client, auth)

		client.
			EXPECT().
			FetchPage(gomock.Any(), gomock.Any(), "", testCred).
			DoAndReturn(func(_ context.Context, q graph.Query, _ string, _ identity.Credential) (*graph.RawPage, error) {
				require.Equal(t, "finance", q.SearchTerm)
				return rawPage(t, "", named("Finance")...), nil
			}).
			Times(1)

		for _, term := range []string{"fin", "fina", "finance"} {
			require.NoError(t, r.SearchInput(ctx, graph.KindSites, term))
			clk.Step(50 * time.Millisecond)
		}

		res, err := r.Get(graph.KindSites)
		require.NoError(t, err)
		require.Equal(t, PhaseIdle, res.State().Phase)

		clk.Step(300 * time.Millisecond)

		s := res.State()
		require.Equal(t, PhaseLoaded, s.Phase)
		require.Len(t, s.Items, 1)
		require.Equal(t, "finance", s.SearchTerm)
	})

	t.Run("flush and reset all", func(t *testing.T) {
		client, auth := setup(t)
		clk := clocktesting.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		r := NewRegistry(RegistryConfig{Clock: clk}, client, auth)

		client.EXPECT().FetchPage(gomock.Any(), gomock.Any(), "", testCred).Return(rawPage(t, "c1", named("Ada")...), nil)

		require.NoError(t, r.SearchInput(ctx, graph.KindUsers, "ada"))
		ran, err := r.FlushSearch(graph.KindUsers)
		require.NoError(t, err)
		require.True(t, ran)

		res, _ := r.Get(graph.KindUsers)
		require.Len(t, res.State().Items, 1)

		require.NoError(t, r.SearchInput(ctx, graph.KindUsers, "grace"))
		r.ResetAll()
		clk.Step(time.Second)

		require.Equal(t, PhaseIdle, res.State().Phase)
		require.Empty(t, res.State().Items)

		_, err = r.FlushSearch("lists")
		require.Error(t, err)
	})
}
