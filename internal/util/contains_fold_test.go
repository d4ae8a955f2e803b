package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsFold(t *testing.T) {
	require.True(t, ContainsFold("Finance Team Site", "finance"))
	require.True(t, ContainsFold("finance", "FINANCE"))
	require.True(t, ContainsFold("anything", ""))
	require.False(t, ContainsFold("HR", "finance"))
}

func TestAnyContainsFold(t *testing.T) {
	require.True(t, AnyContainsFold("fin", "HR", "Finance"))
	require.False(t, AnyContainsFold("fin", "HR", "", "Legal"))
	require.False(t, AnyContainsFold("fin"))
}
