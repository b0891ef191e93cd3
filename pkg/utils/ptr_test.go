package utils_test

import (
	"testing"

	"github.com/pseudomuto/sqlkit/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	p := utils.Ptr(uint64(10))
	require.Equal(t, uint64(10), *p)

	// Each call points at its own copy.
	require.NotSame(t, utils.Ptr(1), utils.Ptr(1))
}

func TestDeref(t *testing.T) {
	require.True(t, utils.Deref[bool](nil, true))
	require.False(t, utils.Deref(utils.Ptr(false), true))
	require.Equal(t, "x", utils.Deref(utils.Ptr("x"), ""))
}
