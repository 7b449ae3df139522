package eug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uc/eug"
)

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func TestNetwork_Identity(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 8, 9, 13} {
		net := eug.BuildNetwork(n)
		require.NoError(t, net.Program(identity(n)))
		assert.Equal(t, identity(n), net.Apply(identity(n)))
	}
}

func TestNetwork_Reversal(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 7, 8, 11} {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = n - 1 - i
		}
		net := eug.BuildNetwork(n)
		require.NoError(t, net.Program(perm))

		out := net.Apply(identity(n))
		want := make([]int, n)
		for i, p := range perm {
			want[p] = i
		}
		assert.Equal(t, want, out)
	}
}

func TestNetwork_ArbitraryPermutation(t *testing.T) {
	// perm[i] is the output slot input i is routed to.
	perm := []int{3, 1, 0, 4, 2}
	net := eug.BuildNetwork(len(perm))
	require.NoError(t, net.Program(perm))

	out := net.Apply(identity(len(perm)))
	want := make([]int, len(perm))
	for i, p := range perm {
		want[p] = i
	}
	assert.Equal(t, want, out)
}

func TestNetwork_RejectsBadPermutation(t *testing.T) {
	net := eug.BuildNetwork(4)
	err := net.Program([]int{0, 0, 1, 2})
	assert.ErrorIs(t, err, eug.ErrBadPermutation)

	err = net.Program([]int{0, 1, 2})
	assert.ErrorIs(t, err, eug.ErrBadPermutation)
}
