package gate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uc/gate"
)

func andCircuit(t *testing.T) *gate.List {
	t.Helper()
	src := strings.Join([]string{
		"1 input",
		"2 input",
		"3 output gate arity 2 table [ 0 0 0 1 ] inputs [ 1 2 ]",
		"outputs 3",
	}, "\n")
	l, err := gate.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return l
}

func TestParse_AndCircuit(t *testing.T) {
	l := andCircuit(t)
	require.Len(t, l.Gates, 3)
	assert.Equal(t, 0, l.Gates[0].Arity)
	assert.Equal(t, 2, l.Gates[2].Arity)
	assert.Equal(t, []int{1, 2}, l.Gates[2].Inputs)
	assert.Equal(t, []int{3}, l.Outputs)
	assert.True(t, l.Gates[2].IsOutput)
}

func TestParse_OutOfOrderID(t *testing.T) {
	_, err := gate.Parse(strings.NewReader("1 input\n3 input\n"))
	assert.ErrorIs(t, err, gate.ErrMalformed)
}

func TestParse_UnknownInput(t *testing.T) {
	src := "1 input\n2 gate arity 1 table [ 0 1 ] inputs [ 5 ]\n"
	_, err := gate.Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, gate.ErrMalformed)
	assert.ErrorIs(t, err, gate.ErrUnknownInput)
}

func TestWrite_RoundTrip(t *testing.T) {
	l := andCircuit(t)
	var buf bytes.Buffer
	require.NoError(t, gate.Write(&buf, l))

	reparsed, err := gate.Parse(&buf)
	require.NoError(t, err)
	require.Len(t, reparsed.Gates, len(l.Gates))
	assert.Equal(t, l.Outputs, reparsed.Outputs)
	for i, g := range l.Gates {
		assert.Equal(t, g.Arity, reparsed.Gates[i].Arity)
		assert.Equal(t, g.Table, reparsed.Gates[i].Table)
		assert.Equal(t, g.Inputs, reparsed.Gates[i].Inputs)
	}
}

func TestEval_And(t *testing.T) {
	l := andCircuit(t)
	out, err := gate.Eval(l, []bool{true, true})
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, out)

	out, err = gate.Eval(l, []bool{false, true})
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, out)
}

func TestNormalize_Idempotent(t *testing.T) {
	l := andCircuit(t)
	once := gate.Normalize(l)
	twice := gate.Normalize(once)
	require.Equal(t, len(once.Gates), len(twice.Gates))
	for i := range once.Gates {
		assert.Equal(t, once.Gates[i].Arity, twice.Gates[i].Arity)
		assert.Equal(t, once.Gates[i].Inputs, twice.Gates[i].Inputs)
	}
	assert.Equal(t, once.Outputs, twice.Outputs)
}

func TestNormalize_InsertsBuffersOnHighFanout(t *testing.T) {
	// wire 1 feeds three gates: fan-out normalisation must insert buffers.
	src := strings.Join([]string{
		"1 input",
		"2 gate arity 1 table [ 0 1 ] inputs [ 1 ]",
		"3 gate arity 1 table [ 0 1 ] inputs [ 1 ]",
		"4 gate arity 1 table [ 0 1 ] inputs [ 1 ]",
		"outputs 2 3 4",
	}, "\n")
	l, err := gate.Parse(strings.NewReader(src))
	require.NoError(t, err)

	out := gate.Normalize(l)
	assert.Greater(t, len(out.Gates), len(l.Gates))

	counts := make(map[int]int)
	for _, g := range out.Gates {
		for _, in := range g.Inputs {
			counts[in]++
		}
	}
	for id, c := range counts {
		assert.LessOrEqualf(t, c, 2, "wire %d drives %d consumers", id, c)
	}

	before, err := gate.Eval(l, []bool{true})
	require.NoError(t, err)
	after, err := gate.Eval(out, []bool{true})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
