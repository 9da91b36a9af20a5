package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lookbusy1344/bignum/repl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1 + 1", "2"},
		{"10 - 3", "7"},
		{"6 * 7", "42"},
		{"100 / 9", "11"},
		{"100 % 9", "1"},
		{"1 << 10", "1024"},
		{"1024 >> 10", "1"},
		{"(2 + 3) * 4", "20"},
		{"pow(2, 10)", "1024"},
		{"gcd(12, 8)", "4"},
		{"274133054632352106267 + 1", "274133054632352106268"},
	}

	for _, tt := range tests {
		got, err := repl.Evaluate(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got.String(), tt.expr)
	}
}

func TestEvaluateOperatorPrecedence(t *testing.T) {
	got, err := repl.Evaluate("2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, "14", got.String())
}

func TestEvaluateNegativeSubtractionErrorsWithoutCrashing(t *testing.T) {
	_, err := repl.Evaluate("1 - 2")
	assert.Error(t, err)

	// The process must still be usable after a fatal-contract-violation
	// expression: a subsequent valid expression should succeed.
	got, err := repl.Evaluate("1 + 1")
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())
}

func TestEvaluateSyntaxError(t *testing.T) {
	_, err := repl.Evaluate("1 + ")
	assert.Error(t, err)

	_, err = repl.Evaluate("(1 + 2")
	assert.Error(t, err)

	_, err = repl.Evaluate("unknownfunc(1, 2)")
	assert.Error(t, err)
}

func TestCommandHistory(t *testing.T) {
	h := repl.NewCommandHistory(3)
	h.Add("1 + 1")
	h.Add("2 + 2")
	h.Add("3 + 3")
	h.Add("4 + 4") // exceeds maxSize of 3, evicts oldest

	assert.Equal(t, []string{"2 + 2", "3 + 3", "4 + 4"}, h.All())
	assert.Equal(t, "4 + 4", h.Previous())
	assert.Equal(t, "3 + 3", h.Previous())
	assert.Equal(t, "4 + 4", h.Next())
}

func TestCommandHistorySkipsEmptyAndDuplicates(t *testing.T) {
	h := repl.NewCommandHistory(10)
	h.Add("")
	h.Add("x")
	h.Add("x")
	assert.Equal(t, 1, h.Size())
}

func TestThresholdWatcherFiresOnce(t *testing.T) {
	w := repl.NewThresholdWatcher()
	th := w.Add(8) // fires once a value reaches 8 significant bits

	small, err := repl.Evaluate("100")
	require.NoError(t, err)
	_, fired := w.Check(small)
	assert.False(t, fired, "100 has fewer than 8 bits")

	big, err := repl.Evaluate("1000")
	require.NoError(t, err)
	_, fired = w.Check(big)
	assert.True(t, fired, "1000 has at least 8 bits")
	assert.True(t, th.Fired)

	_, fired = w.Check(big)
	assert.False(t, fired, "threshold should not refire once tripped")
}

func TestREPLRunEchoesResults(t *testing.T) {
	in := strings.NewReader("1 + 1\n2 * 3\nexit\n")
	var out bytes.Buffer

	r := repl.New(in, &out, "> ", 100)
	err := r.Run()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "2\n")
	assert.Contains(t, out.String(), "6\n")
	assert.Equal(t, 2, r.History().Size())
}
