package semantic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axiomic"
	"github.com/katalvlaran/axiomic/semantic"
)

// TestParseOp resolves symbols, words and case variants.
func TestParseOp(t *testing.T) {
	cases := map[string]semantic.Op{
		"+": semantic.Add, "-": semantic.Sub, "−": semantic.Sub,
		"*": semantic.Mul, "×": semantic.Mul, "x": semantic.Mul,
		"/": semantic.Div, "÷": semantic.Div,
		"^": semantic.Pow, "**": semantic.Pow,
		"%": semantic.Mod, "MOD": semantic.Mod,
		"AND": semantic.And, "&": semantic.And,
		"Or": semantic.Or, "|": semantic.Or,
		"NOT": semantic.Not, "~": semantic.Not, " ! ": semantic.Not,
	}
	for in, want := range cases {
		got, err := semantic.ParseOp(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := semantic.ParseOp("xor")
	assert.ErrorIs(t, err, axiomic.ErrInvalidInput)
}

// TestOp_String checks display symbols and the fallback for unknown values.
func TestOp_String(t *testing.T) {
	assert.Equal(t, "×", semantic.Mul.String())
	assert.Equal(t, "÷", semantic.Div.String())
	assert.Equal(t, "NOT", semantic.Not.String())
	assert.Equal(t, "Op(99)", semantic.Op(99).String())
	assert.True(t, semantic.Not.Unary())
	assert.False(t, semantic.Add.Unary())
	assert.False(t, semantic.Op(99).Valid())
	assert.Len(t, semantic.Ops(), 9)
}
