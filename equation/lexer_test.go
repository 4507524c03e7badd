package equation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	kinds := func(toks []token) []tokenKind {
		out := make([]tokenKind, len(toks))
		for i, tk := range toks {
			out[i] = tk.kind
		}
		return out
	}

	tests := []struct {
		expr      string
		wantKinds []tokenKind
		wantTexts []string
	}{
		{"2x+3y-4z", []tokenKind{tokNumber, tokIdent, tokSign, tokNumber, tokIdent, tokSign, tokNumber, tokIdent},
			[]string{"2", "x", "+", "3", "y", "-", "4", "z"}},
		{"-x", []tokenKind{tokSign, tokIdent}, []string{"-", "x"}},
		{"0.25ab_1", []tokenKind{tokNumber, tokIdent}, []string{"0.25", "ab_1"}},
		{"x=y", []tokenKind{tokIdent, tokEquals, tokIdent}, []string{"x", "=", "y"}},
		{"2*x", []tokenKind{tokNumber, tokInvalid, tokIdent}, []string{"2", "*", "x"}},
		{"3λ", []tokenKind{tokNumber, tokIdent}, []string{"3", "λ"}},
		{"", []tokenKind{}, []string{}},
	}

	for _, tc := range tests {
		toks := tokenize(tc.expr)
		assert.Equal(t, tc.wantKinds, kinds(toks), tc.expr)

		texts := make([]string, len(toks))
		for i, tk := range toks {
			texts[i] = tk.text
		}
		assert.Equal(t, tc.wantTexts, texts, tc.expr)
	}
}

func TestTokenize_Offsets(t *testing.T) {
	t.Parallel()

	toks := tokenize("x+12y")
	assert.Equal(t, []int{0, 1, 2, 4}, []int{toks[0].off, toks[1].off, toks[2].off, toks[3].off})
	assert.True(t, toks[1].negative() == false)
	assert.True(t, tokenize("-")[0].negative())
}
