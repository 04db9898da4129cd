package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrySelectToFastSelectBuildsTable(t *testing.T) {
	sel := NewSelect(1, []Rule{
		NewTag(2, "if", false),
		NewTag(3, "else", false),
		NewTag(4, "end", false),
	})

	rewritten := trySelectToFastSelect(sel)
	fs, ok := rewritten.(*FastSelect)
	require.True(t, ok, "select with fully static first bytes should become a FastSelect")
	require.Equal(t, sel.Rules[0], fs.Table['i'])
	require.Equal(t, sel.Rules[1], fs.Table['e'])
	// "end" shares its first byte with "else", so it falls back into the tail.
	require.NotNil(t, fs.Tail)
	tail, ok := fs.Tail.(*Select)
	require.True(t, ok)
	require.Equal(t, []Rule{sel.Rules[2]}, tail.Rules)
}

func TestTrySelectToFastSelectCollisionFallsBackToTail(t *testing.T) {
	sel := NewSelect(1, []Rule{
		NewTag(2, "either", false),
		NewTag(3, "else", false),
	})

	rewritten := trySelectToFastSelect(sel)
	fs, ok := rewritten.(*FastSelect)
	require.True(t, ok)
	require.Equal(t, sel.Rules[0], fs.Table['e'])
	require.NotNil(t, fs.Tail)

	tail, ok := fs.Tail.(*Select)
	require.True(t, ok)
	require.Equal(t, []Rule{sel.Rules[1]}, tail.Rules)
}

func TestTrySelectToFastSelectLeavesUndeterminableSelectUnchanged(t *testing.T) {
	sel := NewSelect(1, []Rule{
		NewUntilAny(2, ",", false, nil),
		NewWhitespace(3),
	})

	rewritten := trySelectToFastSelect(sel)
	require.Same(t, sel, rewritten)
}

func TestFirstBytesDoubleNegationCollapses(t *testing.T) {
	inner := NewTag(1, "x", false)
	doubled := NewNot(3, NewNot(2, inner))

	set, ok := firstBytes(doubled)
	require.True(t, ok)
	require.True(t, set['x'])
}

func TestFirstBytesSingleNegationIsUndeterminable(t *testing.T) {
	_, ok := firstBytes(NewNot(1, NewTag(2, "x", false)))
	require.False(t, ok)
}

func TestFirstBytesSequenceDelegatesToFirstChild(t *testing.T) {
	seq := NewSequence(1, []Rule{
		NewTag(2, "a", false),
		NewTag(3, "b", false),
	})
	set, ok := firstBytes(seq)
	require.True(t, ok)
	require.True(t, set['a'])
	require.False(t, set['b'])
}

func TestOptimizeRuleRecursesIntoComposites(t *testing.T) {
	inner := NewSelect(1, []Rule{
		NewTag(2, "if", false),
		NewTag(3, "else", false),
	})
	seq := NewSequence(4, []Rule{inner, NewTag(5, "x", false)})

	optimized := optimizeRule(seq).(*Sequence)
	_, ok := optimized.Rules[0].(*FastSelect)
	require.True(t, ok, "optimizeRule should rewrite a Select nested inside a Sequence")
}

func TestGrammarOptimizeRewritesPushedRules(t *testing.T) {
	g := NewGrammar()
	g.Push(Intern("kw"), NewSelect(1, []Rule{
		NewTag(2, "if", false),
		NewTag(3, "else", false),
	}))

	g.Optimize()

	idx, ok := g.IndexOf(Intern("kw"))
	require.True(t, ok)
	_, isFast := g.ruleAt(idx).(*FastSelect)
	require.True(t, isFast)
}
