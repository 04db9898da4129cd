package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammarPushAndIndexOf(t *testing.T) {
	g := NewGrammar()
	a := Intern("a")
	b := Intern("b")

	idxA := g.Push(a, NewTag(1, "x", false))
	idxB := g.Push(b, NewTag(2, "y", false))

	require.Equal(t, 0, idxA)
	require.Equal(t, 1, idxB)
	require.Equal(t, 0, g.Root())

	got, ok := g.IndexOf(b)
	require.True(t, ok)
	require.Equal(t, idxB, got)

	_, ok = g.IndexOf(Intern("missing"))
	require.False(t, ok)
}

func TestGrammarResolveFixesForwardReference(t *testing.T) {
	g := NewGrammar()
	aSym := Intern("a")
	bSym := Intern("b")

	// a = b "!" ; a references b before b is pushed.
	aBody := NewSequence(1, []Rule{
		NewNodeRef(2, aSym, bSym),
		NewTag(3, "!", false),
	})
	g.Push(aSym, aBody)
	g.Push(bSym, NewTag(4, "ok", false))

	require.NoError(t, g.Resolve())

	events, err := parse(g, []rune("ok!"))
	require.Nil(t, err)
	require.NotEmpty(t, events)
}

func TestGrammarResolveFailsOnUnknownReference(t *testing.T) {
	g := NewGrammar()
	aSym := Intern("a")
	g.Push(aSym, NewNodeRef(1, aSym, Intern("ghost")))

	err := g.Resolve()
	require.Error(t, err)
}

func TestGrammarIgnored(t *testing.T) {
	g := NewGrammar()
	g.addIgnored(NewRange(0, 3), "leading comment")
	require.Len(t, g.Ignored(), 1)
	require.Equal(t, "leading comment", g.Ignored()[0].Label)
}

func TestGrammarRecursiveSelfReference(t *testing.T) {
	g := NewGrammar()
	listSym := Intern("list")

	// list = "(" list ")" | "x"
	body := NewSelect(1, []Rule{
		NewSequence(2, []Rule{
			NewTag(3, "(", false),
			NewNodeRef(4, listSym, listSym),
			NewTag(5, ")", false),
		}),
		NewTag(6, "x", false),
	})
	g.Push(listSym, body)
	require.NoError(t, g.Resolve())

	events, err := parse(g, []rune("((x))"))
	require.Nil(t, err)
	require.NotEmpty(t, events)

	startCount := 0
	for _, e := range events {
		if e.Data.Kind == StartNodeEvent {
			startCount++
		}
	}
	// The root rule is not wrapped in a node; only the two nested
	// references to list emit StartNode.
	require.Equal(t, 2, startCount)
}
