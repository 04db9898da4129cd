package meta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntaxBuildsGrammarFromText(t *testing.T) {
	g, err := syntax(`1 "greeting" = "hello"`, nil)
	require.NoError(t, err)

	events, perr := parse(g, []rune("hello"))
	require.Nil(t, perr)
	// The root rule is a bare tag with no property: it matches without
	// recording any event, and parse does not wrap the root in a node.
	require.Empty(t, events)
}

func TestSyntaxRejectsMalformedInput(t *testing.T) {
	_, err := syntax(`1 "greeting" = `, nil)
	require.Error(t, err)
}

func TestSyntaxDefaultConfigOptimizesSelects(t *testing.T) {
	g, err := syntax(`1 "letter" = {"a" "b"}`, nil)
	require.NoError(t, err)

	idx, ok := g.IndexOf(Intern("letter"))
	require.True(t, ok)
	_, isFast := g.ruleAt(idx).(*FastSelect)
	require.True(t, isFast, "default config should optimize a statically dispatchable select")
}

func TestSyntaxHonorsOptimizeDisabled(t *testing.T) {
	cfg := NewConfig()
	cfg.SetBool("compiler.optimize", false)

	g, err := syntax(`1 "letter" = {"a" "b"}`, cfg)
	require.NoError(t, err)

	idx, ok := g.IndexOf(Intern("letter"))
	require.True(t, ok)
	_, isSelect := g.ruleAt(idx).(*Select)
	require.True(t, isSelect, "optimize disabled should leave a plain Select in place")
}

func TestSyntaxMultipleRulesAndReference(t *testing.T) {
	g, err := syntax("1 \"greeting\" = @\"salute\"\n2 \"salute\" = \"hi\"", nil)
	require.NoError(t, err)

	events, perr := parse(g, []rune("hi"))
	require.Nil(t, perr)

	var names []string
	for _, e := range events {
		if e.Data.Kind == StartNodeEvent {
			names = append(names, e.Data.Name.String())
		}
	}
	require.Contains(t, names, "salute")
}

func TestParseReportsFurthestFailure(t *testing.T) {
	g, err := syntax(`1 "word" = ["hello" w! "world"]`, nil)
	require.NoError(t, err)

	_, perr := parse(g, []rune("hello there"))
	require.NotNil(t, perr)
	require.Equal(t, ExpectedTag, perr.Err.Kind)
}

// TestSyntaxKeyValueStyleGrammar exercises a flat, non-indented l?()
// against a small "key = value" grammar in the spirit of the monster
// stat sheet from the original implementation's key_value example:
// unindented repeated lines, each a bare word followed by a number.
func TestSyntaxKeyValueStyleGrammar(t *testing.T) {
	src := `
1 "document" = l?(@"entry")
2 "entry" = [@"key" w! "=" w! @"num"]
3 "key" = ..""!
4 "num" = $
`
	g, err := syntax(strings.TrimSpace(src), nil)
	require.NoError(t, err)

	input := "age = 250\nstrength = 200"
	events, perr := parse(g, []rune(input))
	require.Nil(t, perr)

	var keys []string
	for i, e := range events {
		if e.Data.Kind == StartNodeEvent && e.Data.Name.String() == "key" {
			end := events[i+1]
			keys = append(keys, string([]rune(input)[e.Range.Offset:end.Range.Offset]))
		}
	}
	require.Equal(t, []string{"age", "strength"}, keys)
}

// TestSyntaxIndentedBlockGrammar exercises l!()'s indentation
// sensitivity, in the spirit of the original implementation's
// indentation example: only lines sharing the first line's column
// belong to the block.
func TestSyntaxIndentedBlockGrammar(t *testing.T) {
	g, err := syntax(`1 "document" = l!(@"row")
2 "row" = ..""!`, nil)
	require.NoError(t, err)

	events, perr := parse(g, []rune("  one\n  two"))
	require.Nil(t, perr)
	starts := 0
	for _, e := range events {
		if e.Data.Kind == StartNodeEvent && e.Data.Name.String() == "row" {
			starts++
		}
	}
	require.Equal(t, 2, starts)

	_, perr = parse(g, []rune("  one\n  two\n    three"))
	require.NotNil(t, perr, "a line indented deeper than the block breaks it, leaving input unconsumed")
}

func TestRangeErrorReportPointsAtFailure(t *testing.T) {
	g, err := syntax(`1 "word" = "hello"`, nil)
	require.NoError(t, err)

	_, perr := parse(g, []rune("goodbye"))
	require.NotNil(t, perr)

	report := perr.Report([]rune("goodbye"))
	require.Contains(t, report, "1:1")
	require.Contains(t, report, `expected tag "hello"`)
}
