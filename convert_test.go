package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildEvent is a small helper for hand-assembling an event stream
// directly, bypassing BootstrapGrammar entirely, so conversion edge
// cases that the bootstrap grammar itself can never produce (like an
// unrecognized child production) can still be exercised.
func buildEvent(kind EventKind, name string, rg Range) Event {
	var data MetaData
	switch kind {
	case StartNodeEvent:
		data = StartNode(Intern(name))
	case EndNodeEvent:
		data = EndNode(Intern(name))
	default:
		panic("buildEvent: unsupported kind")
	}
	return Event{Range: rg, Data: data}
}

func buildStringEvent(field, value string, rg Range) Event {
	return Event{Range: rg, Data: StringData(Intern(field), value)}
}

// ruleWrappedTag hand-assembles the two-level StartNode(wrapper)/
// StartNode("tag") shape every rule occurrence in a real event stream
// takes, for a plain unpropertied tag matching text.
func ruleWrappedTag(wrapper, text string, rg Range) []Event {
	return []Event{
		buildEvent(StartNodeEvent, wrapper, rg),
		buildEvent(StartNodeEvent, nodeTag, rg),
		buildStringEvent(fieldText, text, rg),
		buildEvent(EndNodeEvent, nodeTag, rg),
		buildEvent(EndNodeEvent, wrapper, rg),
	}
}

// TestConvertSkipsUnrecognizedSequenceChild exercises the forward
// compatibility path grounded on the original converter's ignore()
// mechanism: a "rule"-wrapped child whose inner kind this converter
// doesn't recognize is skipped and recorded rather than aborting the
// whole conversion.
func TestConvertSkipsUnrecognizedSequenceChild(t *testing.T) {
	var events []Event
	events = append(events, buildEvent(StartNodeEvent, nodeNode, NewRange(0, 0)))
	events = append(events, Event{Range: NewRange(0, 1), Data: NumberData(Intern(fieldID), 1)})
	events = append(events, buildStringEvent(fieldName, "greeting", NewRange(2, 8)))
	events = append(events, buildEvent(StartNodeEvent, fieldRule, NewRange(13, 0)))
	events = append(events, buildEvent(StartNodeEvent, nodeSequence, NewRange(13, 0)))
	events = append(events, ruleWrappedTag(fieldRule, "a", NewRange(14, 3))...)
	events = append(events,
		buildEvent(StartNodeEvent, fieldRule, NewRange(18, 6)),
		buildEvent(StartNodeEvent, "comment", NewRange(18, 6)),
		buildStringEvent("text", "hi there", NewRange(19, 8)),
		buildEvent(EndNodeEvent, "comment", NewRange(24, 0)),
		buildEvent(EndNodeEvent, fieldRule, NewRange(24, 0)),
	)
	events = append(events, ruleWrappedTag(fieldRule, "b", NewRange(25, 3))...)
	events = append(events,
		buildEvent(EndNodeEvent, nodeSequence, NewRange(28, 0)),
		buildEvent(EndNodeEvent, fieldRule, NewRange(28, 0)),
		buildEvent(EndNodeEvent, nodeNode, NewRange(28, 0)),
	)

	g, err := convertEvents(events)
	require.NoError(t, err)

	idx, ok := g.IndexOf(Intern("greeting"))
	require.True(t, ok)
	seq, isSeq := g.ruleAt(idx).(*Sequence)
	require.True(t, isSeq)
	require.Len(t, seq.Rules, 2)

	ignored := g.Ignored()
	require.Len(t, ignored, 1)
	require.Equal(t, "comment", ignored[0].Label)
	require.Equal(t, NewRange(18, 6), ignored[0].Range)
}
