package meta

// parser is the mutable state threaded through a single top-level
// parse: the input text, the grammar being interpreted, the event
// buffer rules append to as they match, and the innermost indentation
// context a recursively-nested Lines{Indent: true} rule derives its
// own required column from.
type parser struct {
	input   []rune
	grammar *Grammar
	events  *EventBuffer
	indent  *indentContext
}

func newParser(grammar *Grammar, input []rune) *parser {
	return &parser{input: input, grammar: grammar, events: NewEventBuffer()}
}

// ParseOutcome is the uniform result every Rule.Parse call returns: on
// success, Range is the span consumed and Err is nil; on failure,
// Range anchors where the failure was detected (for furthest-reach
// comparison) and Err describes it. Far carries the furthest-reaching
// error seen along a branch that still went on to succeed — an
// abandoned Select alternative, an Optional's failed attempt, the
// iteration that stopped a Repeat or SeparateBy — so a later failure
// elsewhere in the parse can still report it instead of a less useful
// one closer to where the parse actually gave up.
type ParseOutcome struct {
	Range Range
	Err   *RangeError
	Far   *RangeError
}

func (o ParseOutcome) ok() bool {
	return o.Err == nil
}

func outcomeOK(rg Range) ParseOutcome {
	return ParseOutcome{Range: rg}
}

// outcomeOKFar is outcomeOK with a far-error attached.
func outcomeOKFar(rg Range, far *RangeError) ParseOutcome {
	return ParseOutcome{Range: rg, Far: far}
}

func outcomeErr(rg Range, err ParseError) ParseOutcome {
	return ParseOutcome{Range: rg, Err: errAt(rg, err)}
}

// Rule is the sum type every parser combinator variant implements. A
// Rule never panics on malformed input: failure is communicated
// through ParseOutcome.Err, and a failed Parse must leave the event
// buffer exactly as it found it (rolled back via the parser's
// EventBuffer.Truncate, not left half-written).
type Rule interface {
	// Parse attempts to match the rule against p.input starting at
	// offset. On success it returns the consumed Range and appends any
	// events this rule (or its children) produce. On failure it
	// returns a failing ParseOutcome and leaves the event buffer
	// unchanged from before the call.
	Parse(p *parser, offset int) ParseOutcome

	// debugID identifies this rule instance for error reporting; it
	// is assigned when the rule is constructed or converted from the
	// event stream.
	debugID() int
}

// baseRule carries the debug id every concrete Rule embeds.
type baseRule struct {
	id int
}

func (b baseRule) debugID() int { return b.id }
