package meta

import "fmt"

// Node/field names the bootstrap grammar tags its own productions
// with. convert.go dispatches on these when rebuilding a Grammar from
// a parsed event stream. Every rule body is reached through a "rule"
// (or, inside separated_by, "by") wrapper node: the bootstrap grammar
// wraps each textual rule occurrence twice, once for the property it
// fills (rule/by) and once for the concrete kind that matched
// (tag/sequence/...), so convertRuleRef always consumes the outer
// wrapper before convertRuleBody dispatches on the inner one.
const (
	nodeDocument     = "document"
	nodeNode         = "node"
	nodeRule         = "rule"
	nodeOpt          = "opt"
	nodeWhitespace   = "whitespace"
	nodeTag          = "tag"
	nodeUntilAnyOrWs = "until_any_or_whitespace"
	nodeUntilAny     = "until_any"
	nodeText         = "text"
	nodeNumber       = "number"
	nodeReference    = "reference"
	nodeSequence     = "sequence"
	nodeSelect       = "select"
	nodeSeparatedBy  = "separated_by"
	nodeRepeat       = "repeat"
	nodeLines        = "lines"
	nodeOptional     = "optional"
	nodeNot          = "not"

	fieldID            = "id"
	fieldName          = "name"
	fieldRule          = "rule"
	fieldBy            = "by"
	fieldProperty      = "property"
	fieldOptional      = "optional"
	fieldNotFlag       = "not"
	fieldInverted      = "inverted"
	fieldText          = "text"
	fieldAnyCharacters = "any_characters"
	fieldAllowEmpty    = "allow_empty"
	fieldAllowTrail    = "allow_trail"
	fieldIndent        = "indent"
)

// ruleKinds lists every production convertRuleBody knows how to build
// a Rule from. convertVariadic consults it to decide which
// sequence/select children to convert: any other child (an
// unrecognized kind, or a wrapper with no inner node) is skipped and
// recorded as ignored.
var ruleKinds = map[string]bool{
	nodeWhitespace: true, nodeTag: true,
	nodeUntilAnyOrWs: true, nodeUntilAny: true,
	nodeText: true, nodeNumber: true, nodeReference: true,
	nodeSequence: true, nodeSelect: true, nodeSeparatedBy: true,
	nodeRepeat: true, nodeLines: true, nodeOptional: true, nodeNot: true,
}

// eventReader is a cursor over a flat event slice, matching the
// teacher's tree-reader idiom adapted to this engine's flat
// MetaData stream instead of an arena tree.
type eventReader struct {
	events []Event
	pos    int
}

func newEventReader(events []Event) *eventReader {
	return &eventReader{events: events}
}

func (rd *eventReader) peek() *Event {
	if rd.pos >= len(rd.events) {
		return nil
	}
	return &rd.events[rd.pos]
}

// peekAt looks ahead off events from the cursor without consuming
// anything, used to inspect the inner kind wrapped by an outer
// rule/by node before deciding whether to descend into it.
func (rd *eventReader) peekAt(off int) *Event {
	i := rd.pos + off
	if i < 0 || i >= len(rd.events) {
		return nil
	}
	return &rd.events[i]
}

func (rd *eventReader) next() *Event {
	e := rd.peek()
	if e != nil {
		rd.pos++
	}
	return e
}

func (rd *eventReader) atStart(name string) bool {
	e := rd.peek()
	return e != nil && e.Data.Kind == StartNodeEvent && e.Data.Name.String() == name
}

func (rd *eventReader) expectStart(name string) error {
	e := rd.next()
	if e == nil || e.Data.Kind != StartNodeEvent || e.Data.Name.String() != name {
		return fmt.Errorf("convert: expected start of %q", name)
	}
	return nil
}

func (rd *eventReader) expectEnd(name string) error {
	e := rd.next()
	if e == nil || e.Data.Kind != EndNodeEvent || e.Data.Name.String() != name {
		return fmt.Errorf("convert: expected end of %q", name)
	}
	return nil
}

func (rd *eventReader) readString(name string) (string, bool) {
	e := rd.peek()
	if e != nil && e.Data.Kind == StringEvent && e.Data.Name.String() == name {
		rd.pos++
		return e.Data.StringValue, true
	}
	return "", false
}

func (rd *eventReader) readBool(name string) (bool, bool) {
	e := rd.peek()
	if e != nil && e.Data.Kind == BoolEvent && e.Data.Name.String() == name {
		rd.pos++
		return e.Data.BoolValue, true
	}
	return false, false
}

func (rd *eventReader) readNumber(name string) (float64, bool) {
	e := rd.peek()
	if e != nil && e.Data.Kind == NumberEvent && e.Data.Name.String() == name {
		rd.pos++
		return e.Data.NumberValue, true
	}
	return 0, false
}

// readFlagNode reads a StartNode(wrapper)..Bool(field)..EndNode(wrapper)
// span, the shape the shared "opt" production always produces, and
// returns the flag's value.
func (rd *eventReader) readFlagNode(wrapper, field string) (bool, bool) {
	if !rd.atStart(wrapper) {
		return false, false
	}
	rd.pos++
	v, _ := rd.readBool(field)
	rd.expectEnd(wrapper)
	return v, true
}

// skipSubtree consumes one full StartNode..EndNode span (or, for a
// non-node leaf event, just that one event) and returns the range it
// covered. Used to step over a production this converter doesn't
// recognize without aborting the whole conversion.
func (rd *eventReader) skipSubtree() Range {
	e := rd.next()
	if e == nil {
		return Range{}
	}
	if e.Data.Kind != StartNodeEvent {
		return e.Range
	}
	start := e.Range
	last := e.Range
	for depth := 1; depth > 0; {
		child := rd.next()
		if child == nil {
			break
		}
		last = child.Range
		switch child.Data.Kind {
		case StartNodeEvent:
			depth++
		case EndNodeEvent:
			depth--
		}
	}
	return last.Subtract(start)
}

// converter accumulates the Grammar being built from an event stream
// and a monotonic debug-id counter for the rules it constructs.
type converter struct {
	grammar *Grammar
	nextID  int
}

func newConverter() *converter {
	return &converter{grammar: NewGrammar(), nextID: 1}
}

func (c *converter) id() int {
	id := c.nextID
	c.nextID++
	return id
}

// convertEvents rebuilds a Grammar from the flat event stream
// produced by parsing grammar-definition text with the bootstrap
// grammar: a sequence of "node" definitions, each naming a
// production and its rule body, pushed into the table as they're
// read. Node references left by name are fixed up once by a single
// Grammar.Resolve call at the end.
func convertEvents(events []Event) (*Grammar, error) {
	rd := newEventReader(events)
	c := newConverter()

	for rd.atStart(nodeNode) {
		if err := c.convertNodeDef(rd); err != nil {
			return nil, err
		}
	}
	if rd.peek() != nil {
		return nil, fmt.Errorf("convert: unexpected trailing events")
	}
	if err := c.grammar.Resolve(); err != nil {
		return nil, err
	}
	return c.grammar, nil
}

func (c *converter) convertNodeDef(rd *eventReader) error {
	if err := rd.expectStart(nodeNode); err != nil {
		return err
	}
	rd.readNumber(fieldID)
	name, ok := rd.readString(fieldName)
	if !ok {
		return fmt.Errorf("convert: node definition missing a name")
	}
	body, err := c.convertRuleRef(rd, fieldRule)
	if err != nil {
		return err
	}
	if err := rd.expectEnd(nodeNode); err != nil {
		return err
	}
	c.grammar.Push(Intern(name), body)
	return nil
}

// convertRuleRef reads a wrapper node (StartNode(wrapper) around
// whichever concrete kind matched) and returns the Rule it describes.
// Every rule occurrence in the textual syntax is reached through one
// of these wrappers — "rule" for a sequence/select/optional/etc.
// member, "by" for a separated_by's delimiter.
func (c *converter) convertRuleRef(rd *eventReader, wrapper string) (Rule, error) {
	if err := rd.expectStart(wrapper); err != nil {
		return nil, err
	}
	body, err := c.convertRuleBody(rd)
	if err != nil {
		return nil, err
	}
	if err := rd.expectEnd(wrapper); err != nil {
		return nil, err
	}
	return body, nil
}

// convertRuleBody dispatches on the inner kind node (tag, sequence,
// reference, ...) that convertRuleRef's wrapper surrounds.
func (c *converter) convertRuleBody(rd *eventReader) (Rule, error) {
	e := rd.peek()
	if e == nil || e.Data.Kind != StartNodeEvent {
		return nil, fmt.Errorf("convert: expected a rule body")
	}
	switch e.Data.Name.String() {
	case nodeWhitespace:
		return c.convertWhitespace(rd)
	case nodeTag:
		return c.convertTag(rd)
	case nodeUntilAnyOrWs:
		return c.convertUntilLike(rd, nodeUntilAnyOrWs, func(cs string, ae bool, p *Symbol) Rule {
			return NewUntilAnyOrWhitespace(c.id(), cs, ae, p)
		})
	case nodeUntilAny:
		return c.convertUntilLike(rd, nodeUntilAny, func(cs string, ae bool, p *Symbol) Rule {
			return NewUntilAny(c.id(), cs, ae, p)
		})
	case nodeText:
		return c.convertText(rd)
	case nodeNumber:
		return c.convertNumberRule(rd)
	case nodeReference:
		return c.convertReference(rd)
	case nodeSequence:
		return c.convertVariadic(rd, nodeSequence, func(rs []Rule) Rule { return NewSequence(c.id(), rs) })
	case nodeSelect:
		return c.convertVariadic(rd, nodeSelect, func(rs []Rule) Rule { return NewSelect(c.id(), rs) })
	case nodeSeparatedBy:
		return c.convertSeparatedBy(rd)
	case nodeRepeat:
		return c.convertRepeat(rd)
	case nodeLines:
		return c.convertLinesRule(rd)
	case nodeOptional:
		return c.convertOptionalRule(rd)
	case nodeNot:
		return c.convertNotRule(rd)
	default:
		return nil, fmt.Errorf("convert: unknown rule kind %q", e.Data.Name.String())
	}
}

func (c *converter) convertWhitespace(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeWhitespace); err != nil {
		return nil, err
	}
	optional, _ := rd.readFlagNode(nodeOpt, fieldOptional)
	if err := rd.expectEnd(nodeWhitespace); err != nil {
		return nil, err
	}
	base := NewWhitespace(c.id())
	if optional {
		return NewOptional(c.id(), base), nil
	}
	return base, nil
}

func (c *converter) convertTag(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeTag); err != nil {
		return nil, err
	}
	not, _ := rd.readBool(fieldNotFlag)
	text, _ := rd.readString(fieldText)
	inverted, _ := rd.readBool(fieldInverted)
	property, hasProperty := rd.readString(fieldProperty)
	if err := rd.expectEnd(nodeTag); err != nil {
		return nil, err
	}
	if hasProperty {
		return NewTagProp(c.id(), text, not, Intern(property), inverted), nil
	}
	return NewTag(c.id(), text, not), nil
}

func (c *converter) convertUntilLike(rd *eventReader, name string, build func(charset string, allowEmpty bool, property *Symbol) Rule) (Rule, error) {
	if err := rd.expectStart(name); err != nil {
		return nil, err
	}
	charset, _ := rd.readString(fieldAnyCharacters)
	allowEmpty, _ := rd.readBool(fieldAllowEmpty)
	var property *Symbol
	if p, ok := rd.readString(fieldProperty); ok {
		property = Intern(p)
	}
	if err := rd.expectEnd(name); err != nil {
		return nil, err
	}
	return build(charset, allowEmpty, property), nil
}

func (c *converter) convertText(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeText); err != nil {
		return nil, err
	}
	allowEmpty, _ := rd.readBool(fieldAllowEmpty)
	var property *Symbol
	if p, ok := rd.readString(fieldProperty); ok {
		property = Intern(p)
	}
	if err := rd.expectEnd(nodeText); err != nil {
		return nil, err
	}
	return NewText(c.id(), property, allowEmpty), nil
}

func (c *converter) convertNumberRule(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeNumber); err != nil {
		return nil, err
	}
	var property *Symbol
	if p, ok := rd.readString(fieldProperty); ok {
		property = Intern(p)
	}
	if err := rd.expectEnd(nodeNumber); err != nil {
		return nil, err
	}
	return NewNumber(c.id(), property), nil
}

func (c *converter) convertReference(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeReference); err != nil {
		return nil, err
	}
	target, ok := rd.readString(fieldName)
	if !ok {
		return nil, fmt.Errorf("convert: reference missing a name")
	}
	property := target
	if p, ok := rd.readString(fieldProperty); ok {
		property = p
	}
	if err := rd.expectEnd(nodeReference); err != nil {
		return nil, err
	}
	return NewNodeRef(c.id(), Intern(property), Intern(target)), nil
}

// convertVariadic reads one or more "rule"-wrapped children of a
// sequence/select production, collapsing to the bare child when
// there's only one. A wrapped child whose inner kind isn't
// recognized is skipped and recorded as ignored rather than aborting
// the whole conversion.
func (c *converter) convertVariadic(rd *eventReader, name string, build func([]Rule) Rule) (Rule, error) {
	if err := rd.expectStart(name); err != nil {
		return nil, err
	}
	var children []Rule
	for rd.atStart(fieldRule) {
		inner := rd.peekAt(1)
		if inner == nil || inner.Data.Kind != StartNodeEvent || !ruleKinds[inner.Data.Name.String()] {
			label := fieldRule
			if inner != nil && inner.Data.Kind == StartNodeEvent {
				label = inner.Data.Name.String()
			}
			rg := rd.skipSubtree()
			c.grammar.addIgnored(rg, label)
			continue
		}
		child, err := c.convertRuleRef(rd, fieldRule)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if err := rd.expectEnd(name); err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("convert: %s has no children", name)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return build(children), nil
}

func (c *converter) convertSeparatedBy(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeSeparatedBy); err != nil {
		return nil, err
	}
	min := 1
	if v, ok := rd.readFlagNode(nodeOpt, fieldOptional); ok && v {
		min = 0
	}
	allowTrail, _ := rd.readBool(fieldAllowTrail)
	by, err := c.convertRuleRef(rd, fieldBy)
	if err != nil {
		return nil, err
	}
	item, err := c.convertRuleRef(rd, fieldRule)
	if err != nil {
		return nil, err
	}
	if err := rd.expectEnd(nodeSeparatedBy); err != nil {
		return nil, err
	}
	return NewSeparateBy(c.id(), item, by, min, allowTrail), nil
}

func (c *converter) convertRepeat(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeRepeat); err != nil {
		return nil, err
	}
	min := 1
	if v, ok := rd.readFlagNode(nodeOpt, fieldOptional); ok && v {
		min = 0
	}
	inner, err := c.convertRuleRef(rd, fieldRule)
	if err != nil {
		return nil, err
	}
	if err := rd.expectEnd(nodeRepeat); err != nil {
		return nil, err
	}
	return NewRepeat(c.id(), inner, min), nil
}

func (c *converter) convertLinesRule(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeLines); err != nil {
		return nil, err
	}
	indent, _ := rd.readBool(fieldIndent)
	inner, err := c.convertRuleRef(rd, fieldRule)
	if err != nil {
		return nil, err
	}
	if err := rd.expectEnd(nodeLines); err != nil {
		return nil, err
	}
	return NewLines(c.id(), inner, indent, 4), nil
}

func (c *converter) convertOptionalRule(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeOptional); err != nil {
		return nil, err
	}
	inner, err := c.convertRuleRef(rd, fieldRule)
	if err != nil {
		return nil, err
	}
	if err := rd.expectEnd(nodeOptional); err != nil {
		return nil, err
	}
	return NewOptional(c.id(), inner), nil
}

func (c *converter) convertNotRule(rd *eventReader) (Rule, error) {
	if err := rd.expectStart(nodeNot); err != nil {
		return nil, err
	}
	inner, err := c.convertRuleRef(rd, fieldRule)
	if err != nil {
		return nil, err
	}
	if err := rd.expectEnd(nodeNot); err != nil {
		return nil, err
	}
	return NewNot(c.id(), inner), nil
}
