package meta

// Tag matches (or, when Not is set, rejects) a literal string at the
// current offset. A positive Tag consumes the matched text; a
// negative Tag is a zero-width lookahead that succeeds only when the
// tag is absent, and never consumes input either way. When Property
// is set, a successful match emits Bool(property, !inverted) — the
// mechanic the textual notation's "?"/"!" property-suffix pair is
// built from.
type Tag struct {
	baseRule
	Text     string
	Not      bool
	Property *Symbol
	Inverted bool
}

func NewTag(id int, text string, not bool) *Tag {
	return &Tag{baseRule: baseRule{id}, Text: text, Not: not}
}

// NewTagProp builds a Tag that also emits Bool(property, !inverted)
// on a successful match.
func NewTagProp(id int, text string, not bool, property *Symbol, inverted bool) *Tag {
	return &Tag{baseRule: baseRule{id}, Text: text, Not: not, Property: property, Inverted: inverted}
}

func (r *Tag) emitBool(p *parser, rg Range) {
	if r.Property != nil {
		p.events.Push(rg, BoolData(r.Property, !r.Inverted))
	}
}

func (r *Tag) Parse(p *parser, offset int) ParseOutcome {
	n, ok := scanTag(p.input, offset, r.Text)
	if r.Not {
		if ok {
			return outcomeErr(NewRange(offset, n), newTagErr(DidNotExpectTag, r.Text, r.id))
		}
		rg := EmptyRange(offset)
		r.emitBool(p, rg)
		return outcomeOK(rg)
	}
	if !ok {
		return outcomeErr(EmptyRange(offset), newTagErr(ExpectedTag, r.Text, r.id))
	}
	rg := NewRange(offset, n)
	r.emitBool(p, rg)
	return outcomeOK(rg)
}
