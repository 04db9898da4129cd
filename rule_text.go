package meta

// Text matches a double-quoted string literal, decoding backslash
// escapes as it scans, and records the decoded value under Property
// when Property is set. It fails on an empty string unless AllowEmpty
// is set.
type Text struct {
	baseRule
	Property   *Symbol
	AllowEmpty bool
}

func NewText(id int, property *Symbol, allowEmpty bool) *Text {
	return &Text{baseRule{id}, property, allowEmpty}
}

func (r *Text) Parse(p *parser, offset int) ParseOutcome {
	n, decoded, ok := scanQuotedString(p.input, offset)
	if !ok {
		return outcomeErr(EmptyRange(offset), newErr(ExpectedText, r.id))
	}
	if decoded == "" && !r.AllowEmpty {
		return outcomeErr(EmptyRange(offset), newErr(EmptyTextNotAllowed, r.id))
	}
	rg := NewRange(offset, n)
	if r.Property != nil {
		p.events.Push(rg, StringData(r.Property, decoded))
	}
	return outcomeOK(rg)
}
