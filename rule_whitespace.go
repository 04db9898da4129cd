package meta

// Whitespace matches one or more whitespace characters. It is
// normally used between significant tokens and emits no events of its
// own.
type Whitespace struct {
	baseRule
}

func NewWhitespace(id int) *Whitespace { return &Whitespace{baseRule{id}} }

func (r *Whitespace) Parse(p *parser, offset int) ParseOutcome {
	n := scanWhitespace(p.input, offset)
	if n == 0 {
		return outcomeErr(EmptyRange(offset), newErr(ExpectedWhitespace, r.id))
	}
	return outcomeOK(NewRange(offset, n))
}
