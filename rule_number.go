package meta

// Number matches an optionally-signed decimal or floating point
// literal and, when Name is set, records its parsed value.
type Number struct {
	baseRule
	Name *Symbol
}

func NewNumber(id int, name *Symbol) *Number { return &Number{baseRule{id}, name} }

func (r *Number) Parse(p *parser, offset int) ParseOutcome {
	n, v, ok := scanNumber(p.input, offset)
	if !ok {
		return outcomeErr(EmptyRange(offset), newErr(ExpectedNumber, r.id))
	}
	rg := NewRange(offset, n)
	if r.Name != nil {
		p.events.Push(rg, NumberData(r.Name, v))
	}
	return outcomeOK(rg)
}
