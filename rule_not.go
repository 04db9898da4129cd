package meta

// Not is a zero-width negative lookahead: it succeeds, consuming
// nothing, exactly when its child rule fails to match at the current
// offset. Whatever events the child would have produced are
// discarded regardless of which way it goes.
type Not struct {
	baseRule
	Rule Rule
}

func NewNot(id int, rule Rule) *Not { return &Not{baseRule{id}, rule} }

func (r *Not) Parse(p *parser, offset int) ParseOutcome {
	mark := p.events.Snapshot()
	out := r.Rule.Parse(p, offset)
	p.events.Truncate(mark)
	if out.ok() {
		return outcomeErr(EmptyRange(offset), newErr(InvalidRule, r.id))
	}
	return outcomeOK(EmptyRange(offset))
}
