package meta

// Optional matches its child rule if possible and otherwise succeeds
// with a zero-width match; it never fails. A failed attempt's error is
// kept as a far-error on the synthesized empty success, so a later
// failure elsewhere can still report it instead of losing it silently.
type Optional struct {
	baseRule
	Rule Rule
}

func NewOptional(id int, rule Rule) *Optional { return &Optional{baseRule{id}, rule} }

func (r *Optional) Parse(p *parser, offset int) ParseOutcome {
	mark := p.events.Snapshot()
	out := r.Rule.Parse(p, offset)
	if out.ok() {
		return out
	}
	p.events.Truncate(mark)
	return outcomeOKFar(EmptyRange(offset), out.Err)
}
