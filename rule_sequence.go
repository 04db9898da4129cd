package meta

// Sequence requires every child rule to match in order, starting each
// one where the previous left off, and rolls back entirely if any of
// them fails. A child's own far-error (e.g. from an Optional that
// matched empty after a failed attempt) is threaded through: kept as
// this Sequence's far-error on overall success, folded into the
// returned error on overall failure.
type Sequence struct {
	baseRule
	Rules []Rule
}

func NewSequence(id int, rules []Rule) *Sequence { return &Sequence{baseRule{id}, rules} }

func (r *Sequence) Parse(p *parser, offset int) ParseOutcome {
	if len(r.Rules) == 0 {
		return outcomeErr(EmptyRange(offset), newErr(NoRules, r.id))
	}
	mark := p.events.Snapshot()
	start := offset
	cur := offset
	var far *RangeError
	for _, child := range r.Rules {
		out := child.Parse(p, cur)
		if !out.ok() {
			p.events.Truncate(mark)
			return ParseOutcome{Range: EmptyRange(cur), Err: retErr(out.Err, far)}
		}
		update(out.Range, out.Far, &cur, &far)
	}
	return outcomeOKFar(NewRange(start, cur-start), far)
}
