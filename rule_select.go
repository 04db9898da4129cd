package meta

// Select tries each child rule in order and succeeds with the first
// one that matches, rolling the event buffer back between failed
// attempts. If every child fails, the furthest-reaching failure is
// reported, per the furthest-reach error policy. On success, the
// furthest-reaching failure among the alternatives that were tried
// and discarded is kept as a far-error rather than lost, merged with
// whatever far-error the winning child itself carried.
type Select struct {
	baseRule
	Rules []Rule
}

func NewSelect(id int, rules []Rule) *Select { return &Select{baseRule{id}, rules} }

func (r *Select) Parse(p *parser, offset int) ParseOutcome {
	if len(r.Rules) == 0 {
		return outcomeErr(EmptyRange(offset), newErr(NoRules, r.id))
	}
	mark := p.events.Snapshot()
	var furthest *RangeError
	for _, child := range r.Rules {
		out := child.Parse(p, offset)
		if out.ok() {
			far := out.Far
			errUpdate(furthest, &far)
			return outcomeOKFar(out.Range, far)
		}
		p.events.Truncate(mark)
		furthest = retErr(out.Err, furthest)
	}
	return ParseOutcome{Range: EmptyRange(offset), Err: furthest}
}
