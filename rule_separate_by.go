package meta

// SeparateBy matches Item rules interleaved with Separator rules
// ("a, b, c"). Min controls whether at least one Item is required (1)
// or zero are acceptable (0). AllowTrail permits, but never requires,
// a dangling trailing Separator with no Item after it. Every
// discarded child error along a path that still lets the overall
// match succeed (a skipped first item when Min is 0, the separator or
// item that finally stopped the loop) is threaded through as a
// far-error rather than dropped.
type SeparateBy struct {
	baseRule
	Item       Rule
	Separator  Rule
	Min        int
	AllowTrail bool
}

func NewSeparateBy(id int, item, separator Rule, min int, allowTrail bool) *SeparateBy {
	return &SeparateBy{baseRule{id}, item, separator, min, allowTrail}
}

func (r *SeparateBy) Parse(p *parser, offset int) ParseOutcome {
	start := offset
	cur := offset
	var far *RangeError

	firstMark := p.events.Snapshot()
	firstOut := r.Item.Parse(p, cur)
	if !firstOut.ok() {
		p.events.Truncate(firstMark)
		if r.Min == 0 {
			return outcomeOKFar(EmptyRange(offset), firstOut.Err)
		}
		return ParseOutcome{Range: EmptyRange(offset), Err: firstOut.Err}
	}
	update(firstOut.Range, firstOut.Far, &cur, &far)

	for {
		sepMark := p.events.Snapshot()
		sepOut := r.Separator.Parse(p, cur)
		if !sepOut.ok() {
			p.events.Truncate(sepMark)
			errUpdate(sepOut.Err, &far)
			break
		}
		afterSep := sepOut.Range.NextOffset()
		errUpdate(sepOut.Far, &far)

		itemOut := r.Item.Parse(p, afterSep)
		if !itemOut.ok() {
			errUpdate(itemOut.Err, &far)
			if r.AllowTrail {
				cur = afterSep
			} else {
				p.events.Truncate(sepMark)
			}
			break
		}
		update(itemOut.Range, itemOut.Far, &cur, &far)
	}

	return outcomeOKFar(NewRange(start, cur-start), far)
}
