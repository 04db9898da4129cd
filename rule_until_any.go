package meta

// UntilAny consumes characters up to (not including) the first
// occurrence of any rune in CharSet, or to the end of input if none
// occurs. It fails on an empty match unless AllowEmpty is set, and
// records the captured text under Property when Property is set.
type UntilAny struct {
	baseRule
	CharSet    string
	AllowEmpty bool
	Property   *Symbol
}

func NewUntilAny(id int, charSet string, allowEmpty bool, property *Symbol) *UntilAny {
	return &UntilAny{baseRule{id}, charSet, allowEmpty, property}
}

func (r *UntilAny) Parse(p *parser, offset int) ParseOutcome {
	n := scanUntilAny(p.input, offset, []rune(r.CharSet))
	if n == 0 && !r.AllowEmpty {
		return outcomeErr(EmptyRange(offset), newErr(ExpectedSomething, r.id))
	}
	rg := NewRange(offset, n)
	if r.Property != nil {
		p.events.Push(rg, StringData(r.Property, rg.Text(p.input)))
	}
	return outcomeOK(rg)
}

// UntilAnyOrWhitespace is UntilAny extended to also stop at the next
// whitespace character, used to read a bare token up to a delimiter
// without swallowing the separator that follows it.
type UntilAnyOrWhitespace struct {
	baseRule
	CharSet    string
	AllowEmpty bool
	Property   *Symbol
}

func NewUntilAnyOrWhitespace(id int, charSet string, allowEmpty bool, property *Symbol) *UntilAnyOrWhitespace {
	return &UntilAnyOrWhitespace{baseRule{id}, charSet, allowEmpty, property}
}

func (r *UntilAnyOrWhitespace) Parse(p *parser, offset int) ParseOutcome {
	n := scanUntilAnyOrWhitespace(p.input, offset, []rune(r.CharSet))
	if n == 0 && !r.AllowEmpty {
		return outcomeErr(EmptyRange(offset), newErr(ExpectedSomething, r.id))
	}
	rg := NewRange(offset, n)
	if r.Property != nil {
		p.events.Push(rg, StringData(r.Property, rg.Text(p.input)))
	}
	return outcomeOK(rg)
}
