package meta

// parse runs grammar against input starting at its root rule and
// returns the flat event stream it produces, or the furthest-reaching
// error if the root rule fails to match the whole input.
func parse(grammar *Grammar, input []rune) ([]Event, *RangeError) {
	root := grammar.ruleAt(grammar.Root())
	if root == nil {
		return nil, errAt(EmptyRange(0), newErr(NoRules, 0))
	}

	p := newParser(grammar, input)
	out := root.Parse(p, 0)
	if !out.ok() {
		return nil, out.Err
	}
	if out.Range.NextOffset() != len(input) {
		endErr := errAt(EmptyRange(out.Range.NextOffset()), newErr(ExpectedEnd, root.debugID()))
		return nil, retErr(endErr, out.Far)
	}
	return p.events.Events(), nil
}

// syntax parses a meta-language grammar definition and converts it
// into an executable Grammar, applying Grammar.Optimize() unless the
// caller's Config disables it.
func syntax(text string, cfg *Config) (*Grammar, error) {
	boot := BootstrapGrammar()
	if rerr := boot.Resolve(); rerr != nil {
		return nil, rerr
	}
	events, err := parse(boot, []rune(text))
	if err != nil {
		return nil, err
	}
	g, convErr := convertEvents(events)
	if convErr != nil {
		return nil, convErr
	}
	if cfg == nil || cfg.GetBool("compiler.optimize") {
		g.Optimize()
	}
	return g, nil
}
