package meta

import "fmt"

// IgnoredField records a sequence/select child the converter skipped
// instead of converting (its range in the event stream and the name of
// its node), exposed for introspection and tests rather than surfaced
// as a conversion error.
type IgnoredField struct {
	Range Range
	Label string
}

// Grammar is the executable form of a parsed meta-language
// definition: a flat table of named rules plus whichever one is the
// start rule. Rules reference each other by index into this table
// (via Node), not by pointer, so the table can represent arbitrarily
// recursive and self-referencing grammars without cycles in Go's
// object graph.
type Grammar struct {
	rules     []Rule
	names     []*Symbol
	root      int
	ignored   []IgnoredField
	optimized bool
}

// NewGrammar returns an empty grammar with no rules and no root.
func NewGrammar() *Grammar {
	return &Grammar{root: -1}
}

// Push appends a named rule and returns its index in the table. The
// first rule pushed becomes the root unless SetRoot is called later.
func (g *Grammar) Push(name *Symbol, rule Rule) int {
	idx := len(g.rules)
	g.rules = append(g.rules, rule)
	g.names = append(g.names, name)
	if g.root < 0 {
		g.root = idx
	}
	return idx
}

// SetRoot designates the rule at idx as the grammar's start rule.
func (g *Grammar) SetRoot(idx int) {
	g.root = idx
}

// Root returns the index of the start rule, or -1 if the grammar is
// empty.
func (g *Grammar) Root() int {
	return g.root
}

func (g *Grammar) ruleAt(i int) Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// IndexOf returns the table index of the rule named name.
func (g *Grammar) IndexOf(name *Symbol) (int, bool) {
	for i, n := range g.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// NameAt returns the name of the rule at index i, or nil if i is out
// of range.
func (g *Grammar) NameAt(i int) *Symbol {
	if i < 0 || i >= len(g.names) {
		return nil
	}
	return g.names[i]
}

// Len returns the number of rules in the table.
func (g *Grammar) Len() int {
	return len(g.rules)
}

func (g *Grammar) addIgnored(rg Range, label string) {
	g.ignored = append(g.ignored, IgnoredField{Range: rg, Label: label})
}

// Ignored returns the spans the converter recorded as intentionally
// skipped while building this grammar.
func (g *Grammar) Ignored() []IgnoredField {
	return g.ignored
}

// Resolve walks every rule in the table and fixes up any Node whose
// Index hasn't been set yet, looking its TargetName up in the name
// table. It must be called once after every named rule has been
// pushed and before the grammar is used to parse; it returns an error
// naming the first reference it can't resolve.
func (g *Grammar) Resolve() error {
	if len(g.rules) == 0 {
		return fmt.Errorf("grammar has no rules")
	}
	for _, rule := range g.rules {
		if err := resolveRefs(g, rule); err != nil {
			return err
		}
	}
	return nil
}

func resolveRefs(g *Grammar, rule Rule) error {
	switch r := rule.(type) {
	case *Node:
		if r.Index >= 0 {
			return nil
		}
		idx, ok := g.IndexOf(r.TargetName)
		if !ok {
			return fmt.Errorf("unresolved node reference %q", r.TargetName.String())
		}
		r.Index = idx
		return nil
	case *Not:
		return resolveRefs(g, r.Rule)
	case *Optional:
		return resolveRefs(g, r.Rule)
	case *Repeat:
		return resolveRefs(g, r.Rule)
	case *Lines:
		return resolveRefs(g, r.Item)
	case *Sequence:
		for _, c := range r.Rules {
			if err := resolveRefs(g, c); err != nil {
				return err
			}
		}
		return nil
	case *Select:
		for _, c := range r.Rules {
			if err := resolveRefs(g, c); err != nil {
				return err
			}
		}
		return nil
	case *SeparateBy:
		if err := resolveRefs(g, r.Item); err != nil {
			return err
		}
		return resolveRefs(g, r.Separator)
	case *FastSelect:
		for _, c := range r.Table {
			if c != nil {
				if err := resolveRefs(g, c); err != nil {
					return err
				}
			}
		}
		if r.Tail != nil {
			return resolveRefs(g, r.Tail)
		}
		return nil
	default:
		return nil
	}
}

// Optimize rewrites every Select reachable from the table into a
// FastSelect where a leading run of its children has statically
// determinable, distinct first bytes, leaving the rest of the rule graph and its observable semantics
// unchanged.
func (g *Grammar) Optimize() {
	for i, rule := range g.rules {
		g.rules[i] = optimizeRule(rule)
	}
	g.optimized = true
}
