package meta

// Node wraps a named sub-rule referenced by index into the owning
// Grammar's rule table — the indirection that lets two rules refer to
// each other, including a rule referring to itself, without forming a
// pointer cycle in Go's object graph. Index starts unresolved (-1)
// when a Node is built from a textual forward reference and is filled
// in by Grammar.Resolve before the grammar is used. Parsing a Node
// brackets its child's events with StartNode/EndNode.
type Node struct {
	baseRule
	Name       *Symbol
	TargetName *Symbol
	Index      int
}

// NewNode builds an already-resolved Node pointing directly at index.
func NewNode(id int, name *Symbol, index int) *Node {
	return &Node{baseRule{id}, name, name, index}
}

// NewNodeRef builds a Node referencing another rule by name, to be
// resolved later by Grammar.Resolve.
func NewNodeRef(id int, name, targetName *Symbol) *Node {
	return &Node{baseRule{id}, name, targetName, -1}
}

func (r *Node) Parse(p *parser, offset int) ParseOutcome {
	rule := p.grammar.ruleAt(r.Index)
	if rule == nil {
		return outcomeErr(EmptyRange(offset), newErr(InvalidRule, r.id))
	}

	mark := p.events.Snapshot()
	p.events.Push(EmptyRange(offset), StartNode(r.Name))
	out := rule.Parse(p, offset)
	if !out.ok() {
		p.events.Truncate(mark)
		return out
	}
	p.events.Push(EmptyRange(out.Range.NextOffset()), EndNode(r.Name))
	return out
}
