package meta

// idCounter returns a monotonic debug-id generator yielding 1, 2, 3,
// ... across the whole grammar, which keeps every rule instance
// individually addressable in error reports.
func idCounter() func() int {
	next := 0
	return func() int {
		next++
		return next
	}
}

// BootstrapGrammar hand-builds the grammar that parses the
// meta-language's own textual syntax. A document is a sequence of
// numbered node definitions:
//
//	<id> "<name>" = <rule>
//
// where <rule> is one of the fourteen primitive and composite rule
// kinds, each written with its own operator:
//
//	w?/w!                whitespace, optional/required
//	!"text":!"prop"       a literal tag; a leading "!" negates it, a
//	                      trailing :"prop" (or :!"prop") attaches a
//	                      property the match is recorded under
//	t?/t!:"prop"          a quoted-string literal, allow_empty flag
//	                      first, optional trailing property
//	$:"prop"              a number, optional trailing property
//	.."cs"?/!:"prop"      until-any-or-whitespace over charset "cs"
//	..."cs"?/!:"prop"     until-any over charset "cs"
//	@"name":"prop"        a reference to another production
//	[rule rule ...]       sequence
//	{rule rule ...}       select
//	s?/!.(by){rule}       separated-by, "." marks allow-trailing
//	r?/!(rule)            repeat, zero-or-more / one-or-more
//	l?/!(rule)            lines, flat / indentation-sensitive
//	?rule                 optional
//	!(rule)               negative lookahead
//
// /* */ comments nest and are treated as whitespace anywhere
// whitespace is accepted.
//
// Every production is pushed into the grammar's own rule table under
// its name and cross-references others through Node — the same
// mechanism a grammar converted from text ends up using, which is
// what makes the self-hosting fixed point meaningful: parsing this
// grammar's own textual rendition (see bootstrapSource in
// bootstrap_test.go) through convert.go should rebuild an equivalent
// Grammar.
func BootstrapGrammar() *Grammar {
	g := NewGrammar()
	next := idCounter()

	sym := func(name string) *Symbol { return Intern(name) }

	ref := func(name string) *Node {
		s := sym(name)
		return NewNodeRef(next(), s, s)
	}
	refAs := func(property, target string) *Node {
		return NewNodeRef(next(), sym(property), sym(target))
	}

	tag := func(text string) Rule { return NewTag(next(), text, false) }

	// flagTag builds a bare presence-marker: matching text emits
	// Bool(property, true) and an absent (Optional-wrapped) one
	// contributes nothing, which the converter treats as false.
	flagTag := func(text, property string) Rule {
		return NewTagProp(next(), text, false, sym(property), false)
	}

	// twoSidedFlag builds the "?"/"!" pair mechanic: "?" emits
	// Bool(property, true), "!" emits Bool(property, false), and
	// exactly one of the two must appear.
	twoSidedFlag := func(property string) Rule {
		return NewSelect(next(), []Rule{
			NewTagProp(next(), "?", false, sym(property), false),
			NewTagProp(next(), "!", false, sym(property), true),
		})
	}

	propertySuffix := func() Rule {
		return NewOptional(next(), NewSequence(next(), []Rule{
			tag(":"),
			NewText(next(), sym(fieldProperty), true),
		}))
	}

	wsOpt := func() Rule { return NewOptional(next(), NewWhitespace(next())) }
	wsReq := func() Rule { return NewWhitespace(next()) }

	// opt = {"?"optional "!"!optional}
	optBody := twoSidedFlag(fieldOptional)

	// whitespace = "w" @"opt"
	whitespaceBody := NewSequence(next(), []Rule{tag("w"), ref(nodeOpt)})

	// tag = ?"!"not "text" ?[":" ?"!"inverted "prop"]
	tagBody := NewSequence(next(), []Rule{
		NewOptional(next(), flagTag("!", fieldNotFlag)),
		NewText(next(), sym(fieldText), true),
		NewOptional(next(), NewSequence(next(), []Rule{
			tag(":"),
			NewOptional(next(), flagTag("!", fieldInverted)),
			NewText(next(), sym(fieldProperty), true),
		})),
	})

	// until_any_or_whitespace = ".." "chars" {"?"allow_empty "!"!allow_empty} ?[":" "prop"]
	// The charset literal may itself be empty ("" meaning "stop only at
	// whitespace"), so its own allow_empty is always true.
	untilAnyOrWsBody := NewSequence(next(), []Rule{
		tag(".."),
		NewText(next(), sym(fieldAnyCharacters), true),
		twoSidedFlag(fieldAllowEmpty),
		propertySuffix(),
	})

	// until_any = "..." "chars" {"?"allow_empty "!"!allow_empty} ?[":" "prop"]
	untilAnyBody := NewSequence(next(), []Rule{
		tag("..."),
		NewText(next(), sym(fieldAnyCharacters), true),
		twoSidedFlag(fieldAllowEmpty),
		propertySuffix(),
	})

	// text = "t" {"?"allow_empty "!"!allow_empty} ?[":" "prop"]
	textBody := NewSequence(next(), []Rule{
		tag("t"),
		twoSidedFlag(fieldAllowEmpty),
		propertySuffix(),
	})

	// number = "$" ?[":" "prop"]
	numberBody := NewSequence(next(), []Rule{
		tag("$"),
		propertySuffix(),
	})

	// reference = "@" "name" ?[":" "prop"]
	referenceBody := NewSequence(next(), []Rule{
		tag("@"),
		NewText(next(), sym(fieldName), false),
		propertySuffix(),
	})

	// sequence = "[" w? s!.(w!) {@"rule""rule"} "]"
	sequenceBody := NewSequence(next(), []Rule{
		tag("["),
		wsOpt(),
		NewSeparateBy(next(), refAs(fieldRule, nodeRule), wsReq(), 1, true),
		wsOpt(),
		tag("]"),
	})

	// select = "{" w? s!.(w!) {@"rule""rule"} "}"
	selectBody := NewSequence(next(), []Rule{
		tag("{"),
		wsOpt(),
		NewSeparateBy(next(), refAs(fieldRule, nodeRule), wsReq(), 1, true),
		wsOpt(),
		tag("}"),
	})

	// separated_by = "s" @"opt" ?"."allow_trail "(" w? @"rule""by" w? ")" w? "{" w? @"rule""rule" w? "}"
	separatedByBody := NewSequence(next(), []Rule{
		tag("s"),
		ref(nodeOpt),
		NewOptional(next(), flagTag(".", fieldAllowTrail)),
		tag("("),
		wsOpt(),
		refAs(fieldBy, nodeRule),
		wsOpt(),
		tag(")"),
		wsOpt(),
		tag("{"),
		wsOpt(),
		refAs(fieldRule, nodeRule),
		wsOpt(),
		tag("}"),
	})

	// repeat = "r" @"opt" "(" @"rule""rule" ")"
	repeatBody := NewSequence(next(), []Rule{
		tag("r"),
		ref(nodeOpt),
		tag("("),
		refAs(fieldRule, nodeRule),
		tag(")"),
	})

	// lines = "l" {"?"!indent "!"indent} "(" w? @"rule""rule" w? ")"
	linesBody := NewSequence(next(), []Rule{
		tag("l"),
		NewSelect(next(), []Rule{
			NewTagProp(next(), "?", false, sym(fieldIndent), true),
			NewTagProp(next(), "!", false, sym(fieldIndent), false),
		}),
		tag("("),
		wsOpt(),
		refAs(fieldRule, nodeRule),
		wsOpt(),
		tag(")"),
	})

	// optional = "?" @"rule""rule"
	optionalBody := NewSequence(next(), []Rule{
		tag("?"),
		refAs(fieldRule, nodeRule),
	})

	// not = "!" "(" @"rule""rule" ")"
	notBody := NewSequence(next(), []Rule{
		tag("!"),
		tag("("),
		refAs(fieldRule, nodeRule),
		tag(")"),
	})

	// rule = {@"whitespace""whitespace" ... @"not""not"}
	ruleBody := NewSelect(next(), []Rule{
		refAs(nodeUntilAny, nodeUntilAny),
		refAs(nodeUntilAnyOrWs, nodeUntilAnyOrWs),
		refAs(nodeWhitespace, nodeWhitespace),
		refAs(nodeLines, nodeLines),
		refAs(nodeRepeat, nodeRepeat),
		refAs(nodeSeparatedBy, nodeSeparatedBy),
		refAs(nodeNumber, nodeNumber),
		refAs(nodeText, nodeText),
		refAs(nodeReference, nodeReference),
		refAs(nodeSequence, nodeSequence),
		refAs(nodeSelect, nodeSelect),
		refAs(nodeNot, nodeNot),
		refAs(nodeOptional, nodeOptional),
		refAs(nodeTag, nodeTag),
	})

	// node = w? $"id" w! t!"name" w! "=" w! @"rule""rule"
	nodeBody := NewSequence(next(), []Rule{
		wsOpt(),
		NewNumber(next(), sym(fieldID)),
		wsReq(),
		NewText(next(), sym(fieldName), false),
		wsReq(),
		tag("="),
		wsReq(),
		refAs(fieldRule, nodeRule),
	})

	// document = l?(node) w?
	documentBody := NewSequence(next(), []Rule{
		NewLines(next(), ref(nodeNode), false, 4),
		wsOpt(),
	})

	g.Push(sym(nodeOpt), optBody)
	g.Push(sym(nodeWhitespace), whitespaceBody)
	g.Push(sym(nodeTag), tagBody)
	g.Push(sym(nodeUntilAnyOrWs), untilAnyOrWsBody)
	g.Push(sym(nodeUntilAny), untilAnyBody)
	g.Push(sym(nodeText), textBody)
	g.Push(sym(nodeNumber), numberBody)
	g.Push(sym(nodeReference), referenceBody)
	g.Push(sym(nodeSequence), sequenceBody)
	g.Push(sym(nodeSelect), selectBody)
	g.Push(sym(nodeSeparatedBy), separatedByBody)
	g.Push(sym(nodeRepeat), repeatBody)
	g.Push(sym(nodeLines), linesBody)
	g.Push(sym(nodeOptional), optionalBody)
	g.Push(sym(nodeNot), notBody)
	g.Push(sym(nodeRule), ruleBody)
	g.Push(sym(nodeNode), nodeBody)
	documentIdx := g.Push(sym(nodeDocument), documentBody)

	g.SetRoot(documentIdx)
	return g
}
