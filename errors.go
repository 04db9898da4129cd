package meta

import "fmt"

// ErrorKind enumerates the flat set of error conditions the rule
// algebra can report. Some kinds carry a Text payload (the tag that
// was expected, or a free-form message); DebugID identifies the rule
// instance that raised the error.
type ErrorKind int

const (
	ExpectedWhitespace ErrorKind = iota
	ExpectedNewLine
	ExpectedSomething
	ExpectedNumber
	ParseNumberError
	ExpectedText
	EmptyTextNotAllowed
	ParseStringError
	ExpectedTag
	DidNotExpectTag
	InvalidRule
	Conversion
	NoRules
	ExpectedEnd
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedWhitespace:
		return "ExpectedWhitespace"
	case ExpectedNewLine:
		return "ExpectedNewLine"
	case ExpectedSomething:
		return "ExpectedSomething"
	case ExpectedNumber:
		return "ExpectedNumber"
	case ParseNumberError:
		return "ParseNumberError"
	case ExpectedText:
		return "ExpectedText"
	case EmptyTextNotAllowed:
		return "EmptyTextNotAllowed"
	case ParseStringError:
		return "ParseStringError"
	case ExpectedTag:
		return "ExpectedTag"
	case DidNotExpectTag:
		return "DidNotExpectTag"
	case InvalidRule:
		return "InvalidRule"
	case Conversion:
		return "Conversion"
	case NoRules:
		return "NoRules"
	case ExpectedEnd:
		return "ExpectedEnd"
	default:
		return "Unknown"
	}
}

// ParseError is a single error condition raised by a rule. Text holds
// the tag for ExpectedTag/DidNotExpectTag or the free-form message
// for InvalidRule/Conversion; it is empty for the other kinds.
type ParseError struct {
	Kind    ErrorKind
	Text    string
	DebugID int
}

func (e ParseError) Error() string {
	switch e.Kind {
	case ExpectedTag:
		return fmt.Sprintf("expected tag %q", e.Text)
	case DidNotExpectTag:
		return fmt.Sprintf("did not expect tag %q", e.Text)
	case InvalidRule:
		return fmt.Sprintf("invalid rule: %s", e.Text)
	case Conversion:
		return fmt.Sprintf("conversion error: %s", e.Text)
	default:
		return e.Kind.String()
	}
}

func newErr(kind ErrorKind, debugID int) ParseError {
	return ParseError{Kind: kind, DebugID: debugID}
}

func newTagErr(kind ErrorKind, text string, debugID int) ParseError {
	return ParseError{Kind: kind, Text: text, DebugID: debugID}
}

func newMsgErr(kind ErrorKind, msg string) ParseError {
	return ParseError{Kind: kind, Text: msg}
}

// RangeError pairs a ParseError with the input Range where it was
// raised, matching the (range, error) shape every primitive rule
// returns on failure.
type RangeError struct {
	Range Range
	Err   ParseError
}

func errAt(rg Range, err ParseError) *RangeError {
	return &RangeError{Range: rg, Err: err}
}

func (e *RangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s @ %s", e.Err.Error(), e.Range)
}

// Report renders the error against input as a single
// "line:column: message" string, grounded on the furthest-reach error
// reporting the original implementation's error handler produces. It
// does not quote the offending source line or draw a caret under it.
func (e *RangeError) Report(input []rune) string {
	if e == nil {
		return ""
	}
	off := e.Range.Offset
	if off < 0 {
		off = 0
	}
	if off > len(input) {
		off = len(input)
	}
	li := NewLineIndex([]byte(string(input)))
	loc := li.LocationAt(len(string(input[:off])))
	return fmt.Sprintf("%d:%d: %s", loc.Line, loc.Column, e.Err.Error())
}

// errUpdate keeps whichever of newErr and *slot reaches furthest into
// the input, favoring the error already in *slot on a tie (the
// earlier reporter wins ties, per the furthest-reach policy).
func errUpdate(newErr *RangeError, slot **RangeError) {
	if newErr == nil {
		return
	}
	if *slot == nil || newErr.Range.NextOffset() > (*slot).Range.NextOffset() {
		*slot = newErr
	}
}

// retErr returns whichever of err and slot reaches furthest, favoring
// err on a tie: slot is returned only when it reaches strictly
// further. Either may be nil.
func retErr(err *RangeError, slot *RangeError) *RangeError {
	if err == nil {
		return slot
	}
	if slot != nil && slot.Range.NextOffset() > err.Range.NextOffset() {
		return slot
	}
	return err
}

// update advances offset to the end of rg and merges err into slot.
// Every composite rule calls this after a successful sub-rule parse.
func update(rg Range, err *RangeError, offset *int, slot **RangeError) {
	*offset = rg.NextOffset()
	errUpdate(err, slot)
}
