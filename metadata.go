package meta

import "fmt"

// EventKind discriminates the five shapes a MetaData event can take.
type EventKind uint8

const (
	StartNodeEvent EventKind = iota
	EndNodeEvent
	BoolEvent
	NumberEvent
	StringEvent
)

func (k EventKind) String() string {
	switch k {
	case StartNodeEvent:
		return "StartNode"
	case EndNodeEvent:
		return "EndNode"
	case BoolEvent:
		return "Bool"
	case NumberEvent:
		return "Number"
	case StringEvent:
		return "String"
	default:
		return "Unknown"
	}
}

// MetaData is the tagged event payload emitted by a parse. Name is
// always an interned Symbol; only the field matching Kind is
// meaningful.
type MetaData struct {
	Kind        EventKind
	Name        *Symbol
	BoolValue   bool
	NumberValue float64
	StringValue string
}

func (m MetaData) String() string {
	switch m.Kind {
	case StartNodeEvent:
		return fmt.Sprintf("StartNode(%s)", m.Name)
	case EndNodeEvent:
		return fmt.Sprintf("EndNode(%s)", m.Name)
	case BoolEvent:
		return fmt.Sprintf("Bool(%s, %v)", m.Name, m.BoolValue)
	case NumberEvent:
		return fmt.Sprintf("Number(%s, %v)", m.Name, m.NumberValue)
	case StringEvent:
		return fmt.Sprintf("String(%s, %q)", m.Name, m.StringValue)
	default:
		return "<invalid MetaData>"
	}
}

func StartNode(name *Symbol) MetaData { return MetaData{Kind: StartNodeEvent, Name: name} }
func EndNode(name *Symbol) MetaData   { return MetaData{Kind: EndNodeEvent, Name: name} }

func BoolData(name *Symbol, value bool) MetaData {
	return MetaData{Kind: BoolEvent, Name: name, BoolValue: value}
}

func NumberData(name *Symbol, value float64) MetaData {
	return MetaData{Kind: NumberEvent, Name: name, NumberValue: value}
}

func StringData(name *Symbol, value string) MetaData {
	return MetaData{Kind: StringEvent, Name: name, StringValue: value}
}

// Event pairs a MetaData with the input Range it was produced from.
type Event struct {
	Range Range
	Data  MetaData
}
