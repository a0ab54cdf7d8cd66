package content

// Instruction is the parsed shape of a recipeInstructions value. The set of
// implementations is closed: TextStep, Step, Section, List and Unknown.
type Instruction interface {
	instruction()
}

// TextStep is a bare string step.
type TextStep string

// Step is a HowToStep-like object carrying a "text" field.
type Step struct {
	Text string
}

// Section is a HowToSection-like object whose steps live under
// "itemListElement". Items holds whatever shape that field had.
type Section struct {
	Name  string
	Items Instruction
}

// List is an ordered sequence of instructions.
type List []Instruction

// Unknown is any value that carries no step text.
type Unknown struct{}

func (TextStep) instruction() {}
func (Step) instruction()     {}
func (Section) instruction()  {}
func (List) instruction()     {}
func (Unknown) instruction()  {}

const (
	itemListKey = "itemListElement"
	textKey     = "text"
)

// ParseInstruction classifies a decoded JSON value. A mapping with nested
// items is a Section even when it also carries text.
func ParseInstruction(v any) Instruction {
	switch t := v.(type) {
	case string:
		return TextStep(t)
	case map[string]any:
		if items, ok := t[itemListKey]; ok {
			name, _ := StringField(t["name"])
			return Section{Name: name, Items: ParseInstruction(items)}
		}
		if text, ok := t[textKey]; ok {
			if s, ok := StringField(text); ok {
				return Step{Text: s}
			}
		}
		return Unknown{}
	case []any:
		list := make(List, 0, len(t))
		for _, item := range t {
			list = append(list, ParseInstruction(item))
		}
		return list
	default:
		return Unknown{}
	}
}

// Flatten returns the step texts of ins in order. It never returns nil.
func Flatten(ins Instruction) []string {
	return appendSteps([]string{}, ins)
}

// FlattenInstructions parses and flattens a raw recipeInstructions value.
func FlattenInstructions(v any) []string {
	return Flatten(ParseInstruction(v))
}

func appendSteps(dst []string, ins Instruction) []string {
	switch t := ins.(type) {
	case TextStep:
		return append(dst, string(t))
	case Step:
		return append(dst, t.Text)
	case Section:
		return appendSteps(dst, t.Items)
	case List:
		for _, item := range t {
			dst = appendSteps(dst, item)
		}
		return dst
	default:
		return dst
	}
}
