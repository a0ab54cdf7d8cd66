package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestParseInstruction(t *testing.T) {
	assert.Equal(t, TextStep("Mix."), ParseInstruction("Mix."))
	assert.Equal(t, Step{Text: "Bake."}, ParseInstruction(decode(t, `{"@type":"HowToStep","text":"Bake."}`)))
	assert.Equal(t, Unknown{}, ParseInstruction(decode(t, `{"@type":"HowToStep","name":"Untitled"}`)))
	assert.Equal(t, Unknown{}, ParseInstruction(nil))
	assert.Equal(t, Unknown{}, ParseInstruction(3.0))

	section := ParseInstruction(decode(t, `{"@type":"HowToSection","name":"Frosting","text":"ignored","itemListElement":["Whip."]}`))
	assert.Equal(t, Section{Name: "Frosting", Items: List{TextStep("Whip.")}}, section)
}

func TestFlattenInstructions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "plain string", raw: `"Preheat the oven."`, want: []string{"Preheat the oven."}},
		{name: "empty list", raw: `[]`, want: []string{}},
		{name: "single step", raw: `{"@type":"HowToStep","text":"Mix."}`, want: []string{"Mix."}},
		{name: "unknown object", raw: `{"@type":"HowToTip"}`, want: []string{}},
		{
			name: "list of steps",
			raw:  `[{"@type":"HowToStep","text":"Mix."},{"@type":"HowToStep","text":"Bake."}]`,
			want: []string{"Mix.", "Bake."},
		},
		{
			name: "sections",
			raw: `[
				{"@type":"HowToSection","name":"Cake","itemListElement":[
					{"@type":"HowToStep","text":"Grate carrots."},
					{"@type":"HowToStep","text":"Fold in flour."}
				]},
				{"@type":"HowToSection","name":"Frosting","itemListElement":{"@type":"HowToStep","text":"Beat cream cheese."}},
				"Serve."
			]`,
			want: []string{"Grate carrots.", "Fold in flour.", "Beat cream cheese.", "Serve."},
		},
		{
			name: "nested lists",
			raw:  `[["a",["b"]],[],"c"]`,
			want: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlattenInstructions(decode(t, tt.raw)))
		})
	}
}

func TestFlattenAssociative(t *testing.T) {
	shapes := []string{
		`"Mix."`,
		`{"@type":"HowToStep","text":"Bake."}`,
		`{"@type":"HowToSection","itemListElement":["a","b"]}`,
		`[]`,
		`[{"text":"c"},"d"]`,
		`{"@type":"HowToTip"}`,
	}
	for _, a := range shapes {
		for _, b := range shapes {
			va, vb := decode(t, a), decode(t, b)
			combined := FlattenInstructions([]any{va, vb})
			want := append(FlattenInstructions(va), FlattenInstructions(vb)...)
			assert.Equal(t, want, combined, "%s + %s", a, b)
		}
	}
}

func TestFlattenNilSection(t *testing.T) {
	assert.Equal(t, []string{}, Flatten(Section{}))
	assert.Equal(t, []string{}, Flatten(nil))
}
