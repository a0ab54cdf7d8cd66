package content

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const recipeType = "Recipe"

// ExtractRecipe returns the first schema.org Recipe object embedded in the
// document's JSON-LD blocks. Blocks are scanned in document order and blocks
// that are not valid JSON are skipped.
func ExtractRecipe(doc *Document) (map[string]any, bool) {
	if doc == nil {
		return nil, false
	}
	return RecipeFromBlocks(doc.StructuredDataBlocks())
}

// RecipeFromBlocks applies the same search to raw JSON-LD payloads.
func RecipeFromBlocks(blocks []string) (map[string]any, bool) {
	for _, raw := range blocks {
		payload, ok := decodeBlock(raw)
		if !ok {
			continue
		}
		if recipe := findRecipe(payload); recipe != nil {
			return recipe, true
		}
	}
	return nil, false
}

// member and object keep JSON mappings in document order until a recipe is
// found; the match is then converted to a plain map.
type member struct {
	key   string
	value any
}

type object []member

// get returns the last value stored under key, matching encoding/json.
func (o object) get(key string) any {
	var v any
	for _, m := range o {
		if m.key == key {
			v = m.value
		}
	}
	return v
}

func decodeBlock(raw string) (any, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	payload, err := decodeValue(dec)
	if err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return payload, true
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("jsonld: unexpected key %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, member{key: key, value: value})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("jsonld: unexpected delimiter %v", delim)
}

// findRecipe is a depth-first search. A mapping is tested before its
// children, and children are visited in document order.
func findRecipe(payload any) map[string]any {
	switch t := payload.(type) {
	case object:
		if isRecipeType(t.get("@type")) {
			return toMap(t)
		}
		for _, m := range t {
			if found := findRecipe(m.value); found != nil {
				return found
			}
		}
	case []any:
		for _, item := range t {
			if found := findRecipe(item); found != nil {
				return found
			}
		}
	}
	return nil
}

func toMap(o object) map[string]any {
	out := make(map[string]any, len(o))
	for _, m := range o {
		out[m.key] = toPlain(m.value)
	}
	return out
}

func toPlain(v any) any {
	switch t := v.(type) {
	case object:
		return toMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = toPlain(item)
		}
		return out
	}
	return v
}

func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == recipeType
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == recipeType {
				return true
			}
		}
	}
	return false
}

// StringField returns v when it is a JSON string.
func StringField(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case map[string]any:
		if s, ok := t["@value"].(string); ok {
			return s, true
		}
	}
	return "", false
}

// StringList normalizes a JSON-LD text-list property such as
// recipeIngredient. A single string becomes a one element list, non-string
// members are dropped and anything else yields an empty list.
func StringList(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case string:
		out = append(out, t)
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
