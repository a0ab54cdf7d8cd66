package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, page string) *Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func ldScript(body string) string {
	return `<script type="application/ld+json">` + body + `</script>`
}

func TestExtractRecipeSecondBlock(t *testing.T) {
	page := "<html><head>" +
		ldScript(`{"@type":"Organization","name":"Epicurious"}`) +
		ldScript(`{"@type":"Recipe","name":"Carrot Cake"}`) +
		"</head><body></body></html>"

	recipe, ok := ExtractRecipe(mustParse(t, page))
	require.True(t, ok)
	assert.Equal(t, "Carrot Cake", recipe["name"])
}

func TestExtractRecipeNoBlocks(t *testing.T) {
	recipe, ok := ExtractRecipe(mustParse(t, "<html><body><h1>Stew</h1></body></html>"))
	assert.False(t, ok)
	assert.Empty(t, recipe)
}

func TestExtractRecipeSkipsInvalidJSON(t *testing.T) {
	page := "<html><head>" +
		ldScript(`{"@type": "Recipe", "name": `) +
		ldScript(`{"@type":"Recipe","name":"Valid"}`) +
		"</head></html>"

	recipe, ok := ExtractRecipe(mustParse(t, page))
	require.True(t, ok)
	assert.Equal(t, "Valid", recipe["name"])
}

func TestExtractRecipeFirstMatchWins(t *testing.T) {
	page := "<html><head>" +
		ldScript(`{"@type":"Recipe","name":"First"}`) +
		ldScript(`{"@type":"Recipe","name":"Second"}`) +
		"</head></html>"

	recipe, ok := ExtractRecipe(mustParse(t, page))
	require.True(t, ok)
	assert.Equal(t, "First", recipe["name"])
}

func TestRecipeFromBlocksNested(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{
			name:  "graph",
			block: `{"@context":"https://schema.org","@graph":[{"@type":"WebPage"},{"@type":"Recipe","name":"Graph"}]}`,
			want:  "Graph",
		},
		{
			name:  "top level list",
			block: `[{"@type":"BreadcrumbList"},{"@type":["Recipe","NewsArticle"],"name":"Typed List"}]`,
			want:  "Typed List",
		},
		{
			name:  "nested mapping",
			block: `{"@type":"WebPage","mainEntity":{"@type":"Recipe","name":"Main Entity"}}`,
			want:  "Main Entity",
		},
		{
			name:  "outer recipe before inner",
			block: `{"@type":"Recipe","name":"Outer","hasPart":{"@type":"Recipe","name":"Inner"}}`,
			want:  "Outer",
		},
		{
			name:  "siblings in document order",
			block: `{"mainEntity":{"@type":"Recipe","name":"First in document"},"about":{"@type":"Recipe","name":"Second in document"}}`,
			want:  "First in document",
		},
		{
			name:  "graph members in document order",
			block: `{"@graph":[{"zeta":{"@type":"Recipe","name":"Zeta"}},{"alpha":{"@type":"Recipe","name":"Alpha"}}]}`,
			want:  "Zeta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, ok := RecipeFromBlocks([]string{tt.block})
			require.True(t, ok)
			assert.Equal(t, tt.want, recipe["name"])
		})
	}
}

func TestRecipeFromBlocksReturnsPlainValues(t *testing.T) {
	recipe, ok := RecipeFromBlocks([]string{
		`{"@type":"Recipe","name":"Stew","author":{"@type":"Person","name":"Ana"},"recipeIngredient":["beans",{"@value":"salt"}],"recipeYield":4}`,
	})
	require.True(t, ok)

	author, ok := recipe["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", author["name"])
	assert.Equal(t, []any{"beans", map[string]any{"@value": "salt"}}, recipe["recipeIngredient"])
	assert.Equal(t, 4.0, recipe["recipeYield"])
}

func TestRecipeFromBlocksRejectsTrailingData(t *testing.T) {
	_, ok := RecipeFromBlocks([]string{`{"@type":"Recipe","name":"A"} {"@type":"Recipe"}`})
	assert.False(t, ok)
}

func TestRecipeFromBlocksNoRecipe(t *testing.T) {
	_, ok := RecipeFromBlocks([]string{
		`{"@type":"recipe"}`,
		`{"@type":["Article"]}`,
		`"Recipe"`,
		``,
	})
	assert.False(t, ok)
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{"salt"}, StringList("salt"))
	assert.Equal(t, []string{"carrot", "flour"}, StringList([]any{"carrot", 2.0, "flour"}))
	assert.Equal(t, []string{}, StringList(nil))
	assert.Equal(t, []string{}, StringList(map[string]any{"a": "b"}))
}

func TestStringField(t *testing.T) {
	s, ok := StringField("Carrot Cake")
	assert.True(t, ok)
	assert.Equal(t, "Carrot Cake", s)

	s, ok = StringField(map[string]any{"@value": "Literal"})
	assert.True(t, ok)
	assert.Equal(t, "Literal", s)

	_, ok = StringField(12.0)
	assert.False(t, ok)
}
