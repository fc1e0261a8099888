package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/idea-brand-coach/models"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []models.ChatbotType{
		models.ChatbotIdeaFrameworkConsultant,
		models.ChatbotBrandCoach,
		models.ChatbotFieldAssistant,
	}, c.Types())

	p, ok := c.Get(models.ChatbotIdeaFrameworkConsultant)
	require.True(t, ok)
	assert.NotEmpty(t, p.SystemPrompt)
	assert.NotEmpty(t, p.Knowledge)

	f, ok := p.Field("distinctive_positioning")
	require.True(t, ok)
	assert.Equal(t, models.CategoryDistinctive, f.Category)

	_, ok = p.Field("avatar_goals")
	assert.False(t, ok)

	_, ok = c.Get("unknown")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "- [unclosed"},
		{name: "empty list", yaml: "[]"},
		{name: "missing type", yaml: "- system_prompt: hi"},
		{name: "missing prompt", yaml: "- type: x"},
		{name: "bad category", yaml: `
- type: x
  system_prompt: hi
  extractable_fields:
    - identifier: a
      category: marketing`},
		{name: "duplicate field", yaml: `
- type: x
  system_prompt: hi
  extractable_fields:
    - {identifier: a, category: insight}
    - {identifier: a, category: canvas}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParse_DuplicatePersona(t *testing.T) {
	_, err := Parse([]byte(`
- {type: x, system_prompt: a}
- {type: x, system_prompt: b}`))
	assert.ErrorIs(t, err, ErrDuplicatePersona)
}

func TestTypes_ReturnsCopy(t *testing.T) {
	c, err := Parse([]byte("- {type: x, system_prompt: a}"))
	require.NoError(t, err)

	types := c.Types()
	types[0] = "mutated"
	assert.Equal(t, []models.ChatbotType{"x"}, c.Types())
}
