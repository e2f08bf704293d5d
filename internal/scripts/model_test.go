package scripts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScripts(t *testing.T) {
	defaults := DefaultScripts()
	require.NotEmpty(t, defaults)

	seen := map[string]bool{}
	orders := map[int]bool{}
	for _, s := range defaults {
		assert.NotEmpty(t, s.Category)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Content)
		assert.Positive(t, s.Order)

		// Category+title pairs and orders are unique within the set.
		key := s.Category + "/" + s.Title
		assert.False(t, seen[key], "duplicate script %s", key)
		seen[key] = true
		assert.False(t, orders[s.Order], "duplicate order %d", s.Order)
		orders[s.Order] = true
	}

	// The seed keeps the canonical categories.
	categories := map[string]bool{}
	for _, s := range defaults {
		categories[s.Category] = true
	}
	for _, want := range []string{
		"Fraseologia", "Ofertas", "Cartão de Crédito", "Análise de Crédito",
		"Agendamento", "Checklist", "Avisos Finais", "Infos Úteis",
	} {
		assert.True(t, categories[want], "missing category %s", want)
	}
}
