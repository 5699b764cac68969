package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIDIngredients(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"ingredients only", `{"_id":"p1","ingredients":[{"ingredientId":"a"}]}`, []string{"a"}},
		{"required only", `{"_id":"p1","requiredIngredients":[{"ingredientId":"b"}]}`, []string{"b"}},
		{"both present", `{"_id":"p1","ingredients":[{"ingredientId":"a"}],"requiredIngredients":[{"ingredientId":"b"}]}`, []string{"a"}},
		{"empty ingredients win", `{"_id":"p1","ingredients":[],"requiredIngredients":[{"ingredientId":"b"}]}`, []string{}},
		{"null ingredients", `{"_id":"p1","ingredients":null,"requiredIngredients":[{"ingredientId":"b"}]}`, []string{"b"}},
		{"neither", `{"_id":"p1"}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Product
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			p.NormalizeID()

			assert.Equal(t, "p1", p.ID)
			assert.Nil(t, p.RequiredIngredients)
			require.NotNil(t, p.Ingredients)
			ids := []string{}
			for _, ing := range p.Ingredients {
				ids = append(ids, ing.IngredientID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
