package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		max     float64
		pct     int
		width   int
	}{
		{"half", 5, 10, 50, 50},
		{"rounds", 1, 3, 33, 33},
		{"rounds up", 2, 3, 67, 67},
		{"over max", 15, 10, 150, 100},
		{"empty", 0, 10, 0, 0},
		{"no max", 4, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{CurrentQuantity: tt.current, MaxThreshold: tt.max}
			assert.Equal(t, tt.pct, it.StockPercentage())
			assert.Equal(t, tt.width, it.BarWidth())
		})
	}
}

func TestFilterByName(t *testing.T) {
	items := []Item{{Name: "Chicken Breast", NameAr: "صدر دجاج"}, {Name: "Rice"}, {Name: "Brown Rice"}}

	assert.Len(t, FilterByName(items, ""), 3)
	assert.Len(t, FilterByName(items, " rice "), 2)
	assert.Len(t, FilterByName(items, "دجاج"), 1)
	assert.Empty(t, FilterByName(items, "salmon"))
}

func TestNeedsAttention(t *testing.T) {
	assert.False(t, Item{Status: StatusInStock}.NeedsAttention())
	assert.True(t, Item{Status: StatusLowStock}.NeedsAttention())
	assert.True(t, Item{Status: StatusOutOfStock}.NeedsAttention())
}
