package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/beverage-commercial/pkg/beverage"
)

func TestNewOrderLine(t *testing.T) {
	item := beverage.Wrap(beverage.NewHouseBlend(beverage.WithSize(beverage.Medium)), beverage.AddMilk, beverage.AddSugar)
	line := NewOrderLine(item, 2)

	assert.Equal(t, "HouseBlend with Milk with Sugar", line.Description)
	assert.Equal(t, "HouseBlend", line.Base)
	assert.Equal(t, beverage.Medium, line.Size)
	assert.Equal(t, 2, line.Condiments)
	assert.InDelta(t, 2.99+1.99+0.5+0.75, line.UnitCost, 1e-9)
	assert.InDelta(t, 2*line.UnitCost, line.Total(), 1e-9)
}

func TestNewOrder(t *testing.T) {
	o := NewOrder("USD", NewOrderLine(beverage.NewTea(), 1))

	_, err := uuid.Parse(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "USD", o.Currency)
	assert.Len(t, o.Lines, 1)
	assert.NotEqual(t, o.ID, NewOrder("USD").ID)
}

func TestOrderLineJSON(t *testing.T) {
	line := NewOrderLine(beverage.NewTea(beverage.WithSize(beverage.Large)), 1)

	data, err := json.Marshal(line)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"size":"Large"`)
}
