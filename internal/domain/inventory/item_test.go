package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, stock int) *Item {
	t.Helper()
	item, err := NewItem("Heating element", "HE-230V", "fryer_parts", stock, 2, 20, "A-03", "Acme Parts", 45.50)
	require.NoError(t, err)
	return item
}

func TestItem_Consume(t *testing.T) {
	item := newTestItem(t, 5)

	require.NoError(t, item.Consume(3))
	assert.Equal(t, 2, item.Stock())

	require.NoError(t, item.Consume(2))
	assert.Equal(t, 0, item.Stock())
}

func TestItem_Consume_InsufficientStock(t *testing.T) {
	item := newTestItem(t, 2)

	err := item.Consume(3)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, item.Stock(), "failed consumption must not change stock")
}

func TestItem_Consume_InvalidQuantity(t *testing.T) {
	item := newTestItem(t, 5)

	assert.Error(t, item.Consume(0))
	assert.Error(t, item.Consume(-1))
	assert.Equal(t, 5, item.Stock())
}

func TestItem_Restock(t *testing.T) {
	item := newTestItem(t, 1)

	require.NoError(t, item.Restock(10))
	assert.Equal(t, 11, item.Stock())

	assert.Error(t, item.Restock(0))
}

func TestItem_IsBelowMinimum(t *testing.T) {
	item := newTestItem(t, 5)
	assert.False(t, item.IsBelowMinimum())

	require.NoError(t, item.Consume(3))
	assert.True(t, item.IsBelowMinimum(), "stock equal to minimum counts as below")
}

func TestNewItem_Validation(t *testing.T) {
	_, err := NewItem("", "HE-230V", "fryer_parts", 1, 0, 0, "", "", 0)
	assert.Error(t, err)

	_, err = NewItem("Heating element", "", "fryer_parts", 1, 0, 0, "", "", 0)
	assert.Error(t, err)

	_, err = NewItem("Heating element", "HE-230V", "fryer_parts", -1, 0, 0, "", "", 0)
	assert.Error(t, err)

	_, err = NewItem("Heating element", "HE-230V", "fryer_parts", 1, 5, 3, "", "", 0)
	assert.Error(t, err)
}

func TestNewUsageRecord(t *testing.T) {
	record, err := NewUsageRecord(1, 2, 3, 4, 10.0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, record.TotalCost())

	_, err = NewUsageRecord(0, 2, 3, 4, 10.0)
	assert.Error(t, err)
	_, err = NewUsageRecord(1, 2, 3, 0, 10.0)
	assert.Error(t, err)
}
