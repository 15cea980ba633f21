package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{ID: 1, Price: "10.00", Quantity: 2},
		{ID: 2, Price: "5.50", Quantity: 1},
	}

	totals, err := ComputeTotals(items)
	require.NoError(t, err)

	assert.Equal(t, "25.50", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "99.00", totals.Shipping.StringFixed(2))
	assert.Equal(t, "124.50", totals.Total.StringFixed(2))
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals, err := ComputeTotals(nil)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.IsZero())
	assert.Equal(t, "99.00", totals.Total.StringFixed(2))
}

func TestComputeTotalsRejectsUnparsablePrice(t *testing.T) {
	items := []LineItem{
		{ID: 1, Price: "10.00", Quantity: 1},
		{ID: 2, Price: "not-a-price", Quantity: 1},
	}

	_, err := ComputeTotals(items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 2")
}
