//go:build unit

package inventory

import (
	"testing"

	"samhotel-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *Product {
	t.Helper()
	cost, err := booking.ParseAmount("5.00")
	require.NoError(t, err)
	selling, err := booking.ParseAmount("8.50")
	require.NoError(t, err)

	p, err := NewProduct(nil, "Bottled Water", "BW-500", "", cost, selling, 10)
	require.NoError(t, err)
	for i := 0; i < stock; i++ {
		require.NoError(t, p.ApplyRestock(1))
	}
	return p
}

func TestCategory(t *testing.T) {
	t.Run("name is trimmed and required", func(t *testing.T) {
		_, err := NewCategory("   ", "")
		assert.ErrorIs(t, err, ErrNameRequired)

		c, err := NewCategory("  Drinks  ", "cold drinks")
		require.NoError(t, err)
		assert.Equal(t, "Drinks", c.Name())
	})

	t.Run("rename keeps the same rules", func(t *testing.T) {
		c, err := NewCategory("Drinks", "")
		require.NoError(t, err)

		assert.ErrorIs(t, c.Rename(" "), ErrNameRequired)
		assert.Equal(t, "Drinks", c.Name())

		require.NoError(t, c.Rename(" Snacks "))
		assert.Equal(t, "Snacks", c.Name())
	})
}

func TestProductStock(t *testing.T) {
	t.Run("restock must be positive", func(t *testing.T) {
		p := newTestProduct(t, 0)
		assert.ErrorIs(t, p.ApplyRestock(0), ErrInvalidQuantity)
		assert.ErrorIs(t, p.ApplyRestock(-5), ErrInvalidQuantity)
	})

	t.Run("deduct rejects oversell before mutating", func(t *testing.T) {
		p := newTestProduct(t, 3)
		assert.ErrorIs(t, p.DeductStock(4), ErrInsufficientStock)
		assert.Equal(t, 3, p.StockQuantity())

		require.NoError(t, p.DeductStock(3))
		assert.Equal(t, 0, p.StockQuantity())
	})

	t.Run("reorder flag tracks the threshold", func(t *testing.T) {
		p := newTestProduct(t, 11)
		assert.False(t, p.NeedsReorder())
		require.NoError(t, p.DeductStock(1))
		assert.True(t, p.NeedsReorder())
	})
}

func TestNewSale(t *testing.T) {
	price := func(s string) booking.Money {
		m, err := booking.ParseAmount(s)
		require.NoError(t, err)
		return m
	}

	t.Run("total is the sum of line subtotals", func(t *testing.T) {
		itemA, err := NewSaleItem(uuid.New(), 3, price("8.50"))
		require.NoError(t, err)
		itemB, err := NewSaleItem(uuid.New(), 1, price("120.00"))
		require.NoError(t, err)

		sale, err := NewSale("Walk-in", nil, "", []SaleItem{itemA, itemB})
		require.NoError(t, err)
		assert.Equal(t, "145.50", sale.Total().String())
		assert.Equal(t, "cash", sale.PaymentMethod())
	})

	t.Run("empty sale rejected", func(t *testing.T) {
		_, err := NewSale("Walk-in", nil, "cash", nil)
		assert.ErrorIs(t, err, ErrEmptySale)
	})

	t.Run("line quantity must be positive", func(t *testing.T) {
		_, err := NewSaleItem(uuid.New(), 0, price("1.00"))
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestNewRestock(t *testing.T) {
	_, err := NewRestock(uuid.New(), 0, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	r, err := NewRestock(uuid.New(), 24, "weekly delivery")
	require.NoError(t, err)
	assert.Equal(t, 24, r.Quantity())
}
