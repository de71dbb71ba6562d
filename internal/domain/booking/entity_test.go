//go:build unit

package booking

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	roomID := uuid.New()
	rate, err := ParseAmount("100.00")
	require.NoError(t, err)
	client, err := NewClient("Alice", "alice@example.com", nil)
	require.NoError(t, err)
	stay := mustStay(t, "2026-01-10", "2026-01-12")
	guests := mustGuests(t, 1, 0)

	t.Run("accepts an exact payment", func(t *testing.T) {
		paid, err := ParseAmount("200.00")
		require.NoError(t, err)

		b, err := NewBooking(roomID, rate, client, stay, guests, MealPlanNone, paid)
		require.NoError(t, err)
		assert.Equal(t, "200.00", b.TotalAmount().String())
		assert.Equal(t, "Paid", b.PaymentStatus())
	})

	t.Run("rejects underpayment with both amounts", func(t *testing.T) {
		paid, err := ParseAmount("199.99")
		require.NoError(t, err)

		_, err = NewBooking(roomID, rate, client, stay, guests, MealPlanNone, paid)
		var mismatch *PaymentMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "200.00", mismatch.Expected.String())
		assert.Equal(t, "199.99", mismatch.Got.String())
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		paid, err := ParseAmount("200.01")
		require.NoError(t, err)

		_, err = NewBooking(roomID, rate, client, stay, guests, MealPlanNone, paid)
		var mismatch *PaymentMismatchError
		assert.True(t, errors.As(err, &mismatch))
	})

	t.Run("rejects an unknown meal plan", func(t *testing.T) {
		paid, err := ParseAmount("200.00")
		require.NoError(t, err)

		_, err = NewBooking(roomID, rate, client, stay, guests, MealPlan("breakfast_only"), paid)
		assert.ErrorIs(t, err, ErrInvalidMealPlan)
	})
}

func TestNewMealPlan(t *testing.T) {
	plan, err := NewMealPlan("")
	require.NoError(t, err)
	assert.Equal(t, MealPlanNone, plan)

	plan, err = NewMealPlan("half_board")
	require.NoError(t, err)
	assert.Equal(t, MealPlanHalfBoard, plan)

	_, err = NewMealPlan("luxury")
	assert.ErrorIs(t, err, ErrInvalidMealPlan)
}
