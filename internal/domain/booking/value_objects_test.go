//go:build unit

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole units", input: "200", want: "200.00"},
		{name: "one fractional digit means tens of cents", input: "200.5", want: "200.50"},
		{name: "two fractional digits", input: "200.05", want: "200.05"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "surrounding whitespace is trimmed", input: "  12.34 ", want: "12.34"},
		{name: "empty string rejected", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "negative rejected", input: "-5", wantErr: true},
		{name: "three fractional digits rejected", input: "1.234", wantErr: true},
		{name: "missing whole part rejected", input: ".5", wantErr: true},
		{name: "fractional garbage rejected", input: "1.x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewStay(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	t.Run("checkout must come after checkin", func(t *testing.T) {
		_, err := NewStay(day("2026-01-10"), day("2026-01-10"))
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		_, err = NewStay(day("2026-01-10"), day("2026-01-09"))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("time-of-day is discarded", func(t *testing.T) {
		in := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
		out := time.Date(2026, 1, 12, 1, 0, 0, 0, time.UTC)
		stay, err := NewStay(in, out)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stay.Nights())
	})
}

func TestStayOverlaps(t *testing.T) {
	stay := func(in, out string) Stay {
		return mustStay(t, in, out)
	}

	tests := []struct {
		name string
		a, b Stay
		want bool
	}{
		{name: "identical ranges", a: stay("2026-01-10", "2026-01-12"), b: stay("2026-01-10", "2026-01-12"), want: true},
		{name: "partial overlap", a: stay("2026-01-10", "2026-01-14"), b: stay("2026-01-12", "2026-01-16"), want: true},
		{name: "containment", a: stay("2026-01-10", "2026-01-20"), b: stay("2026-01-12", "2026-01-14"), want: true},
		{name: "back-to-back is not a conflict", a: stay("2026-01-10", "2026-01-12"), b: stay("2026-01-12", "2026-01-14"), want: false},
		{name: "fully before", a: stay("2026-01-01", "2026-01-05"), b: stay("2026-01-10", "2026-01-12"), want: false},
		{name: "single shared night", a: stay("2026-01-10", "2026-01-12"), b: stay("2026-01-11", "2026-01-13"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestStayDays(t *testing.T) {
	stay := mustStay(t, "2026-01-10", "2026-01-12")

	days := stay.Days()
	require.Len(t, days, 3)
	assert.Equal(t, "2026-01-10", days[0].Format("2006-01-02"))
	assert.Equal(t, "2026-01-11", days[1].Format("2006-01-02"))
	assert.Equal(t, "2026-01-12", days[2].Format("2006-01-02"))
}

func TestStayStartedBy(t *testing.T) {
	stay := mustStay(t, "2026-01-10", "2026-01-12")
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	assert.False(t, stay.StartedBy(day("2026-01-09")))
	assert.True(t, stay.StartedBy(day("2026-01-10")))
	assert.True(t, stay.StartedBy(day("2026-01-11")))
}

func TestNewGuests(t *testing.T) {
	_, err := NewGuests(0, 0)
	assert.ErrorIs(t, err, ErrNoAdults)

	_, err = NewGuests(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChildren)

	g, err := NewGuests(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Adults())
	assert.Equal(t, 3, g.Children())
}

func TestNewClient(t *testing.T) {
	t.Run("name and email are required", func(t *testing.T) {
		_, err := NewClient("", "a@example.com", nil)
		assert.ErrorIs(t, err, ErrClientRequired)

		_, err = NewClient("Alice", "   ", nil)
		assert.ErrorIs(t, err, ErrClientRequired)
	})

	t.Run("blank phone collapses to nil", func(t *testing.T) {
		phone := "  "
		c, err := NewClient("Alice", "a@example.com", &phone)
		require.NoError(t, err)
		assert.Nil(t, c.Phone())
	})

	t.Run("phone is trimmed", func(t *testing.T) {
		phone := " 0712345678 "
		c, err := NewClient("Alice", "a@example.com", &phone)
		require.NoError(t, err)
		require.NotNil(t, c.Phone())
		assert.Equal(t, "0712345678", *c.Phone())
	})
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0.05", NewMoney(5).String())
	assert.Equal(t, "1.00", NewMoney(100).String())
	assert.Equal(t, "-3.21", NewMoney(-321).String())
}
