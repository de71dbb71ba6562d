package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"samhotel-api/internal/pkg/clock"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidAmount    = errors.New("amount must be a valid non-negative monetary value")
	ErrNoAdults         = errors.New("at least one adult is required")
	ErrNegativeChildren = errors.New("children count cannot be negative")
	ErrInvalidMealPlan  = errors.New("invalid meal plan")
	ErrClientRequired   = errors.New("client name and email are required")
)

// Money is an exact fixed-point amount in cents. All pricing arithmetic stays
// on int64 cents; binary floating point never touches a monetary value.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// ParseAmount parses a decimal string such as "200", "200.5" or "200.00"
// with at most two fractional digits.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return Money{}, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return Money{}, ErrInvalidAmount
	}

	cents := units * 100
	if frac != "" {
		// "5" means 50 cents, "05" means 5 cents.
		padded := frac + strings.Repeat("0", 2-len(frac))
		f, err := strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return Money{}, ErrInvalidAmount
		}
		cents += f
	}

	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulQty(qty int64) Money {
	return Money{cents: m.cents * qty}
}

// String renders the amount with two decimal places, e.g. "200.00".
func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Stay is a half-open [checkIn, checkOut) date range. Dates are normalized to
// UTC midnight; a checkout on day D and a new check-in on day D do not clash.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := clock.Midnight(checkIn)
	out := clock.Midnight(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidDateRange
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() time.Time {
	return s.checkIn
}

func (s Stay) CheckOut() time.Time {
	return s.checkOut
}

// Nights clamps to a minimum of one billable night.
func (s Stay) Nights() int64 {
	nights := int64(s.checkOut.Sub(s.checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Overlaps applies the half-open intersection rule used for conflicts.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

// StartedBy reports whether the stay has begun on or before the given day.
func (s Stay) StartedBy(today time.Time) bool {
	return !s.checkIn.After(clock.Midnight(today))
}

// Days lists every calendar date of the stay, inclusive of both check-in and
// check-out day. This is intentionally wider than the conflict rule: the
// calendar view shows the checkout day as occupied even though a back-to-back
// booking may start on it.
func (s Stay) Days() []time.Time {
	var days []time.Time
	for d := s.checkIn; !d.After(s.checkOut); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Guests is the weighted occupant count: children are billed at half weight.
type Guests struct {
	adults   int
	children int
}

func NewGuests(adults, children int) (Guests, error) {
	if adults < 1 {
		return Guests{}, ErrNoAdults
	}
	if children < 0 {
		return Guests{}, ErrNegativeChildren
	}
	return Guests{adults: adults, children: children}, nil
}

func (g Guests) Adults() int {
	return g.adults
}

func (g Guests) Children() int {
	return g.children
}

// halfUnits is the guest factor doubled (adults + 0.5*children, times two) so
// it stays integral.
func (g Guests) halfUnits() int64 {
	return int64(2*g.adults + g.children)
}

// Client identifies who the booking is for.
type Client struct {
	name  string
	email string
	phone *string
}

func NewClient(name, email string, phone *string) (Client, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return Client{}, ErrClientRequired
	}
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		if trimmed == "" {
			phone = nil
		} else {
			phone = &trimmed
		}
	}
	return Client{name: name, email: email, phone: phone}, nil
}

func (c Client) Name() string {
	return c.name
}

func (c Client) Email() string {
	return c.email
}

func (c Client) Phone() *string {
	return c.phone
}
