// Package pricing computes stay prices and payment balances. Every booking entry point
// goes through these functions so the nights/subtotal/discount/total rules live in one place.
package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	millisPerDay  = 86_400_000
	millisPerHour = 3_600_000
)

type DiscountType string

const (
	DiscountNone      DiscountType = "none"
	DiscountCorporate DiscountType = "corporate"
	DiscountPromo     DiscountType = "promo"
)

type Policy string

const (
	PolicyStandard Policy = "standard"
	PolicyCustom   Policy = "custom"
	PolicyMixed    Policy = "mixed"
)

// Discount is the discount requested on a booking.
type Discount struct {
	Type   DiscountType
	Amount decimal.Decimal
}

// Rates are the prices a quote may draw on. Nightly is the room price.
type Rates struct {
	Nightly  decimal.Decimal
	Hourly   decimal.Decimal
	Overtime decimal.Decimal
}

// Quote is the priced stay.
type Quote struct {
	Nights   int64
	Hours    int64
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Nights returns ceil((checkOut - checkIn) / 1 day) in milliseconds resolution.
// There is no minimum: a check-out at or before check-in gives zero or fewer nights.
func Nights(checkIn, checkOut time.Time) int64 {
	return ceilDiv(checkOut.Sub(checkIn).Milliseconds(), millisPerDay)
}

// Hours returns ceil((checkOut - checkIn) / 1 hour).
func Hours(checkIn, checkOut time.Time) int64 {
	return ceilDiv(checkOut.Sub(checkIn).Milliseconds(), millisPerHour)
}

// Calculate prices a nightly stay at rate.
func Calculate(rate decimal.Decimal, checkIn, checkOut time.Time, discount Discount) Quote {
	nights := Nights(checkIn, checkOut)
	subtotal := rate.Mul(decimal.NewFromInt(nights))
	return finish(Quote{Nights: nights}, subtotal, discount)
}

// CalculateWithPolicy prices a stay under the configured pricing policy.
// Unknown policies fall back to the standard nightly rule.
func CalculateWithPolicy(policy Policy, rates Rates, checkIn, checkOut time.Time, discount Discount) Quote {
	switch policy {
	case PolicyCustom:
		hours := Hours(checkIn, checkOut)
		subtotal := rates.Hourly.Mul(decimal.NewFromInt(hours))
		return finish(Quote{Hours: hours}, subtotal, discount)

	case PolicyMixed:
		duration := checkOut.Sub(checkIn).Milliseconds()
		if duration <= 0 {
			return finish(Quote{}, decimal.Zero, discount)
		}
		nights := duration / millisPerDay
		extraHours := ceilDiv(duration-nights*millisPerDay, millisPerHour)

		hourRate := rates.Overtime
		if nights == 0 {
			hourRate = rates.Hourly
		}
		subtotal := rates.Nightly.Mul(decimal.NewFromInt(nights)).
			Add(hourRate.Mul(decimal.NewFromInt(extraHours)))
		return finish(Quote{Nights: nights, Hours: extraHours}, subtotal, discount)

	default:
		return Calculate(rates.Nightly, checkIn, checkOut, discount)
	}
}

// DiscountValue returns the amount taken off the subtotal for a discount.
func DiscountValue(discount Discount) decimal.Decimal {
	switch discount.Type {
	case DiscountCorporate, DiscountPromo:
		return discount.Amount
	default:
		return decimal.Zero
	}
}

// BalanceRemaining returns max(0, totalBill - discount - sum(paid)).
func BalanceRemaining(totalBill, discount decimal.Decimal, paid ...decimal.Decimal) decimal.Decimal {
	balance := totalBill.Sub(discount)
	for _, amount := range paid {
		balance = balance.Sub(amount)
	}
	return nonNegative(balance)
}

// PaymentStatus derives pending/partial/completed from what is still owed and what was paid.
func PaymentStatus(balance, totalPaid decimal.Decimal) string {
	switch {
	case !balance.IsPositive():
		return "completed"
	case totalPaid.IsPositive():
		return "partial"
	default:
		return "pending"
	}
}

func finish(q Quote, subtotal decimal.Decimal, discount Discount) Quote {
	q.Subtotal = subtotal
	q.Discount = DiscountValue(discount)
	q.Total = nonNegative(subtotal.Sub(q.Discount))
	return q
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func ceilDiv(a, b int64) int64 {
	return int64(math.Ceil(float64(a) / float64(b)))
}
