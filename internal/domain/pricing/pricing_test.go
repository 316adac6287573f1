package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestNights(t *testing.T) {
	checkIn := date(2025, 1, 1)

	tests := []struct {
		name     string
		checkOut time.Time
		want     int64
	}{
		{"three nights", date(2025, 1, 4), 3},
		{"same instant", checkIn, 0},
		{"partial day rounds up", checkIn.Add(25 * time.Hour), 2},
		{"one millisecond", checkIn.Add(time.Millisecond), 1},
		{"check-out before check-in", checkIn.Add(-36 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(checkIn, tt.checkOut))
		})
	}
}

func TestCalculate_NoDiscount(t *testing.T) {
	q := Calculate(dec(100000), date(2025, 1, 1), date(2025, 1, 4), Discount{Type: DiscountNone})

	assert.Equal(t, int64(3), q.Nights)
	assert.True(t, q.Subtotal.Equal(dec(300000)))
	assert.True(t, q.Discount.IsZero())
	assert.True(t, q.Total.Equal(dec(300000)))
}

func TestCalculate_PromoDiscount(t *testing.T) {
	q := Calculate(dec(100000), date(2025, 1, 1), date(2025, 1, 4), Discount{Type: DiscountPromo, Amount: dec(50000)})

	assert.True(t, q.Discount.Equal(dec(50000)))
	assert.True(t, q.Total.Equal(dec(250000)))
}

func TestCalculate_NoneIgnoresAmount(t *testing.T) {
	q := Calculate(dec(100000), date(2025, 1, 1), date(2025, 1, 2), Discount{Type: DiscountNone, Amount: dec(40000)})

	assert.True(t, q.Discount.IsZero())
	assert.True(t, q.Total.Equal(dec(100000)))
}

func TestCalculate_DiscountLargerThanSubtotal(t *testing.T) {
	q := Calculate(dec(100000), date(2025, 1, 1), date(2025, 1, 2), Discount{Type: DiscountCorporate, Amount: dec(150000)})

	assert.True(t, q.Total.IsZero())
}

func TestCalculate_ZeroAndNegativeDuration(t *testing.T) {
	same := Calculate(dec(100000), date(2025, 1, 1), date(2025, 1, 1), Discount{Type: DiscountNone})
	assert.Equal(t, int64(0), same.Nights)
	assert.True(t, same.Total.IsZero())

	negative := Calculate(dec(100000), date(2025, 1, 3), date(2025, 1, 1), Discount{Type: DiscountNone})
	assert.Equal(t, int64(-2), negative.Nights)
	assert.True(t, negative.Subtotal.Equal(dec(-200000)))
	assert.True(t, negative.Total.IsZero())
}

func TestCalculateWithPolicy(t *testing.T) {
	rates := Rates{Nightly: dec(100000), Hourly: dec(15000), Overtime: dec(10000)}
	checkIn := time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC)

	t.Run("standard", func(t *testing.T) {
		q := CalculateWithPolicy(PolicyStandard, rates, checkIn, checkIn.Add(48*time.Hour), Discount{Type: DiscountNone})
		assert.Equal(t, int64(2), q.Nights)
		assert.True(t, q.Total.Equal(dec(200000)))
	})

	t.Run("custom bills started hours", func(t *testing.T) {
		q := CalculateWithPolicy(PolicyCustom, rates, checkIn, checkIn.Add(3*time.Hour+time.Minute), Discount{Type: DiscountNone})
		assert.Equal(t, int64(4), q.Hours)
		assert.True(t, q.Total.Equal(dec(60000)))
	})

	t.Run("mixed adds overtime", func(t *testing.T) {
		q := CalculateWithPolicy(PolicyMixed, rates, checkIn, checkIn.Add(26*time.Hour), Discount{Type: DiscountPromo, Amount: dec(5000)})
		assert.Equal(t, int64(1), q.Nights)
		assert.Equal(t, int64(2), q.Hours)
		assert.True(t, q.Subtotal.Equal(dec(120000)))
		assert.True(t, q.Total.Equal(dec(115000)))
	})

	t.Run("mixed short stay uses hourly rate", func(t *testing.T) {
		q := CalculateWithPolicy(PolicyMixed, rates, checkIn, checkIn.Add(5*time.Hour), Discount{Type: DiscountNone})
		assert.Equal(t, int64(0), q.Nights)
		assert.True(t, q.Subtotal.Equal(dec(75000)))
	})

	t.Run("unknown policy falls back to nightly", func(t *testing.T) {
		q := CalculateWithPolicy(Policy("weekly"), rates, checkIn, checkIn.Add(24*time.Hour), Discount{Type: DiscountNone})
		assert.Equal(t, int64(1), q.Nights)
		assert.True(t, q.Total.Equal(dec(100000)))
	})
}

func TestBalanceRemaining(t *testing.T) {
	assert.True(t, BalanceRemaining(dec(300000), dec(50000), dec(100000)).Equal(dec(150000)))
	assert.True(t, BalanceRemaining(dec(300000), dec(50000), dec(100000), dec(150000)).IsZero())
	assert.True(t, BalanceRemaining(dec(300000), decimal.Zero, dec(500000)).IsZero(), "never negative")
	assert.True(t, BalanceRemaining(dec(300000), decimal.Zero).Equal(dec(300000)))
}

func TestPaymentStatus(t *testing.T) {
	assert.Equal(t, "completed", PaymentStatus(decimal.Zero, dec(300000)))
	assert.Equal(t, "partial", PaymentStatus(dec(100), dec(50)))
	assert.Equal(t, "pending", PaymentStatus(dec(100), decimal.Zero))
}
