package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	uc          PaymentUsecase
	booking     *entity.Booking
	bookingRepo *mockBookingRepo
	paymentRepo *mockPaymentRepo
	events      *recordingEvents
}

// newPaymentFixture seeds a booking whose first payment carries a 300,000 bill with a
// 20,000 discount and 100,000 already paid.
func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	booking := &entity.Booking{
		ID:          uuid.New(),
		BookingCode: "BK-20261101-ABC123",
		RoomID:      uuid.New(),
		GuestID:     uuid.New(),
		Status:      entity.BookingStatusActive,
	}
	f := &paymentFixture{
		booking:     booking,
		bookingRepo: newMockBookingRepo(booking),
		paymentRepo: &mockPaymentRepo{},
		events:      &recordingEvents{},
	}
	f.paymentRepo.payments = append(f.paymentRepo.payments, &entity.Payment{
		ID:               uuid.New(),
		BookingID:        booking.ID,
		Amount:           decimal.NewFromInt(100000),
		PaymentMode:      entity.PaymentModeCash,
		RoomRate:         decimal.NewFromInt(100000),
		DiscountType:     "corporate",
		DiscountAmount:   decimal.NewFromInt(20000),
		TotalBill:        decimal.NewFromInt(300000),
		BalanceRemaining: decimal.NewFromInt(180000),
		Status:           entity.PaymentStatusPartial,
		PaymentDate:      time.Now().Add(-2 * time.Hour),
		CreatedAt:        time.Now().Add(-2 * time.Hour),
	})

	f.uc = NewPaymentUsecase(nil, testLogger(), &fakeTransactor{}, f.paymentRepo, f.bookingRepo, f.events)
	return f
}

func TestRecordPayment_BalanceAcrossPayments(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	first, err := f.uc.RecordPayment(ctx, f.booking.ID, &dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(80000),
		PaymentMode: "card",
	})
	require.NoError(t, err)
	assert.True(t, first.BalanceRemaining.Equal(decimal.NewFromInt(100000)), first.BalanceRemaining.String())
	assert.Equal(t, "partial", first.Status)
	assert.True(t, first.TotalBill.Equal(decimal.NewFromInt(300000)))
	assert.True(t, first.DiscountAmount.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, "corporate", first.DiscountType)

	second, err := f.uc.RecordPayment(ctx, f.booking.ID, &dto.RecordPaymentRequest{
		Amount:              decimal.NewFromInt(150000),
		PaymentMode:         "mobile_money",
		MobileMoneyProvider: "MTN",
		MobileMoneyNumber:   "0772000000",
	})
	require.NoError(t, err)
	// Overpayment never drives the balance below zero.
	assert.True(t, second.BalanceRemaining.IsZero(), second.BalanceRemaining.String())
	assert.Equal(t, "completed", second.Status)

	payments, err := f.uc.ListPaymentsByBooking(ctx, f.booking.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 3)
	assert.Equal(t, []string{service.EventPaymentRecorded, service.EventPaymentRecorded}, f.events.events)
}

func TestRecordPayment_UsesGivenDate(t *testing.T) {
	f := newPaymentFixture(t)
	paidAt := time.Date(2026, 10, 2, 9, 30, 0, 0, time.UTC)

	resp, err := f.uc.RecordPayment(context.Background(), f.booking.ID, &dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(1000),
		PaymentMode: "cash",
		PaymentDate: &paidAt,
	})
	require.NoError(t, err)
	assert.True(t, resp.PaymentDate.Equal(paidAt))
	assert.Contains(t, resp.ReceiptNumber, "RCP-20261002-")
}

func TestRecordPayment_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *paymentFixture) uuid.UUID
		req     dto.RecordPaymentRequest
		wantErr error
	}{
		{
			name:    "zero amount",
			setup:   func(f *paymentFixture) uuid.UUID { return f.booking.ID },
			req:     dto.RecordPaymentRequest{Amount: decimal.Zero, PaymentMode: "cash"},
			wantErr: ErrPaymentAmountRequired,
		},
		{
			name:    "mobile money without number",
			setup:   func(f *paymentFixture) uuid.UUID { return f.booking.ID },
			req:     dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10), PaymentMode: "mobile_money", MobileMoneyProvider: "Airtel"},
			wantErr: ErrMobileMoneyDetailsMissing,
		},
		{
			name:    "unknown booking",
			setup:   func(f *paymentFixture) uuid.UUID { return uuid.New() },
			req:     dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10), PaymentMode: "cash"},
			wantErr: ErrBookingNotFound,
		},
		{
			name: "cancelled booking",
			setup: func(f *paymentFixture) uuid.UUID {
				f.booking.Cancel()
				return f.booking.ID
			},
			req:     dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10), PaymentMode: "cash"},
			wantErr: ErrBookingCancelled,
		},
		{
			name: "booking without bill",
			setup: func(f *paymentFixture) uuid.UUID {
				f.paymentRepo.payments = nil
				return f.booking.ID
			},
			req:     dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10), PaymentMode: "cash"},
			wantErr: ErrBillNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(t)
			id := tt.setup(f)
			before := len(f.paymentRepo.payments)

			_, err := f.uc.RecordPayment(context.Background(), id, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, f.paymentRepo.payments, before)
			assert.Empty(t, f.events.events)
		})
	}
}

func TestGetPayment_NotFound(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.uc.GetPayment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = f.uc.ListPaymentsByBooking(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRecordPayment_BackdatedPaymentIsStillTheLatest(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.uc.RecordPayment(ctx, f.booking.ID, &dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(80000),
		PaymentMode: "card",
	})
	require.NoError(t, err)

	lastWeek := time.Now().AddDate(0, 0, -7)
	backdated, err := f.uc.RecordPayment(ctx, f.booking.ID, &dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(50000),
		PaymentMode: "cash",
		PaymentDate: &lastWeek,
	})
	require.NoError(t, err)
	assert.True(t, backdated.BalanceRemaining.Equal(decimal.NewFromInt(50000)), backdated.BalanceRemaining.String())
	assert.True(t, backdated.PaymentDate.Equal(lastWeek))
	assert.True(t, backdated.TotalBill.Equal(decimal.NewFromInt(300000)))

	// The booking's current balance is the one recorded last, whatever its payment date.
	payments, err := f.paymentRepo.FindByBookingID(ctx, nil, f.booking.ID)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	latest := payments[len(payments)-1]
	assert.True(t, latest.BalanceRemaining.Equal(decimal.NewFromInt(50000)))
	assert.True(t, latest.PaymentDate.Before(payments[0].PaymentDate))

	// A later payment still sees the bill and every amount paid so far.
	final, err := f.uc.RecordPayment(ctx, f.booking.ID, &dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(50000),
		PaymentMode: "cash",
	})
	require.NoError(t, err)
	assert.True(t, final.BalanceRemaining.IsZero())
	assert.Equal(t, "completed", final.Status)
}
