package usecase

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/pricing"
	"hotel-frontdesk/internal/domain/repository"
	"hotel-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrBookingCancelled      = errors.New("booking is cancelled")
	ErrPaymentAmountRequired = errors.New("payment amount must be greater than zero")
	ErrBillNotFound          = errors.New("booking has no bill to pay against")
)

type PaymentUsecase interface {
	RecordPayment(ctx context.Context, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	ListPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]dto.PaymentResponse, error)
	ListPayments(ctx context.Context, status string, page, limit int) ([]dto.PaymentResponse, int64, error)
}

type paymentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	transactor  repository.Transactor
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	events      service.EventPublisher
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	events service.EventPublisher,
) PaymentUsecase {
	return &paymentUsecase{
		db:          db,
		log:         log,
		transactor:  transactor,
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		events:      events,
	}
}

// RecordPayment appends an independent payment. The bill (room rate, total, discount) is
// carried over from the booking's first payment and the balance covers every payment so far.
func (u *paymentUsecase) RecordPayment(ctx context.Context, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrPaymentAmountRequired
	}
	mode := entity.PaymentMode(req.PaymentMode)
	if err := checkMobileMoney(mode, req.MobileMoneyProvider, req.MobileMoneyNumber); err != nil {
		return nil, err
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil && !req.PaymentDate.IsZero() {
		paymentDate = *req.PaymentDate
	}

	var payment *entity.Payment
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		booking, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}
		if booking.IsCancelled() {
			return ErrBookingCancelled
		}

		previous, err := u.paymentRepo.FindByBookingID(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if len(previous) == 0 {
			return ErrBillNotFound
		}
		bill := previous[0]

		paid := make([]decimal.Decimal, 0, len(previous)+1)
		totalPaid := decimal.Zero
		for _, p := range previous {
			paid = append(paid, p.Amount)
			totalPaid = totalPaid.Add(p.Amount)
		}
		paid = append(paid, req.Amount)
		totalPaid = totalPaid.Add(req.Amount)

		balance := pricing.BalanceRemaining(bill.TotalBill, bill.DiscountAmount, paid...)
		payment = &entity.Payment{
			BookingID:           bookingID,
			Amount:              req.Amount,
			PaymentMode:         mode,
			MobileMoneyProvider: req.MobileMoneyProvider,
			MobileMoneyNumber:   req.MobileMoneyNumber,
			RoomRate:            bill.RoomRate,
			DiscountType:        bill.DiscountType,
			DiscountAmount:      bill.DiscountAmount,
			TotalBill:           bill.TotalBill,
			BalanceRemaining:    balance,
			Status:              entity.PaymentStatus(pricing.PaymentStatus(balance, totalPaid)),
			ReceiptNumber:       generateCode("RCP", paymentDate),
			PaymentDate:         paymentDate,
		}
		return u.paymentRepo.Create(ctx, tx, payment)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrBookingCancelled), errors.Is(err, ErrBillNotFound):
		default:
			u.log.Warnf("Failed to record payment for booking %s: %+v", bookingID, err)
		}
		return nil, err
	}

	resp := converter.PaymentToResponse(payment)
	u.events.Publish(ctx, service.EventPaymentRecorded, resp)
	u.log.Infof("Payment recorded: booking=%s, amount=%s, balance=%s", bookingID, payment.Amount, payment.BalanceRemaining)
	return resp, nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) ListPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]dto.PaymentResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, u.db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	payments, err := u.paymentRepo.FindByBookingID(ctx, u.db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to list payments for booking %s: %+v", bookingID, err)
		return nil, err
	}
	return converter.PaymentsToResponses(payments), nil
}

func (u *paymentUsecase) ListPayments(ctx context.Context, status string, page, limit int) ([]dto.PaymentResponse, int64, error) {
	_, limit, offset := paginate(page, limit)

	payments, total, err := u.paymentRepo.FindAll(ctx, u.db, &entity.PaymentFilter{
		Status: entity.PaymentStatus(status),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, 0, err
	}
	return converter.PaymentsToResponses(payments), total, nil
}
