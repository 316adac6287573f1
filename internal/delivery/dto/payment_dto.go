package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RecordPaymentRequest struct {
	Amount              decimal.Decimal `json:"amount" validate:"required"`
	PaymentMode         string          `json:"payment_mode" validate:"required,oneof=cash card mobile_money bank_transfer"`
	MobileMoneyProvider string          `json:"mobile_money_provider" validate:"max=50"`
	MobileMoneyNumber   string          `json:"mobile_money_number" validate:"max=30"`
	PaymentDate         *time.Time      `json:"payment_date"`
}

// Response DTOs

type PaymentResponse struct {
	ID                  uuid.UUID       `json:"id"`
	BookingID           uuid.UUID       `json:"booking_id"`
	Amount              decimal.Decimal `json:"amount"`
	PaymentMode         string          `json:"payment_mode"`
	MobileMoneyProvider string          `json:"mobile_money_provider,omitempty"`
	MobileMoneyNumber   string          `json:"mobile_money_number,omitempty"`
	RoomRate            decimal.Decimal `json:"room_rate"`
	DiscountType        string          `json:"discount_type"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	TotalBill           decimal.Decimal `json:"total_bill"`
	BalanceRemaining    decimal.Decimal `json:"balance_remaining"`
	Status              string          `json:"status"`
	ReceiptNumber       string          `json:"receipt_number"`
	PaymentDate         time.Time       `json:"payment_date"`
	CreatedAt           time.Time       `json:"created_at"`
}
