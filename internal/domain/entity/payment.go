package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeMobileMoney  PaymentMode = "mobile_money"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is one independent payment transaction against a booking.
// TotalBill is the gross bill before discount; BalanceRemaining accounts for every
// payment recorded on the booking up to and including this one.
type Payment struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	Amount              decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaymentMode         PaymentMode     `gorm:"type:varchar(20);not null" json:"payment_mode"`
	MobileMoneyProvider string          `gorm:"type:varchar(50)" json:"mobile_money_provider,omitempty"`
	MobileMoneyNumber   string          `gorm:"type:varchar(30)" json:"mobile_money_number,omitempty"`
	RoomRate            decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"room_rate"`
	DiscountType        string          `gorm:"type:varchar(20);not null;default:'none'" json:"discount_type"`
	DiscountAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"discount_amount"`
	TotalBill           decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_bill"`
	BalanceRemaining    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"balance_remaining"`
	Status              PaymentStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	ReceiptNumber       string          `gorm:"type:varchar(50);uniqueIndex" json:"receipt_number,omitempty"`
	PaymentDate         time.Time       `gorm:"not null;index" json:"payment_date"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}
