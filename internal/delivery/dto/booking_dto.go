package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateBookingRequest books a room for a new guest (Guest) or a registered one (GuestID),
// and records the first payment in the same call.
type CreateBookingRequest struct {
	GuestID         *uuid.UUID            `json:"guest_id"`
	Guest           *CreateGuestRequest   `json:"guest" validate:"required_without=GuestID"`
	RoomID          uuid.UUID             `json:"room_id" validate:"required"`
	CheckInDate     time.Time             `json:"check_in_date" validate:"required"`
	CheckOutDate    time.Time             `json:"check_out_date" validate:"required"`
	NumberOfGuests  int                   `json:"number_of_guests" validate:"required,gte=1,lte=20"`
	PurposeOfStay   string                `json:"purpose_of_stay" validate:"required,oneof=business leisure transit event other"`
	PurposeDetails  string                `json:"purpose_details" validate:"max=1000"`
	VehicleMake     string                `json:"vehicle_make" validate:"max=100"`
	VehiclePlate    string                `json:"vehicle_plate" validate:"max=30"`
	ParkingRequired bool                  `json:"parking_required"`
	Company         string                `json:"company" validate:"max=200"`
	Payment         InitialPaymentRequest `json:"payment"`
	ChangedBy       string                `json:"changed_by" validate:"max=100"`
}

type InitialPaymentRequest struct {
	Amount              decimal.Decimal `json:"amount"`
	PaymentMode         string          `json:"payment_mode" validate:"required,oneof=cash card mobile_money bank_transfer"`
	MobileMoneyProvider string          `json:"mobile_money_provider" validate:"max=50"`
	MobileMoneyNumber   string          `json:"mobile_money_number" validate:"max=30"`
	DiscountType        string          `json:"discount_type" validate:"omitempty,oneof=none corporate promo"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
}

type QuoteBookingRequest struct {
	RoomID         uuid.UUID       `json:"room_id" validate:"required"`
	CheckInDate    time.Time       `json:"check_in_date" validate:"required"`
	CheckOutDate   time.Time       `json:"check_out_date" validate:"required"`
	DiscountType   string          `json:"discount_type" validate:"omitempty,oneof=none corporate promo"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// BookingActionRequest is the optional body of check-in, check-out and cancel.
type BookingActionRequest struct {
	ChangedBy string `json:"changed_by" validate:"max=100"`
	Notes     string `json:"notes" validate:"max=1000"`
}

// Response DTOs

type QuoteResponse struct {
	PricingPolicy string          `json:"pricing_policy"`
	Currency      string          `json:"currency"`
	RoomRate      decimal.Decimal `json:"room_rate"`
	Nights        int64           `json:"nights"`
	Hours         int64           `json:"hours"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountType  string          `json:"discount_type"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
}

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	BookingCode     string     `json:"booking_code"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      string     `json:"room_number,omitempty"`
	GuestID         uuid.UUID  `json:"guest_id"`
	GuestName       string     `json:"guest_name,omitempty"`
	CheckInDate     time.Time  `json:"check_in_date"`
	CheckOutDate    time.Time  `json:"check_out_date"`
	ActualCheckIn   *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut  *time.Time `json:"actual_check_out,omitempty"`
	NumberOfGuests  int        `json:"number_of_guests"`
	PurposeOfStay   string     `json:"purpose_of_stay"`
	PurposeDetails  string     `json:"purpose_details,omitempty"`
	VehicleMake     string     `json:"vehicle_make,omitempty"`
	VehiclePlate    string     `json:"vehicle_plate,omitempty"`
	ParkingRequired bool       `json:"parking_required"`
	Company         string     `json:"company,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type PaymentSummaryResponse struct {
	RoomRate         decimal.Decimal `json:"room_rate"`
	TotalBill        decimal.Decimal `json:"total_bill"`
	DiscountType     string          `json:"discount_type"`
	Discount         decimal.Decimal `json:"discount"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	BalanceRemaining decimal.Decimal `json:"balance_remaining"`
	Status           string          `json:"status"`
}

type BookingDetailResponse struct {
	BookingResponse
	Guest    *GuestResponse         `json:"guest,omitempty"`
	Room     *RoomResponse          `json:"room,omitempty"`
	Payments []PaymentResponse      `json:"payments"`
	Summary  PaymentSummaryResponse `json:"payment_summary"`
}
