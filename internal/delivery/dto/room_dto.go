package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateRoomRequest struct {
	RoomNumber  string          `json:"room_number" validate:"required,max=20"`
	CategoryID  int             `json:"category_id" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description" validate:"max=2000"`
	Images      []string        `json:"images" validate:"omitempty,dive,url"`
}

type UpdateRoomRequest struct {
	RoomNumber  string          `json:"room_number" validate:"required,max=20"`
	CategoryID  int             `json:"category_id" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description" validate:"max=2000"`
	Images      []string        `json:"images" validate:"omitempty,dive,url"`
}

// Response DTOs

type RoomResponse struct {
	ID            uuid.UUID          `json:"id"`
	RoomNumber    string             `json:"room_number"`
	CategoryID    int                `json:"category_id"`
	CategoryName  string             `json:"category_name,omitempty"`
	Price         decimal.Decimal    `json:"price"`
	Description   string             `json:"description"`
	Images        []string           `json:"images"`
	CurrentStatus *RoomStatusSummary `json:"current_status,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
