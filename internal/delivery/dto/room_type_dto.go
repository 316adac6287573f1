package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateRoomTypeRequest struct {
	Name           string          `json:"name" validate:"required,min=2,max=100"`
	Description    string          `json:"description" validate:"max=2000"`
	BasePrice      decimal.Decimal `json:"base_price" validate:"required"`
	MaxOccupancy   int             `json:"max_occupancy" validate:"required,gte=1"`
	TotalRooms     int             `json:"total_rooms" validate:"gte=0"`
	AvailableRooms int             `json:"available_rooms" validate:"gte=0,ltefield=TotalRooms"`
	Amenities      []string        `json:"amenities" validate:"omitempty,dive,required,max=100"`
	BedType        string          `json:"bed_type" validate:"max=50"`
	Size           string          `json:"size" validate:"max=50"`
	PerformedBy    string          `json:"performed_by" validate:"max=100"`
}

type UpdateRoomTypeRequest struct {
	Name           string          `json:"name" validate:"required,min=2,max=100"`
	Description    string          `json:"description" validate:"max=2000"`
	BasePrice      decimal.Decimal `json:"base_price" validate:"required"`
	MaxOccupancy   int             `json:"max_occupancy" validate:"required,gte=1"`
	TotalRooms     int             `json:"total_rooms" validate:"gte=0"`
	AvailableRooms int             `json:"available_rooms" validate:"gte=0,ltefield=TotalRooms"`
	Amenities      []string        `json:"amenities" validate:"omitempty,dive,required,max=100"`
	BedType        string          `json:"bed_type" validate:"max=50"`
	Size           string          `json:"size" validate:"max=50"`
	PerformedBy    string          `json:"performed_by" validate:"max=100"`
}

// RoomTypeActionRequest is the optional body of delete, restore and purge calls.
type RoomTypeActionRequest struct {
	PerformedBy string `json:"performed_by" validate:"max=100"`
}

// Response DTOs

type RoomTypeResponse struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	BasePrice      decimal.Decimal `json:"base_price"`
	MaxOccupancy   int             `json:"max_occupancy"`
	TotalRooms     int             `json:"total_rooms"`
	AvailableRooms int             `json:"available_rooms"`
	Amenities      []string        `json:"amenities"`
	BedType        string          `json:"bed_type"`
	Size           string          `json:"size"`
	CreatedAt      time.Time       `json:"created_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
	DeletedBy      *string         `json:"deleted_by,omitempty"`
}

type FieldChangeResponse struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

type RoomTypeHistoryResponse struct {
	ID           int64                  `json:"id"`
	RoomTypeID   int                    `json:"room_type_id"`
	RoomTypeName string                 `json:"room_type_name"`
	Action       string                 `json:"action"`
	Permanent    bool                   `json:"permanent"`
	Changes      []FieldChangeResponse  `json:"changes,omitempty"`
	Snapshot     map[string]interface{} `json:"snapshot,omitempty"`
	PerformedBy  string                 `json:"performed_by,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}
