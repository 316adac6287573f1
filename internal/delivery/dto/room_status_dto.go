package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRoomStatusRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Color       string `json:"color" validate:"required,hexcolor"`
	Description string `json:"description" validate:"max=500"`
	IsDefault   bool   `json:"is_default"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateRoomStatusRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Color       string `json:"color" validate:"required,hexcolor"`
	Description string `json:"description" validate:"max=500"`
	IsDefault   bool   `json:"is_default"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateRoomCurrentStatusRequest moves a room to another status.
type UpdateRoomCurrentStatusRequest struct {
	StatusID  int        `json:"status_id" validate:"required,gt=0"`
	Notes     string     `json:"notes" validate:"max=1000"`
	ChangedBy string     `json:"changed_by" validate:"max=100"`
	BookingID *uuid.UUID `json:"booking_id"`
}

// Response DTOs

type RoomStatusResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomStatusSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RoomStatusHistoryResponse carries the resolved status names as old_value/new_value.
type RoomStatusHistoryResponse struct {
	ID               int64      `json:"id"`
	RoomID           uuid.UUID  `json:"room_id"`
	StatusID         int        `json:"status_id"`
	PreviousStatusID *int       `json:"previous_status_id,omitempty"`
	OldValue         string     `json:"old_value"`
	NewValue         string     `json:"new_value"`
	Color            string     `json:"color"`
	Notes            string     `json:"notes,omitempty"`
	Reason           string     `json:"reason,omitempty"`
	Details          string     `json:"details,omitempty"`
	ChangedBy        string     `json:"changed_by,omitempty"`
	ChangedAt        time.Time  `json:"changed_at"`
	EffectiveAt      *time.Time `json:"effective_at,omitempty"`
	BookingID        *uuid.UUID `json:"booking_id,omitempty"`
}
