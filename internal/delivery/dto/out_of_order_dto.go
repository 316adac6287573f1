package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarkOutOfOrderRequest struct {
	Reason    string     `json:"reason" validate:"required,max=255"`
	Details   string     `json:"details" validate:"max=2000"`
	Date      *time.Time `json:"date"`
	ChangedBy string     `json:"changed_by" validate:"max=100"`
}

type MarkAvailableRequest struct {
	Notes     string `json:"notes" validate:"max=1000"`
	ChangedBy string `json:"changed_by" validate:"max=100"`
}

type OutOfOrderRoomResponse struct {
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	CategoryName string    `json:"category_name,omitempty"`
	Reason       string    `json:"reason"`
	Details      string    `json:"details,omitempty"`
	Date         time.Time `json:"date"`
	ChangedBy    string    `json:"changed_by,omitempty"`
}
