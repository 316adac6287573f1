package entity

import (
	"strings"
	"time"
)

// Well-known status names. Statuses are looked up by name, never by a fixed ID.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusBooked      = "Booked"
	RoomStatusOccupied    = "Occupied"
	RoomStatusCleaning    = "Cleaning"
	RoomStatusMaintenance = "Maintenance"
	RoomStatusOutOfOrder  = "Out of Order"
)

// RoomStatus is a named, colored state a room can be in.
type RoomStatus struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Color       string    `gorm:"type:varchar(7);not null" json:"color"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsDefault   bool      `gorm:"not null;default:false" json:"is_default"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RoomStatus) TableName() string {
	return "room_statuses"
}

// Is compares the status name case-insensitively.
func (s *RoomStatus) Is(name string) bool {
	return strings.EqualFold(strings.TrimSpace(s.Name), name)
}

// RequiresNotes reports whether moving a room into this status needs an explanation.
func (s *RoomStatus) RequiresNotes() bool {
	return s.Is(RoomStatusMaintenance) || s.Is(RoomStatusOutOfOrder)
}

// BlocksBooking reports whether a room in this status can't take new bookings.
func (s *RoomStatus) BlocksBooking() bool {
	return s.Is(RoomStatusMaintenance) || s.Is(RoomStatusOutOfOrder)
}
