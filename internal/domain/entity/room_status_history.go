package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomStatusHistory is one append-only entry per room status change.
// Reason and Details carry out-of-order information. ChangedAt is always the server time
// of the write; EffectiveAt is the date staff reported, when it differs.
type RoomStatusHistory struct {
	ID               int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"room_id"`
	StatusID         int        `gorm:"not null;index" json:"status_id"`
	PreviousStatusID *int       `json:"previous_status_id,omitempty"`
	Notes            string     `gorm:"type:text" json:"notes,omitempty"`
	Reason           string     `gorm:"type:varchar(255)" json:"reason,omitempty"`
	Details          string     `gorm:"type:text" json:"details,omitempty"`
	ChangedBy        string     `gorm:"type:varchar(100)" json:"changed_by,omitempty"`
	ChangedAt        time.Time  `gorm:"not null;index" json:"changed_at"`
	EffectiveAt      *time.Time `json:"effective_at,omitempty"`
	BookingID        *uuid.UUID `gorm:"type:uuid;index" json:"booking_id,omitempty"`

	// Relationships
	Status         *RoomStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	PreviousStatus *RoomStatus `gorm:"foreignKey:PreviousStatusID" json:"previous_status,omitempty"`
}

func (RoomStatusHistory) TableName() string {
	return "room_status_history"
}

// EffectiveDate is the reported date of the change, falling back to when it was written.
func (h *RoomStatusHistory) EffectiveDate() time.Time {
	if h.EffectiveAt != nil && !h.EffectiveAt.IsZero() {
		return *h.EffectiveAt
	}
	return h.ChangedAt
}
