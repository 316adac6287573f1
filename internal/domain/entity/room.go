package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Room is a physical room. Rooms are never hard-deleted.
type Room struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoomNumber      string                      `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number"`
	CategoryID      int                         `gorm:"not null;index" json:"category_id"`
	Price           decimal.Decimal             `gorm:"type:numeric(14,2);not null" json:"price"`
	Description     string                      `gorm:"type:text" json:"description,omitempty"`
	Images          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"images"`
	CurrentStatusID *int                        `gorm:"index" json:"current_status_id,omitempty"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Category      RoomCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CurrentStatus *RoomStatus  `gorm:"foreignKey:CurrentStatusID" json:"current_status,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
