package entity

import "time"

// RoomCategory groups rooms for pricing and reporting (e.g. Standard, Deluxe).
type RoomCategory struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Rooms []Room `gorm:"foreignKey:CategoryID" json:"rooms,omitempty"`
}

func (RoomCategory) TableName() string {
	return "room_categories"
}
