package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType is a catalog entry describing a kind of room. Deleting a room type only
// tombstones it (DeletedAt/DeletedBy); tombstoned rows form the recycle bin.
type RoomType struct {
	ID             int                         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string                      `gorm:"type:varchar(100);not null" json:"name"`
	Description    string                      `gorm:"type:text" json:"description,omitempty"`
	BasePrice      decimal.Decimal             `gorm:"type:numeric(14,2);not null" json:"base_price"`
	MaxOccupancy   int                         `gorm:"not null" json:"max_occupancy"`
	TotalRooms     int                         `gorm:"not null" json:"total_rooms"`
	AvailableRooms int                         `gorm:"not null" json:"available_rooms"`
	Amenities      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"amenities"`
	BedType        string                      `gorm:"type:varchar(50)" json:"bed_type,omitempty"`
	Size           string                      `gorm:"type:varchar(50)" json:"size,omitempty"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"deleted_at,omitempty"`
	DeletedBy      *string                     `gorm:"type:varchar(100)" json:"deleted_by,omitempty"`
}

func (RoomType) TableName() string {
	return "room_types"
}

// IsDeleted reports whether the room type sits in the recycle bin.
func (rt *RoomType) IsDeleted() bool {
	return rt.DeletedAt.Valid
}

// Diff returns the changes between rt and updated for the tracked fields
// (name, description, base price), in that order.
func (rt *RoomType) Diff(updated *RoomType) []FieldChange {
	var changes []FieldChange

	if rt.Name != updated.Name {
		changes = append(changes, FieldChange{Field: "name", OldValue: rt.Name, NewValue: updated.Name})
	}
	if rt.Description != updated.Description {
		changes = append(changes, FieldChange{Field: "description", OldValue: rt.Description, NewValue: updated.Description})
	}
	if !rt.BasePrice.Equal(updated.BasePrice) {
		changes = append(changes, FieldChange{Field: "base_price", OldValue: rt.BasePrice.String(), NewValue: updated.BasePrice.String()})
	}

	return changes
}

// Snapshot captures the record for the history log.
func (rt *RoomType) Snapshot() JSON {
	snapshot := JSON{
		"id":              rt.ID,
		"name":            rt.Name,
		"description":     rt.Description,
		"base_price":      rt.BasePrice.String(),
		"max_occupancy":   rt.MaxOccupancy,
		"total_rooms":     rt.TotalRooms,
		"available_rooms": rt.AvailableRooms,
		"amenities":       []string(rt.Amenities),
		"bed_type":        rt.BedType,
		"size":            rt.Size,
		"created_at":      rt.CreatedAt,
	}
	if rt.DeletedAt.Valid {
		snapshot["deleted_at"] = rt.DeletedAt.Time
	}
	if rt.DeletedBy != nil {
		snapshot["deleted_by"] = *rt.DeletedBy
	}
	return snapshot
}
