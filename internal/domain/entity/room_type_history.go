package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type RoomTypeAction string

const (
	RoomTypeActionCreated  RoomTypeAction = "created"
	RoomTypeActionEdited   RoomTypeAction = "edited"
	RoomTypeActionDeleted  RoomTypeAction = "deleted"
	RoomTypeActionRestored RoomTypeAction = "restored"
)

// FieldChange is a single old/new value pair recorded on an edit.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// RoomTypeHistoryEntry is an append-only audit record for the room type catalog.
// Permanent is only set on deleted entries that removed the row from the recycle bin.
type RoomTypeHistoryEntry struct {
	ID           int64                            `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomTypeID   int                              `gorm:"not null;index" json:"room_type_id"`
	RoomTypeName string                           `gorm:"type:varchar(100);not null" json:"room_type_name"`
	Action       RoomTypeAction                   `gorm:"type:varchar(20);not null;index" json:"action"`
	Permanent    bool                             `gorm:"not null;default:false" json:"permanent"`
	Changes      datatypes.JSONSlice[FieldChange] `gorm:"type:jsonb" json:"changes,omitempty"`
	Snapshot     JSON                             `gorm:"type:jsonb" json:"snapshot,omitempty"`
	PerformedBy  string                           `gorm:"type:varchar(100)" json:"performed_by,omitempty"`
	CreatedAt    time.Time                        `gorm:"autoCreateTime;index" json:"created_at"`
}

func (RoomTypeHistoryEntry) TableName() string {
	return "room_type_history"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}
