package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Guest holds the personal and identification data captured at registration.
type Guest struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName             string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName              string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Nationality           string     `gorm:"type:varchar(100)" json:"nationality,omitempty"`
	Gender                string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Phone                 string     `gorm:"type:varchar(30);index" json:"phone,omitempty"`
	Email                 string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Address               string     `gorm:"type:text" json:"address,omitempty"`
	NextOfKinName         string     `gorm:"type:varchar(200)" json:"next_of_kin_name,omitempty"`
	NextOfKinPhone        string     `gorm:"type:varchar(30)" json:"next_of_kin_phone,omitempty"`
	NationalID            string     `gorm:"column:national_id;type:varchar(50)" json:"national_id,omitempty"`
	PassportNumber        string     `gorm:"type:varchar(50)" json:"passport_number,omitempty"`
	VisaType              string     `gorm:"type:varchar(50)" json:"visa_type,omitempty"`
	VisaNumber            string     `gorm:"type:varchar(50)" json:"visa_number,omitempty"`
	DrivingPermitNumber   string     `gorm:"type:varchar(50)" json:"driving_permit_number,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(200)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(30)" json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Bookings []Booking `gorm:"foreignKey:GuestID" json:"bookings,omitempty"`
}

func (Guest) TableName() string {
	return "guests"
}

func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
