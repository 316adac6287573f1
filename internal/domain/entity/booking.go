package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusActive     BookingStatus = "active"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type PurposeOfStay string

const (
	PurposeBusiness PurposeOfStay = "business"
	PurposeLeisure  PurposeOfStay = "leisure"
	PurposeTransit  PurposeOfStay = "transit"
	PurposeEvent    PurposeOfStay = "event"
	PurposeOther    PurposeOfStay = "other"
)

// Booking links a guest to a room for a date range.
type Booking struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingCode     string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	RoomID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"room_id"`
	GuestID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"guest_id"`
	CheckInDate     time.Time     `gorm:"not null;index" json:"check_in_date"`
	CheckOutDate    time.Time     `gorm:"not null;index" json:"check_out_date"`
	ActualCheckIn   *time.Time    `json:"actual_check_in,omitempty"`
	ActualCheckOut  *time.Time    `json:"actual_check_out,omitempty"`
	NumberOfGuests  int           `gorm:"not null;default:1" json:"number_of_guests"`
	PurposeOfStay   PurposeOfStay `gorm:"type:varchar(20);not null" json:"purpose_of_stay"`
	PurposeDetails  string        `gorm:"type:text" json:"purpose_details,omitempty"`
	VehicleMake     string        `gorm:"type:varchar(100)" json:"vehicle_make,omitempty"`
	VehiclePlate    string        `gorm:"type:varchar(30)" json:"vehicle_plate,omitempty"`
	ParkingRequired bool          `gorm:"not null;default:false" json:"parking_required"`
	Company         string        `gorm:"type:varchar(200)" json:"company,omitempty"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Room     Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest    Guest     `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsActive checks if booking is in active status
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// IsCheckedIn checks if the guest has arrived and not yet left
func (b *Booking) IsCheckedIn() bool {
	return b.IsActive() && b.ActualCheckIn != nil
}

// IsCheckedOut checks if booking is checked out
func (b *Booking) IsCheckedOut() bool {
	return b.Status == BookingStatusCheckedOut
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CheckIn stamps the actual arrival time
func (b *Booking) CheckIn(at time.Time) {
	b.ActualCheckIn = &at
}

// CheckOut stamps the actual departure time and closes the booking
func (b *Booking) CheckOut(at time.Time) {
	b.ActualCheckOut = &at
	b.Status = BookingStatusCheckedOut
}

// Cancel changes booking status to cancelled
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}
