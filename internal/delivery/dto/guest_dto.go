package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateGuestRequest struct {
	FirstName             string     `json:"first_name" validate:"required,max=100"`
	LastName              string     `json:"last_name" validate:"required,max=100"`
	Nationality           string     `json:"nationality" validate:"max=100"`
	Gender                string     `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Phone                 string     `json:"phone" validate:"required,max=30"`
	Email                 string     `json:"email" validate:"omitempty,email,max=255"`
	Address               string     `json:"address" validate:"max=500"`
	NextOfKinName         string     `json:"next_of_kin_name" validate:"max=200"`
	NextOfKinPhone        string     `json:"next_of_kin_phone" validate:"max=30"`
	NationalID            string     `json:"national_id" validate:"max=50"`
	PassportNumber        string     `json:"passport_number" validate:"max=50"`
	VisaType              string     `json:"visa_type" validate:"max=50"`
	VisaNumber            string     `json:"visa_number" validate:"max=50"`
	DrivingPermitNumber   string     `json:"driving_permit_number" validate:"max=50"`
	EmergencyContactName  string     `json:"emergency_contact_name" validate:"max=200"`
	EmergencyContactPhone string     `json:"emergency_contact_phone" validate:"max=30"`
}

type UpdateGuestRequest CreateGuestRequest

// Response DTOs

type GuestResponse struct {
	ID                    uuid.UUID  `json:"id"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	FullName              string     `json:"full_name"`
	Nationality           string     `json:"nationality,omitempty"`
	Gender                string     `json:"gender,omitempty"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	Email                 string     `json:"email,omitempty"`
	Address               string     `json:"address,omitempty"`
	NextOfKinName         string     `json:"next_of_kin_name,omitempty"`
	NextOfKinPhone        string     `json:"next_of_kin_phone,omitempty"`
	NationalID            string     `json:"national_id,omitempty"`
	PassportNumber        string     `json:"passport_number,omitempty"`
	VisaType              string     `json:"visa_type,omitempty"`
	VisaNumber            string     `json:"visa_number,omitempty"`
	DrivingPermitNumber   string     `json:"driving_permit_number,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type GuestDetailResponse struct {
	GuestResponse
	Bookings []BookingResponse `json:"bookings"`
}
