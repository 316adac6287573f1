package entity

import "github.com/google/uuid"

// Domain-level filters used by the repository layer to avoid coupling with delivery DTOs.

type RoomFilter struct {
	CategoryID *int
	StatusID   *int
	Limit      int
	Offset     int
}

type GuestFilter struct {
	Search string // ILIKE over name, phone, email, passport and national id
	Limit  int
	Offset int
}

type BookingFilter struct {
	Status  BookingStatus
	RoomID  *uuid.UUID
	GuestID *uuid.UUID
	Limit   int
	Offset  int
}

type PaymentFilter struct {
	Status    PaymentStatus
	BookingID *uuid.UUID
	Limit     int
	Offset    int
}
