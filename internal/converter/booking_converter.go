package converter

import (
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:              booking.ID,
		BookingCode:     booking.BookingCode,
		RoomID:          booking.RoomID,
		RoomNumber:      booking.Room.RoomNumber,
		GuestID:         booking.GuestID,
		GuestName:       booking.Guest.FullName(),
		CheckInDate:     booking.CheckInDate,
		CheckOutDate:    booking.CheckOutDate,
		ActualCheckIn:   booking.ActualCheckIn,
		ActualCheckOut:  booking.ActualCheckOut,
		NumberOfGuests:  booking.NumberOfGuests,
		PurposeOfStay:   string(booking.PurposeOfStay),
		PurposeDetails:  booking.PurposeDetails,
		VehicleMake:     booking.VehicleMake,
		VehiclePlate:    booking.VehiclePlate,
		ParkingRequired: booking.ParkingRequired,
		Company:         booking.Company,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

// BookingToDetailResponse adds guest, room, payments and the running bill to the booking.
func BookingToDetailResponse(booking *entity.Booking) *dto.BookingDetailResponse {
	if booking == nil {
		return nil
	}

	detail := &dto.BookingDetailResponse{
		BookingResponse: *BookingToResponse(booking),
		Payments:        PaymentsToResponses(booking.Payments),
		Summary:         PaymentSummary(booking.Payments),
	}
	if booking.Guest.ID != uuid.Nil {
		detail.Guest = GuestToResponse(&booking.Guest)
	}
	if booking.Room.ID != uuid.Nil {
		detail.Room = RoomToResponse(&booking.Room)
	}
	return detail
}

// PaymentSummary derives the bill from the booking's payments. The first payment
// carries the bill; later ones only add to the amount paid.
func PaymentSummary(payments []entity.Payment) dto.PaymentSummaryResponse {
	summary := dto.PaymentSummaryResponse{
		RoomRate:         decimal.Zero,
		TotalBill:        decimal.Zero,
		DiscountType:     string(pricing.DiscountNone),
		Discount:         decimal.Zero,
		TotalPaid:        decimal.Zero,
		BalanceRemaining: decimal.Zero,
		Status:           string(entity.PaymentStatusPending),
	}
	if len(payments) == 0 {
		return summary
	}

	first := payments[0]
	amounts := make([]decimal.Decimal, len(payments))
	for i, p := range payments {
		amounts[i] = p.Amount
		summary.TotalPaid = summary.TotalPaid.Add(p.Amount)
	}

	summary.RoomRate = first.RoomRate
	summary.TotalBill = first.TotalBill
	summary.DiscountType = first.DiscountType
	summary.Discount = first.DiscountAmount
	summary.BalanceRemaining = pricing.BalanceRemaining(first.TotalBill, first.DiscountAmount, amounts...)
	summary.Status = pricing.PaymentStatus(summary.BalanceRemaining, summary.TotalPaid)
	return summary
}
