package converter

import (
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
)

func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:                  payment.ID,
		BookingID:           payment.BookingID,
		Amount:              payment.Amount,
		PaymentMode:         string(payment.PaymentMode),
		MobileMoneyProvider: payment.MobileMoneyProvider,
		MobileMoneyNumber:   payment.MobileMoneyNumber,
		RoomRate:            payment.RoomRate,
		DiscountType:        payment.DiscountType,
		DiscountAmount:      payment.DiscountAmount,
		TotalBill:           payment.TotalBill,
		BalanceRemaining:    payment.BalanceRemaining,
		Status:              string(payment.Status),
		ReceiptNumber:       payment.ReceiptNumber,
		PaymentDate:         payment.PaymentDate,
		CreatedAt:           payment.CreatedAt,
	}
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
