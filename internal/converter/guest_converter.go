package converter

import (
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
)

// GuestRequestToEntity copies registration fields onto guest, leaving identity and timestamps alone.
func GuestRequestToEntity(req *dto.CreateGuestRequest, guest *entity.Guest) {
	guest.FirstName = req.FirstName
	guest.LastName = req.LastName
	guest.Nationality = req.Nationality
	guest.Gender = req.Gender
	guest.DateOfBirth = req.DateOfBirth
	guest.Phone = req.Phone
	guest.Email = req.Email
	guest.Address = req.Address
	guest.NextOfKinName = req.NextOfKinName
	guest.NextOfKinPhone = req.NextOfKinPhone
	guest.NationalID = req.NationalID
	guest.PassportNumber = req.PassportNumber
	guest.VisaType = req.VisaType
	guest.VisaNumber = req.VisaNumber
	guest.DrivingPermitNumber = req.DrivingPermitNumber
	guest.EmergencyContactName = req.EmergencyContactName
	guest.EmergencyContactPhone = req.EmergencyContactPhone
}

func GuestToResponse(guest *entity.Guest) *dto.GuestResponse {
	if guest == nil {
		return nil
	}

	return &dto.GuestResponse{
		ID:                    guest.ID,
		FirstName:             guest.FirstName,
		LastName:              guest.LastName,
		FullName:              guest.FullName(),
		Nationality:           guest.Nationality,
		Gender:                guest.Gender,
		DateOfBirth:           guest.DateOfBirth,
		Phone:                 guest.Phone,
		Email:                 guest.Email,
		Address:               guest.Address,
		NextOfKinName:         guest.NextOfKinName,
		NextOfKinPhone:        guest.NextOfKinPhone,
		NationalID:            guest.NationalID,
		PassportNumber:        guest.PassportNumber,
		VisaType:              guest.VisaType,
		VisaNumber:            guest.VisaNumber,
		DrivingPermitNumber:   guest.DrivingPermitNumber,
		EmergencyContactName:  guest.EmergencyContactName,
		EmergencyContactPhone: guest.EmergencyContactPhone,
		CreatedAt:             guest.CreatedAt,
		UpdatedAt:             guest.UpdatedAt,
	}
}

func GuestsToResponses(guests []entity.Guest) []dto.GuestResponse {
	responses := make([]dto.GuestResponse, len(guests))
	for i := range guests {
		responses[i] = *GuestToResponse(&guests[i])
	}
	return responses
}
