package converter

import (
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
)

func SettingToResponse(setting *entity.SystemSetting) *dto.SettingsResponse {
	if setting == nil {
		return nil
	}

	return &dto.SettingsResponse{
		HotelName:     setting.HotelName,
		Currency:      setting.Currency,
		PricingPolicy: string(setting.PricingPolicy),
		HourlyRate:    setting.HourlyRate,
		OvertimeRate:  setting.OvertimeRate,
		CheckInTime:   setting.CheckInTime,
		CheckOutTime:  setting.CheckOutTime,
		UpdatedAt:     setting.UpdatedAt,
	}
}
