package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type UpdateSettingsRequest struct {
	HotelName     string          `json:"hotel_name" validate:"required,max=255"`
	Currency      string          `json:"currency" validate:"required,len=3"`
	PricingPolicy string          `json:"pricing_policy" validate:"required,oneof=standard custom mixed"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	CheckInTime   string          `json:"check_in_time" validate:"required,datetime=15:04"`
	CheckOutTime  string          `json:"check_out_time" validate:"required,datetime=15:04"`
}

type SettingsResponse struct {
	HotelName     string          `json:"hotel_name"`
	Currency      string          `json:"currency"`
	PricingPolicy string          `json:"pricing_policy"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	CheckInTime   string          `json:"check_in_time"`
	CheckOutTime  string          `json:"check_out_time"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
