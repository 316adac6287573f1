package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingPolicy selects how a stay is priced.
type PricingPolicy string

const (
	PricingPolicyStandard PricingPolicy = "standard" // nightly
	PricingPolicyCustom   PricingPolicy = "custom"   // hourly
	PricingPolicyMixed    PricingPolicy = "mixed"    // nightly plus overtime hours
)

// SystemSettingID is the primary key of the single settings row.
const SystemSettingID = 1

// SystemSetting is the per-deployment configuration row.
type SystemSetting struct {
	ID            int             `gorm:"primaryKey" json:"id"`
	HotelName     string          `gorm:"type:varchar(255);not null" json:"hotel_name"`
	Currency      string          `gorm:"type:varchar(3);not null" json:"currency"`
	PricingPolicy PricingPolicy   `gorm:"type:varchar(20);not null;default:'standard'" json:"pricing_policy"`
	HourlyRate    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"overtime_rate"`
	CheckInTime   string          `gorm:"type:varchar(5);not null" json:"check_in_time"`
	CheckOutTime  string          `gorm:"type:varchar(5);not null" json:"check_out_time"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}

// DefaultSystemSetting is used when the settings row has not been written yet.
func DefaultSystemSetting() *SystemSetting {
	return &SystemSetting{
		ID:            SystemSettingID,
		HotelName:     "Hotel",
		Currency:      "UGX",
		PricingPolicy: PricingPolicyStandard,
		HourlyRate:    decimal.Zero,
		OvertimeRate:  decimal.Zero,
		CheckInTime:   "14:00",
		CheckOutTime:  "11:00",
	}
}
