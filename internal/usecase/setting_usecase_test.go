package usecase

import (
	"context"
	"testing"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentSettings_DefaultsUntilSaved(t *testing.T) {
	repo := &mockSettingRepo{}
	uc := NewSettingUsecase(nil, testLogger(), repo, newMemoryCache())

	setting, err := uc.CurrentSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PricingPolicyStandard, setting.PricingPolicy)
	assert.Equal(t, "UGX", setting.Currency)
}

func TestUpdateSettings(t *testing.T) {
	base := dto.UpdateSettingsRequest{
		HotelName:    " Lakeside ",
		Currency:     "ugx",
		CheckInTime:  "14:00",
		CheckOutTime: "11:00",
	}

	tests := []struct {
		name    string
		mutate  func(req *dto.UpdateSettingsRequest)
		wantErr error
	}{
		{
			name: "negative rate",
			mutate: func(req *dto.UpdateSettingsRequest) {
				req.PricingPolicy = "standard"
				req.HourlyRate = decimal.NewFromInt(-1)
			},
			wantErr: ErrInvalidRate,
		},
		{
			name: "custom without hourly rate",
			mutate: func(req *dto.UpdateSettingsRequest) {
				req.PricingPolicy = "custom"
			},
			wantErr: ErrRateMissing,
		},
		{
			name: "mixed without overtime rate",
			mutate: func(req *dto.UpdateSettingsRequest) {
				req.PricingPolicy = "mixed"
				req.HourlyRate = decimal.NewFromInt(10000)
			},
			wantErr: ErrRateMissing,
		},
		{
			name: "custom with hourly rate",
			mutate: func(req *dto.UpdateSettingsRequest) {
				req.PricingPolicy = "custom"
				req.HourlyRate = decimal.NewFromInt(10000)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSettingRepo{}
			uc := NewSettingUsecase(nil, testLogger(), repo, newMemoryCache())
			req := base
			tt.mutate(&req)

			resp, err := uc.UpdateSettings(context.Background(), &req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Lakeside", resp.HotelName)
			assert.Equal(t, "UGX", resp.Currency)
			require.Len(t, repo.saved, 1)
		})
	}
}

func TestUpdateSettings_InvalidatesCache(t *testing.T) {
	repo := &mockSettingRepo{setting: entity.DefaultSystemSetting()}
	cache := newMemoryCache()
	uc := NewSettingUsecase(nil, testLogger(), repo, cache)
	ctx := context.Background()

	_, err := uc.CurrentSettings(ctx)
	require.NoError(t, err)
	assert.Contains(t, cache.data, service.CacheKeySettings)

	_, err = uc.UpdateSettings(ctx, &dto.UpdateSettingsRequest{
		HotelName:     "Hotel",
		Currency:      "USD",
		PricingPolicy: "standard",
		CheckInTime:   "12:00",
		CheckOutTime:  "10:00",
	})
	require.NoError(t, err)
	assert.NotContains(t, cache.data, service.CacheKeySettings)

	current, err := uc.CurrentSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", current.Currency)
}
