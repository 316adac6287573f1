package usecase

import (
	"context"
	"errors"
	"strings"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"
	"hotel-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRate = errors.New("rates cannot be negative")
	ErrRateMissing = errors.New("the selected pricing policy needs a positive rate")
)

type SettingUsecase interface {
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	// CurrentSettings returns the stored settings, or the defaults if none were saved yet.
	CurrentSettings(ctx context.Context) (*entity.SystemSetting, error)
}

type settingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	settingRepo repository.SystemSettingRepository
	cache       service.CacheService
}

func NewSettingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingRepo repository.SystemSettingRepository,
	cache service.CacheService,
) SettingUsecase {
	return &settingUsecase{
		db:          db,
		log:         log,
		settingRepo: settingRepo,
		cache:       cache,
	}
}

func (u *settingUsecase) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	setting, err := u.CurrentSettings(ctx)
	if err != nil {
		return nil, err
	}
	return converter.SettingToResponse(setting), nil
}

func (u *settingUsecase) CurrentSettings(ctx context.Context) (*entity.SystemSetting, error) {
	var cached entity.SystemSetting
	if u.cache.Get(ctx, service.CacheKeySettings, &cached) {
		return &cached, nil
	}

	setting, err := u.settingRepo.Get(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load system settings: %+v", err)
		return nil, err
	}
	if setting == nil {
		return entity.DefaultSystemSetting(), nil
	}

	u.cache.Set(ctx, service.CacheKeySettings, setting)
	return setting, nil
}

func (u *settingUsecase) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if req.HourlyRate.IsNegative() || req.OvertimeRate.IsNegative() {
		return nil, ErrInvalidRate
	}

	policy := entity.PricingPolicy(req.PricingPolicy)
	switch policy {
	case entity.PricingPolicyCustom:
		if !req.HourlyRate.IsPositive() {
			return nil, ErrRateMissing
		}
	case entity.PricingPolicyMixed:
		if !req.OvertimeRate.IsPositive() {
			return nil, ErrRateMissing
		}
	}

	setting := &entity.SystemSetting{
		ID:            entity.SystemSettingID,
		HotelName:     strings.TrimSpace(req.HotelName),
		Currency:      strings.ToUpper(req.Currency),
		PricingPolicy: policy,
		HourlyRate:    req.HourlyRate,
		OvertimeRate:  req.OvertimeRate,
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
	}

	if err := u.settingRepo.Save(ctx, u.db, setting); err != nil {
		u.log.Warnf("Failed to save system settings: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx, service.CacheKeySettings)
	u.log.Infof("System settings updated: policy=%s", policy)
	return converter.SettingToResponse(setting), nil
}
