package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type systemSettingRepository struct{}

func NewSystemSettingRepository() domainRepo.SystemSettingRepository {
	return &systemSettingRepository{}
}

func (r *systemSettingRepository) Get(ctx context.Context, db *gorm.DB) (*entity.SystemSetting, error) {
	var setting entity.SystemSetting
	err := db.WithContext(ctx).Where("id = ?", entity.SystemSettingID).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Save upserts the single settings row.
func (r *systemSettingRepository) Save(ctx context.Context, db *gorm.DB, setting *entity.SystemSetting) error {
	setting.ID = entity.SystemSettingID
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(setting).Error
}
