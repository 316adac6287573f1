package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type SystemSettingRepository interface {
	Get(ctx context.Context, db *gorm.DB) (*entity.SystemSetting, error)
	Save(ctx context.Context, db *gorm.DB, setting *entity.SystemSetting) error
}
