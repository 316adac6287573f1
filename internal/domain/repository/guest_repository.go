package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestRepository interface {
	Create(ctx context.Context, db *gorm.DB, guest *entity.Guest) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Guest, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.GuestFilter) ([]entity.Guest, int64, error)
	Update(ctx context.Context, db *gorm.DB, guest *entity.Guest) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
