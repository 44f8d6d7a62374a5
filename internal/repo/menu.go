package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos-system/internal/models"
)

func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) ListMenuItems(ctx context.Context, offset, limit int) ([]models.MenuItem, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepo) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *GormRepo) DeleteMenuItem(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
