package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pos-system/internal/models"
)

func (r *GormRepo) GetSelected(ctx context.Context) (*models.Selected, error) {
	var selected models.Selected
	if err := r.DB.WithContext(ctx).First(&selected, models.SelectedRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &selected, nil
}

// SetSelected upserts the singleton pointer row.
func (r *GormRepo) SetSelected(ctx context.Context, orderID uint) error {
	selected := models.Selected{ID: models.SelectedRowID, CartOrderID: orderID}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"cart_order_id"}),
		}).
		Create(&selected).Error
}

func (r *GormRepo) ClearSelected(ctx context.Context) error {
	return r.DB.WithContext(ctx).
		Delete(&models.Selected{}, models.SelectedRowID).Error
}
