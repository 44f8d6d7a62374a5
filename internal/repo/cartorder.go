package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos-system/internal/models"
)

func (r *GormRepo) CreateCartOrder(ctx context.Context, order *models.CartOrder) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) GetCartOrder(ctx context.Context, id uint) (*models.CartOrder, error) {
	var order models.CartOrder
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListCartOrders(ctx context.Context) ([]models.CartOrder, error) {
	var orders []models.CartOrder
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListProcessingCartOrders(ctx context.Context) ([]models.CartOrder, error) {
	var orders []models.CartOrder
	if err := r.DB.WithContext(ctx).
		Where("status = ?", models.OrderStatusProcessing).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// NewestProcessingCartOrder returns nil when no order is in Processing.
// Ids are monotonically assigned, so highest id == newest creation.
func (r *GormRepo) NewestProcessingCartOrder(ctx context.Context) (*models.CartOrder, error) {
	var order models.CartOrder
	if err := r.DB.WithContext(ctx).
		Where("status = ?", models.OrderStatusProcessing).
		Order("id DESC").
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// PlaceCartOrder flips a Processing order to Placed. Returns the number
// of rows changed: 0 means the order is missing or already placed.
func (r *GormRepo) PlaceCartOrder(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.CartOrder{}).
		Where("id = ? AND status = ?", id, models.OrderStatusProcessing).
		Update("status", models.OrderStatusPlaced)
	return res.RowsAffected, res.Error
}

// DeleteCartOrder removes the order and its cart items in one transaction.
func (r *GormRepo) DeleteCartOrder(ctx context.Context, id uint) (int64, error) {
	var deleted int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_order_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.CartOrder{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (r *GormRepo) DeleteCartOrders(ctx context.Context, ids []uint) (int64, error) {
	var deleted int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_order_id IN ?", ids).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.CartOrder{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
