package repo

import (
	"context"

	"gorm.io/gorm"

	"pos-system/internal/models"
)

func (r *GormRepo) ListCartItems(ctx context.Context, orderID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Preload("MenuItem").
		Where("cart_order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem increments the quantity when the item is already in the
// cart, otherwise inserts a new row.
func (r *GormRepo) AddCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("cart_order_id = ? AND menu_item_id = ?", item.CartOrderID, item.MenuItemID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("cart_order_id = ? AND menu_item_id = ?", item.CartOrderID, item.MenuItemID).
				First(item).Error
		}

		return tx.Create(item).Error
	})
}

// DecrementCartItem lowers the quantity by one, deleting the row at zero.
func (r *GormRepo) DecrementCartItem(ctx context.Context, orderID, menuItemID uint) (bool, *models.CartItem, error) {
	var item models.CartItem
	deleted := false

	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cart_order_id = ? AND menu_item_id = ?", orderID, menuItemID).
			First(&item).Error; err != nil {
			return err
		}
		if item.Quantity > 1 {
			if err := tx.Model(&item).Update("quantity", gorm.Expr("quantity - 1")).Error; err != nil {
				return err
			}
			return tx.Where("cart_order_id = ? AND menu_item_id = ?", orderID, menuItemID).
				First(&item).Error
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	}); err != nil {
		return false, nil, err
	}
	return deleted, &item, nil
}

func (r *GormRepo) RemoveCartItem(ctx context.Context, orderID, menuItemID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("cart_order_id = ? AND menu_item_id = ?", orderID, menuItemID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

type cartTotalsRow struct {
	Quantity uint
	Total    float64
}

// CartOrderTotals sums item quantity and quantity*price for one order.
func (r *GormRepo) CartOrderTotals(ctx context.Context, orderID uint) (uint, float64, error) {
	var row cartTotalsRow
	err := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Select("COALESCE(SUM(cart_items.quantity), 0) AS quantity, COALESCE(SUM(cart_items.quantity * menu_items.price), 0) AS total").
		Joins("JOIN menu_items ON menu_items.id = cart_items.menu_item_id").
		Where("cart_items.cart_order_id = ?", orderID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Quantity, row.Total, nil
}

func (r *GormRepo) CountCartItems(ctx context.Context, orderID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_order_id = ?", orderID).
		Count(&count).Error
	return count, err
}
