package repo

import (
	"context"

	"pos-system/internal/models"
)

type OrderDayRow struct {
	Day    string  `json:"day"`
	Orders int64   `json:"orders"`
	Items  int64   `json:"items"`
	Total  float64 `json:"total"`
}

// OrdersByDay groups placed orders by calendar day. DATE() works on both
// postgres and the sqlite test driver.
func (r *GormRepo) OrdersByDay(ctx context.Context, from, to string) ([]OrderDayRow, error) {
	q := r.DB.WithContext(ctx).
		Model(&models.CartOrder{}).
		Select("DATE(cart_orders.created_at) AS day, COUNT(DISTINCT cart_orders.id) AS orders, COALESCE(SUM(cart_items.quantity), 0) AS items, COALESCE(SUM(cart_items.quantity * menu_items.price), 0) AS total").
		Joins("LEFT JOIN cart_items ON cart_items.cart_order_id = cart_orders.id").
		Joins("LEFT JOIN menu_items ON menu_items.id = cart_items.menu_item_id").
		Where("cart_orders.status = ?", models.OrderStatusPlaced)
	if from != "" {
		q = q.Where("DATE(cart_orders.created_at) >= ?", from)
	}
	if to != "" {
		q = q.Where("DATE(cart_orders.created_at) <= ?", to)
	}

	var rows []OrderDayRow
	if err := q.Group("DATE(cart_orders.created_at)").Order("day ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
