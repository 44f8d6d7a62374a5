package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pos-system/internal/models"
	"pos-system/internal/repo"
)

type CartLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   uint    `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
}

type CartView struct {
	OrderID       uint       `json:"order_id"`
	Items         []CartLine `json:"items"`
	TotalQuantity uint       `json:"total_quantity"`
	TotalPrice    float64    `json:"total_price"`
}

type CartService struct {
	Repo *repo.GormRepo
	Hub  *Hub
}

// AddItem puts a menu item into a processing order's cart, incrementing
// the quantity when it is already there.
func (s *CartService) AddItem(ctx context.Context, orderID, menuItemID uint, quantity uint) (*models.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}

	order, err := s.Repo.GetCartOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if order.Status != models.OrderStatusProcessing {
		return nil, fmt.Errorf("%w: order %d is already placed", ErrConflict, orderID)
	}

	menuItem, err := s.Repo.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, menuItemID)
	}
	if !menuItem.Available {
		return nil, fmt.Errorf("%w: menu item %q is unavailable", ErrValidation, menuItem.Name)
	}

	item := models.CartItem{
		CartOrderID: orderID,
		MenuItemID:  menuItemID,
		Quantity:    quantity,
	}
	if err := s.Repo.AddCartItem(ctx, &item); err != nil {
		return nil, err
	}
	s.Hub.Notify()
	return &item, nil
}

// DecrementItem lowers the quantity by one, removing the line at zero.
func (s *CartService) DecrementItem(ctx context.Context, orderID, menuItemID uint) (bool, *models.CartItem, error) {
	deleted, item, err := s.Repo.DecrementCartItem(ctx, orderID, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, fmt.Errorf("%w: cart item", ErrNotFound)
		}
		return false, nil, err
	}
	s.Hub.Notify()
	return deleted, item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, orderID, menuItemID uint) error {
	rows, err := s.Repo.RemoveCartItem(ctx, orderID, menuItemID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: cart item", ErrNotFound)
	}
	s.Hub.Notify()
	return nil
}

// GetCart returns the cart lines with derived per-line and whole-order
// totals.
func (s *CartService) GetCart(ctx context.Context, orderID uint) (*CartView, error) {
	order, err := s.Repo.GetCartOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}

	items, err := s.Repo.ListCartItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view := CartView{OrderID: orderID, Items: make([]CartLine, 0, len(items))}
	for _, item := range items {
		line := CartLine{
			MenuItemID: item.MenuItemID,
			Name:       item.MenuItem.Name,
			Price:      item.MenuItem.Price,
			Quantity:   item.Quantity,
			LineTotal:  float64(item.Quantity) * item.MenuItem.Price,
		}
		view.Items = append(view.Items, line)
		view.TotalQuantity += item.Quantity
		view.TotalPrice += line.LineTotal
	}
	return &view, nil
}
