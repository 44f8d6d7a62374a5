package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/logging"
	"pos-system/internal/mykafka"
	"pos-system/internal/service"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cart")

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.Svc.GetCart(ctx, orderID)
	if err != nil {
		return httpError(c, l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.cart.item")

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		MenuItemID uint `json:"menu_item_id" validate:"required"`
		Quantity   uint `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_cart_item_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.Svc.AddItem(ctx, orderID, req.MenuItemID, req.Quantity)
	if err != nil {
		return httpError(c, l, "add_cart_item_error", err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(orderID), map[string]any{
		"type":         "cart_item_added",
		"order_id":     orderID,
		"menu_item_id": req.MenuItemID,
		"quantity":     item.Quantity,
	})
	l.Info("cart item added", "order_id", orderID, "menu_item_id", req.MenuItemID)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) DecrementItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "decrement.cart.item")

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	menuItemID, err := parseID(c, "item")
	if err != nil {
		return err
	}

	deleted, item, err := h.Svc.DecrementItem(ctx, orderID, menuItemID)
	if err != nil {
		return httpError(c, l, "decrement_cart_item_error", err)
	}

	if deleted {
		return c.JSON(http.StatusOK, map[string]any{"message": "cart item removed", "menu_item_id": menuItemID})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "remove.cart.item")

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	menuItemID, err := parseID(c, "item")
	if err != nil {
		return err
	}

	if err := h.Svc.RemoveItem(ctx, orderID, menuItemID); err != nil {
		return httpError(c, l, "remove_cart_item_error", err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(orderID), map[string]any{
		"type":         "cart_item_removed",
		"order_id":     orderID,
		"menu_item_id": menuItemID,
	})
	return c.JSON(http.StatusOK, map[string]any{"message": "cart item removed", "menu_item_id": menuItemID})
}
