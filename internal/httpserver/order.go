package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/logging"
	"pos-system/internal/models"
	"pos-system/internal/mykafka"
	"pos-system/internal/service"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

type createOrderRequest struct {
	OrderType        models.OrderType `json:"order_type" validate:"required"`
	DoesChargesApply bool             `json:"does_charges_apply"`
	Customer         *struct {
		Phone string `json:"phone"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"customer"`
	Address *struct {
		AddressName string `json:"address_name"`
		ShortName   string `json:"short_name"`
	} `json:"address"`
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create.order")

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svcReq := service.CreateOrderRequest{
		OrderType:        req.OrderType,
		DoesChargesApply: req.DoesChargesApply,
	}
	if req.Customer != nil {
		svcReq.Customer = &models.Customer{
			Phone: req.Customer.Phone,
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
		}
	}
	if req.Address != nil {
		svcReq.Address = &models.Address{
			AddressName: req.Address.AddressName,
			ShortName:   req.Address.ShortName,
		}
	}

	view, err := h.Svc.CreateOrder(ctx, svcReq)
	if err != nil {
		return httpError(c, l, "create_order_error", err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(view.ID), map[string]any{
		"type":       "order_created",
		"order_id":   view.ID,
		"order_type": view.OrderType,
	})
	l.Info("order created", "order_id", view.ID)
	return c.JSON(http.StatusCreated, view)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.order")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		return httpError(c, l, "get_order_error", err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.orders")

	views, err := h.Svc.ListOrders(ctx, c.QueryParam("q"))
	if err != nil {
		return httpError(c, l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *OrderHTTP) ListProcessingOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.processing.orders")

	views, err := h.Svc.ListProcessingOrders(ctx)
	if err != nil {
		return httpError(c, l, "list_processing_orders_error", err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "place.order")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.Svc.PlaceOrder(ctx, id)
	if err != nil {
		return httpError(c, l, "place_order_error", err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(id), map[string]any{
		"type":     "order_placed",
		"order_id": id,
		"total":    view.TotalPrice,
	})
	l.Info("order placed", "order_id", id)
	return c.JSON(http.StatusOK, view)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.order")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		return httpError(c, l, "delete_order_error", err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(id), map[string]any{
		"type":     "order_deleted",
		"order_id": id,
	})
	l.Info("order deleted", "order_id", id)
	return c.JSON(http.StatusOK, map[string]any{"message": "order deleted", "order_id": id})
}

func (h *OrderHTTP) DeleteOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.orders")

	var req struct {
		IDs []uint `json:"ids" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("delete_orders_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	count, err := h.Svc.DeleteOrders(ctx, req.IDs)
	if err != nil {
		return httpError(c, l, "delete_orders_error", err)
	}

	publish(c, h.Producer, "order_events", "bulk", map[string]any{
		"type":      "orders_deleted",
		"order_ids": req.IDs,
		"count":     count,
	})
	l.Info("orders deleted", "count", count)
	return c.JSON(http.StatusOK, map[string]any{
		"message": fmt.Sprintf("%d orders deleted", count),
		"count":   count,
	})
}

func (h *OrderHTTP) SelectOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "select.order")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.SelectOrder(ctx, id); err != nil {
		return httpError(c, l, "select_order_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "order selected", "order_id": id})
}

func (h *OrderHTTP) GetSelectedOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.selected.order")

	view, err := h.Svc.GetSelectedOrder(ctx)
	if err != nil {
		return httpError(c, l, "get_selected_order_error", err)
	}
	return c.JSON(http.StatusOK, view)
}
