package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/logging"
	"pos-system/internal/models"
	"pos-system/internal/mykafka"
	"pos-system/internal/service"
	"pos-system/internal/util"
)

type MenuHTTP struct {
	Svc      *service.MenuService
	Producer *mykafka.Producer
}

type menuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Available   *bool   `json:"available"`
}

func (r *menuItemRequest) toModel(id uint) models.MenuItem {
	item := models.MenuItem{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
		Available:   true,
	}
	if r.Available != nil {
		item.Available = *r.Available
	}
	return item
}

func (h *MenuHTTP) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create.menu.item")

	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_menu_item_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item := req.toModel(0)
	if err := h.Svc.Create(ctx, &item); err != nil {
		return httpError(c, l, "create_menu_item_error", err)
	}

	publish(c, h.Producer, "menu_events", fmt.Sprint(item.ID), map[string]any{
		"type":         "menu_item_created",
		"menu_item_id": item.ID,
		"name":         item.Name,
	})
	l.Info("menu item created", "menu_item_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *MenuHTTP) GetMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.menu.item")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(c, l, "get_menu_item_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) ListMenuItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.menu.items")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	items, total, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		return httpError(c, l, "list_menu_items_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

func (h *MenuHTTP) UpdateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update.menu.item")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_menu_item_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item := req.toModel(id)
	if err := h.Svc.Update(ctx, &item); err != nil {
		return httpError(c, l, "update_menu_item_error", err)
	}

	publish(c, h.Producer, "menu_events", fmt.Sprint(id), map[string]any{
		"type":         "menu_item_updated",
		"menu_item_id": id,
	})
	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.menu.item")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(c, l, "delete_menu_item_error", err)
	}

	publish(c, h.Producer, "menu_events", fmt.Sprint(id), map[string]any{
		"type":         "menu_item_deleted",
		"menu_item_id": id,
	})
	return c.JSON(http.StatusOK, map[string]any{"message": "menu item deleted", "menu_item_id": id})
}
