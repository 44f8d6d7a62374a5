package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/logging"
	"pos-system/internal/models"
	"pos-system/internal/service"
)

type ExpenseHTTP struct {
	Svc *service.ExpenseService
}

type expenseRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Date   string  `json:"date" validate:"required"`
	Note   string  `json:"note"`
}

func (h *ExpenseHTTP) CreateExpense(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create.expense")

	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_expense_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expense := models.Expense{Name: req.Name, Amount: req.Amount, Date: req.Date, Note: req.Note}
	if err := h.Svc.Create(ctx, &expense); err != nil {
		return httpError(c, l, "create_expense_error", err)
	}

	l.Info("expense created", "expense_id", expense.ID)
	return c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHTTP) GetExpense(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.expense")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	expense, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(c, l, "get_expense_error", err)
	}
	return c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHTTP) ListExpenses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.expenses")

	expenses, err := h.Svc.List(ctx, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return httpError(c, l, "list_expenses_error", err)
	}
	return c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHTTP) UpdateExpense(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update.expense")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_expense_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expense := models.Expense{ID: id, Name: req.Name, Amount: req.Amount, Date: req.Date, Note: req.Note}
	if err := h.Svc.Update(ctx, &expense); err != nil {
		return httpError(c, l, "update_expense_error", err)
	}
	return c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHTTP) DeleteExpense(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.expense")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(c, l, "delete_expense_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "expense deleted", "expense_id": id})
}
