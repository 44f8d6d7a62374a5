package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/logging"
	"pos-system/internal/service"
)

type ReportHTTP struct {
	Svc *service.ReportService
}

func (h *ReportHTTP) OrderReport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.report")

	rows, err := h.Svc.OrderReport(ctx, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return httpError(c, l, "order_report_error", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHTTP) ExpenseReport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "expense.report")

	report, err := h.Svc.ExpenseReport(ctx, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return httpError(c, l, "expense_report_error", err)
	}
	return c.JSON(http.StatusOK, report)
}
