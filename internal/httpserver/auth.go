package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/logging"
	"pos-system/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "login")

	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, employee, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return httpError(c, l, "login_error", err)
	}

	l.Info("employee logged in", "employee_id", employee.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"access_token": token,
		"employee":     employee,
	})
}
