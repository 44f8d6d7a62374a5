package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/logging"
	"pos-system/internal/models"
	"pos-system/internal/service"
)

type EmployeeHTTP struct {
	Svc *service.EmployeeService
}

func (h *EmployeeHTTP) CreateEmployee(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create.employee")

	var req struct {
		Name     string  `json:"name" validate:"required"`
		Phone    string  `json:"phone" validate:"required"`
		Position string  `json:"position"`
		Salary   float64 `json:"salary"`
		Username string  `json:"username" validate:"required"`
		Password string  `json:"password" validate:"required,min=6"`
		Role     string  `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_employee_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, err := h.Svc.Create(ctx, service.CreateEmployeeRequest{
		Name:     req.Name,
		Phone:    req.Phone,
		Position: req.Position,
		Salary:   req.Salary,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return httpError(c, l, "create_employee_error", err)
	}

	l.Info("employee created", "employee_id", employee.ID)
	return c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHTTP) GetEmployee(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.employee")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	employee, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(c, l, "get_employee_error", err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHTTP) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.employees")

	employees, err := h.Svc.List(ctx)
	if err != nil {
		return httpError(c, l, "list_employees_error", err)
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHTTP) UpdateEmployee(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update.employee")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name     string  `json:"name" validate:"required"`
		Phone    string  `json:"phone" validate:"required"`
		Position string  `json:"position"`
		Salary   float64 `json:"salary"`
		Role     string  `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_employee_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee := models.Employee{
		ID:       id,
		Name:     req.Name,
		Phone:    req.Phone,
		Position: req.Position,
		Salary:   req.Salary,
		Role:     req.Role,
	}
	if err := h.Svc.Update(ctx, &employee); err != nil {
		return httpError(c, l, "update_employee_error", err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHTTP) DeleteEmployee(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.employee")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(c, l, "delete_employee_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "employee deleted", "employee_id": id})
}

func (h *EmployeeHTTP) MarkAttendance(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "mark.attendance")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Date    string `json:"date" validate:"required"`
		Present *bool  `json:"present"`
		Note    string `json:"note"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("mark_attendance_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	present := true
	if req.Present != nil {
		present = *req.Present
	}
	attendance, err := h.Svc.MarkAttendance(ctx, id, req.Date, present, req.Note)
	if err != nil {
		return httpError(c, l, "mark_attendance_error", err)
	}
	return c.JSON(http.StatusOK, attendance)
}

func (h *EmployeeHTTP) ListAttendance(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.attendance")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	rows, err := h.Svc.ListAttendance(ctx, id, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return httpError(c, l, "list_attendance_error", err)
	}
	return c.JSON(http.StatusOK, rows)
}
