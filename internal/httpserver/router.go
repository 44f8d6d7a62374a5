package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pos-system/internal/jwtmiddleware"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	OrderHandler    *OrderHTTP
	CartHandler     *CartHTTP
	MenuHandler     *MenuHTTP
	EmployeeHandler *EmployeeHTTP
	ExpenseHandler  *ExpenseHTTP
	ReportHandler   *ReportHTTP
	SearchHandler   *SearchHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/login", d.AuthHandler.Login)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	menu := v1.Group("/menu")
	menu.GET("", d.MenuHandler.ListMenuItems)
	menu.GET("/:id", d.MenuHandler.GetMenuItem)

	auth := jwtmiddleware.RequireAuth(d.JWTSecret)

	menuAdmin := v1.Group("/menu", auth, jwtmiddleware.RequireAdmin)
	menuAdmin.POST("", d.MenuHandler.CreateMenuItem)
	menuAdmin.PUT("/:id", d.MenuHandler.UpdateMenuItem)
	menuAdmin.DELETE("/:id", d.MenuHandler.DeleteMenuItem)

	orders := v1.Group("/orders", auth)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/processing", d.OrderHandler.ListProcessingOrders)
	orders.GET("/selected", d.OrderHandler.GetSelectedOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("/:id/place", d.OrderHandler.PlaceOrder)
	orders.POST("/:id/select", d.OrderHandler.SelectOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)
	orders.POST("/bulk-delete", d.OrderHandler.DeleteOrders)

	orders.GET("/:id/cart", d.CartHandler.GetCart)
	orders.POST("/:id/cart", d.CartHandler.AddItem)
	orders.POST("/:id/cart/:item/decrement", d.CartHandler.DecrementItem)
	orders.DELETE("/:id/cart/:item", d.CartHandler.RemoveItem)

	employees := v1.Group("/employees", auth, jwtmiddleware.RequireAdmin)
	employees.POST("", d.EmployeeHandler.CreateEmployee)
	employees.GET("", d.EmployeeHandler.ListEmployees)
	employees.GET("/:id", d.EmployeeHandler.GetEmployee)
	employees.PUT("/:id", d.EmployeeHandler.UpdateEmployee)
	employees.DELETE("/:id", d.EmployeeHandler.DeleteEmployee)
	employees.POST("/:id/attendance", d.EmployeeHandler.MarkAttendance)
	employees.GET("/:id/attendance", d.EmployeeHandler.ListAttendance)

	expenses := v1.Group("/expenses", auth)
	expenses.POST("", d.ExpenseHandler.CreateExpense)
	expenses.GET("", d.ExpenseHandler.ListExpenses)
	expenses.GET("/:id", d.ExpenseHandler.GetExpense)
	expenses.PUT("/:id", d.ExpenseHandler.UpdateExpense)
	expenses.DELETE("/:id", d.ExpenseHandler.DeleteExpense)

	reports := v1.Group("/reports", auth)
	reports.GET("/orders", d.ReportHandler.OrderReport)
	reports.GET("/expenses", d.ReportHandler.ExpenseReport)
}
