package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pos-system/internal/config"
	"pos-system/internal/repo"
	"pos-system/internal/service"
)

var testJWTSecret = []byte("test-secret")

type testServer struct {
	T          *testing.T
	E          *echo.Echo
	DB         *gorm.DB
	AdminToken string
	StaffToken string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	gormRepo := repo.New(db)
	hub := service.NewHub()
	selected := &service.SelectedService{Repo: gormRepo}

	orderSvc := &service.OrderService{Repo: gormRepo, Selected: selected, Hub: hub}
	cartSvc := &service.CartService{Repo: gormRepo, Hub: hub}
	menuSvc := &service.MenuService{Repo: gormRepo, Hub: hub}
	employeeSvc := &service.EmployeeService{Repo: gormRepo}
	expenseSvc := &service.ExpenseService{Repo: gormRepo}
	reportSvc := &service.ReportService{Repo: gormRepo}
	authSvc := &service.AuthService{Repo: gormRepo, JWTSecret: testJWTSecret}

	e := echo.New()
	e.Validator = NewValidator()
	Register(e, &Deps{
		AuthHandler:     &AuthHTTP{Svc: authSvc},
		OrderHandler:    &OrderHTTP{Svc: orderSvc},
		CartHandler:     &CartHTTP{Svc: cartSvc},
		MenuHandler:     &MenuHTTP{Svc: menuSvc},
		EmployeeHandler: &EmployeeHTTP{Svc: employeeSvc},
		ExpenseHandler:  &ExpenseHTTP{Svc: expenseSvc},
		ReportHandler:   &ReportHTTP{Svc: reportSvc},
		JWTSecret:       testJWTSecret,
	})

	srv := &testServer{T: t, E: e, DB: db}

	ctx := context.Background()
	_, err = employeeSvc.Create(ctx, service.CreateEmployeeRequest{
		Name: "Admin User", Phone: "9000000001", Username: "admin", Password: "adminpass", Role: "admin",
	})
	require.NoError(t, err)
	_, err = employeeSvc.Create(ctx, service.CreateEmployeeRequest{
		Name: "Staff User", Phone: "9000000002", Username: "staff", Password: "staffpass",
	})
	require.NoError(t, err)

	srv.AdminToken, _, err = authSvc.Login(ctx, "admin", "adminpass")
	require.NoError(t, err)
	srv.StaffToken, _, err = authSvc.Login(ctx, "staff", "staffpass")
	require.NoError(t, err)

	return srv
}

func (s *testServer) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	s.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *testServer) createMenuItem(name string, price float64) uint {
	s.T.Helper()

	rec := s.doJSON(http.MethodPost, "/api/v1/menu", s.AdminToken, map[string]any{
		"name":  name,
		"price": price,
	})
	require.Equal(s.T, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(decodeBody(s.T, rec)["id"].(float64))
}

func (s *testServer) createDineInOrder() uint {
	s.T.Helper()

	rec := s.doJSON(http.MethodPost, "/api/v1/orders", s.StaffToken, map[string]any{
		"order_type": "DineIn",
	})
	require.Equal(s.T, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(decodeBody(s.T, rec)["id"].(float64))
}
