package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pos-system/internal/config"
	"pos-system/internal/models"
	"pos-system/internal/repo"
)

type testEnv struct {
	T         *testing.T
	DB        *gorm.DB
	Repo      *repo.GormRepo
	Selected  *SelectedService
	Orders    *OrderService
	Cart      *CartService
	Menu      *MenuService
	Employees *EmployeeService
	Expenses  *ExpenseService
	Reports   *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	gormRepo := repo.New(db)
	hub := NewHub()
	selected := &SelectedService{Repo: gormRepo}

	return &testEnv{
		T:         t,
		DB:        db,
		Repo:      gormRepo,
		Selected:  selected,
		Orders:    &OrderService{Repo: gormRepo, Selected: selected, Hub: hub},
		Cart:      &CartService{Repo: gormRepo, Hub: hub},
		Menu:      &MenuService{Repo: gormRepo, Hub: hub},
		Employees: &EmployeeService{Repo: gormRepo},
		Expenses:  &ExpenseService{Repo: gormRepo},
		Reports:   &ReportService{Repo: gormRepo},
	}
}

func (env *testEnv) createDineInOrder(ctx context.Context) *OrderView {
	env.T.Helper()

	view, err := env.Orders.CreateOrder(ctx, CreateOrderRequest{OrderType: models.OrderTypeDineIn})
	require.NoError(env.T, err)
	return view
}

func (env *testEnv) createDineOutOrder(ctx context.Context, phone, customerName, addressName string) *OrderView {
	env.T.Helper()

	view, err := env.Orders.CreateOrder(ctx, CreateOrderRequest{
		OrderType: models.OrderTypeDineOut,
		Customer:  &models.Customer{Phone: phone, Name: customerName},
		Address:   &models.Address{AddressName: addressName, ShortName: addressName[:2]},
	})
	require.NoError(env.T, err)
	return view
}

func (env *testEnv) createMenuItem(ctx context.Context, name string, price float64) *models.MenuItem {
	env.T.Helper()

	item := models.MenuItem{Name: name, Price: price, Available: true}
	require.NoError(env.T, env.Menu.Create(ctx, &item))
	return &item
}

func (env *testEnv) selectedOrderID(ctx context.Context) (uint, bool) {
	env.T.Helper()

	id, ok, err := env.Selected.Current(ctx)
	require.NoError(env.T, err)
	return id, ok
}
