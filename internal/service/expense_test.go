package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-system/internal/models"
)

func TestExpense_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	expense := models.Expense{Name: "Gas refill", Amount: 40, Date: "2026-09-01"}
	require.NoError(t, env.Expenses.Create(ctx, &expense))
	require.NotZero(t, expense.ID)

	got, err := env.Expenses.Get(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gas refill", got.Name)

	got.Amount = 45
	require.NoError(t, env.Expenses.Update(ctx, got))

	list, err := env.Expenses.List(ctx, "2026-09-01", "2026-09-30")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 45, list[0].Amount, 0.001)

	require.NoError(t, env.Expenses.Delete(ctx, expense.ID))
	assert.ErrorIs(t, env.Expenses.Delete(ctx, expense.ID), ErrNotFound)
}

func TestExpense_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		expense models.Expense
	}{
		{name: "empty name", expense: models.Expense{Amount: 10, Date: "2026-09-01"}},
		{name: "zero amount", expense: models.Expense{Name: "Gas", Amount: 0, Date: "2026-09-01"}},
		{name: "negative amount", expense: models.Expense{Name: "Gas", Amount: -5, Date: "2026-09-01"}},
		{name: "bad date", expense: models.Expense{Name: "Gas", Amount: 10, Date: "01/09/2026"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			expense := tt.expense
			err := env.Expenses.Create(ctx, &expense)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestExpense_ListRangeFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, e := range []models.Expense{
		{Name: "August rent", Amount: 900, Date: "2026-08-01"},
		{Name: "Gas refill", Amount: 40, Date: "2026-09-01"},
		{Name: "Vegetables", Amount: 25, Date: "2026-09-15"},
	} {
		e := e
		require.NoError(t, env.Expenses.Create(ctx, &e))
	}

	list, err := env.Expenses.List(ctx, "2026-09-01", "")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = env.Expenses.List(ctx, "", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "August rent", list[0].Name)
}
