package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelected_FollowsNewestOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	older := env.createDineInOrder(ctx)
	id, ok := env.selectedOrderID(ctx)
	require.True(t, ok)
	assert.Equal(t, older.ID, id)

	newer := env.createDineInOrder(ctx)
	id, ok = env.selectedOrderID(ctx)
	require.True(t, ok)
	assert.Equal(t, newer.ID, id)
}

func TestSelected_RepointsOnDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	older := env.createDineInOrder(ctx)
	newer := env.createDineInOrder(ctx)

	require.NoError(t, env.Orders.DeleteOrder(ctx, newer.ID))

	id, ok := env.selectedOrderID(ctx)
	require.True(t, ok)
	assert.Equal(t, older.ID, id)

	require.NoError(t, env.Orders.DeleteOrder(ctx, older.ID))

	_, ok = env.selectedOrderID(ctx)
	assert.False(t, ok)
}

func TestSelected_SurvivesDeleteOfOtherOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	older := env.createDineInOrder(ctx)
	newer := env.createDineInOrder(ctx)

	// deleting a non-selected order still repoints at the newest
	// remaining Processing order, which is the one already selected
	require.NoError(t, env.Orders.DeleteOrder(ctx, older.ID))

	id, ok := env.selectedOrderID(ctx)
	require.True(t, ok)
	assert.Equal(t, newer.ID, id)
}

func TestSelected_MovesOffPlacedOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	older := env.createDineInOrder(ctx)
	newer := env.createDineInOrder(ctx)
	item := env.createMenuItem(ctx, "Margherita", 9.5)

	_, err := env.Cart.AddItem(ctx, newer.ID, item.ID, 1)
	require.NoError(t, err)

	placed, err := env.Orders.PlaceOrder(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Placed", string(placed.Status))

	id, ok := env.selectedOrderID(ctx)
	require.True(t, ok)
	assert.Equal(t, older.ID, id)
}

func TestSelected_UnsetAfterLastOrderPlaced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order := env.createDineInOrder(ctx)
	item := env.createMenuItem(ctx, "Margherita", 9.5)

	_, err := env.Cart.AddItem(ctx, order.ID, item.ID, 1)
	require.NoError(t, err)
	_, err = env.Orders.PlaceOrder(ctx, order.ID)
	require.NoError(t, err)

	_, ok := env.selectedOrderID(ctx)
	assert.False(t, ok)

	_, err = env.Orders.GetSelectedOrder(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	older := env.createDineInOrder(ctx)
	env.createDineInOrder(ctx)

	require.NoError(t, env.Orders.SelectOrder(ctx, older.ID))

	view, err := env.Orders.GetSelectedOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, view.ID)
}

func TestSelectOrder_Missing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.Orders.SelectOrder(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectOrder_Placed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	placed := env.createDineInOrder(ctx)
	item := env.createMenuItem(ctx, "Margherita", 9.5)
	_, err := env.Cart.AddItem(ctx, placed.ID, item.ID, 1)
	require.NoError(t, err)
	_, err = env.Orders.PlaceOrder(ctx, placed.ID)
	require.NoError(t, err)

	err = env.Orders.SelectOrder(ctx, placed.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSelected_SelfHealsFromStalePointer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order := env.createDineInOrder(ctx)

	// simulate a crash that left the pointer unset
	require.NoError(t, env.Repo.ClearSelected(ctx))

	require.NoError(t, env.Selected.Reconcile(ctx))

	id, ok := env.selectedOrderID(ctx)
	require.True(t, ok)
	assert.Equal(t, order.ID, id)
}
