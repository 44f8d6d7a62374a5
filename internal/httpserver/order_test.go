package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderEndpoint_DineOut(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.doJSON(http.MethodPost, "/api/v1/orders", srv.StaffToken, map[string]any{
		"order_type": "DineOut",
		"customer":   map[string]any{"phone": "9876543210", "name": "Alice"},
		"address":    map[string]any{"address_name": "Home", "short_name": "HM"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Processing", body["status"])
	customer := body["customer"].(map[string]any)
	assert.Equal(t, "9876543210", customer["phone"])
	address := body["address"].(map[string]any)
	assert.Equal(t, "Home", address["address_name"])
}

func TestCreateOrderEndpoint_BadPhone(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.doJSON(http.MethodPost, "/api/v1/orders", srv.StaffToken, map[string]any{
		"order_type": "DineOut",
		"customer":   map[string]any{"phone": "98765ABCDE"},
		"address":    map[string]any{"address_name": "Home", "short_name": "HM"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "letters")
}

func TestCreateOrderEndpoint_MissingType(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.doJSON(http.MethodPost, "/api/v1/orders", srv.StaffToken, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.doJSON(http.MethodGet, "/api/v1/orders/99", srv.StaffToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderEndpoint_BadID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.doJSON(http.MethodGet, "/api/v1/orders/abc", srv.StaffToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	itemID := srv.createMenuItem("Margherita", 9.5)
	orderID := srv.createDineInOrder()

	// the new order is auto-selected
	rec := srv.doJSON(http.MethodGet, "/api/v1/orders/selected", srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(orderID), decodeBody(t, rec)["id"])

	// placing an empty order is rejected
	rec = srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/place", orderID), srv.StaffToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cart", orderID), srv.StaffToken, map[string]any{
		"menu_item_id": itemID,
		"quantity":     2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/orders/%d/cart", orderID), srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeBody(t, rec)
	assert.Equal(t, float64(2), cart["total_quantity"])
	assert.InDelta(t, 19.0, cart["total_price"].(float64), 0.001)

	rec = srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/place", orderID), srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Placed", decodeBody(t, rec)["status"])

	// placing again conflicts
	rec = srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/place", orderID), srv.StaffToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// nothing left to select
	rec = srv.doJSON(http.MethodGet, "/api/v1/orders/selected", srv.StaffToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrdersEndpoint_Search(t *testing.T) {
	srv := newTestServer(t)

	srv.createDineInOrder()
	rec := srv.doJSON(http.MethodPost, "/api/v1/orders", srv.StaffToken, map[string]any{
		"order_type": "DineOut",
		"customer":   map[string]any{"phone": "9876543210", "name": "Alice"},
		"address":    map[string]any{"address_name": "Home", "short_name": "HM"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.doJSON(http.MethodGet, "/api/v1/orders?q=alice", srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "9876543210")
	assert.NotContains(t, rec.Body.String(), "DineIn")
}

func TestSelectOrderEndpoint(t *testing.T) {
	srv := newTestServer(t)

	first := srv.createDineInOrder()
	srv.createDineInOrder()

	rec := srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/select", first), srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.doJSON(http.MethodGet, "/api/v1/orders/selected", srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(first), decodeBody(t, rec)["id"])

	rec = srv.doJSON(http.MethodPost, "/api/v1/orders/99/select", srv.StaffToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrderEndpoints(t *testing.T) {
	srv := newTestServer(t)

	first := srv.createDineInOrder()
	second := srv.createDineInOrder()
	third := srv.createDineInOrder()

	rec := srv.doJSON(http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d", third), srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.doJSON(http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d", third), srv.StaffToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.doJSON(http.MethodPost, "/api/v1/orders/bulk-delete", srv.StaffToken, map[string]any{
		"ids": []uint{first, second},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "2 orders deleted", body["message"])
	assert.Equal(t, float64(2), body["count"])

	rec = srv.doJSON(http.MethodPost, "/api/v1/orders/bulk-delete", srv.StaffToken, map[string]any{
		"ids": []uint{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// everything is already gone
	rec = srv.doJSON(http.MethodPost, "/api/v1/orders/bulk-delete", srv.StaffToken, map[string]any{
		"ids": []uint{first, second},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecrementCartItemEndpoint(t *testing.T) {
	srv := newTestServer(t)

	itemID := srv.createMenuItem("Margherita", 9.5)
	orderID := srv.createDineInOrder()

	rec := srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cart", orderID), srv.StaffToken, map[string]any{
		"menu_item_id": itemID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cart/%d/decrement", orderID, itemID), srv.StaffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart item removed")

	rec = srv.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cart/%d/decrement", orderID, itemID), srv.StaffToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
