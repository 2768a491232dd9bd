package store_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Product:  map[string]any{"id": "p1", "name": "Mug", "price": 10.0},
		Customer: map[string]any{"name": "A", "phone": "1", "address": "X", "city": "Y"},
		Quantity: 3,
	}
}

func TestOrderStore_CreateComputesTotal(t *testing.T) {
	s := store.NewOrderStore(store.NewMemBlob(nil))

	order, err := s.Create(validOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 30.0, order.TotalPrice)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.NotEmpty(t, order.OrderID)

	_, err = time.Parse(time.RFC3339, order.OrderDate)
	assert.NoError(t, err, "orderDate must be RFC 3339")

	orders := s.List()
	require.Len(t, orders, 1)
	assert.Equal(t, *order, orders[0])
}

func TestOrderStore_CreateExplicitTotalWins(t *testing.T) {
	s := store.NewOrderStore(store.NewMemBlob(nil))

	req := validOrderRequest()
	req.TotalPrice = "99.5"
	order, err := s.Create(req)
	require.NoError(t, err)
	assert.Equal(t, 99.5, order.TotalPrice)

	req = validOrderRequest()
	req.Total = 42
	order, err = s.Create(req)
	require.NoError(t, err)
	assert.Equal(t, 42.0, order.TotalPrice)
}

func TestOrderStore_CreateCoercesQuantity(t *testing.T) {
	s := store.NewOrderStore(store.NewMemBlob(nil))

	req := validOrderRequest()
	req.Quantity = "2"
	order, err := s.Create(req)
	require.NoError(t, err)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, 20.0, order.TotalPrice)

	for _, invalid := range []any{"many", nil, -4, 0} {
		req := validOrderRequest()
		req.Quantity = invalid
		order, err := s.Create(req)
		require.NoError(t, err)
		assert.Equal(t, 1, order.Quantity, "quantity %v should coerce to 1", invalid)
	}
}

func TestOrderStore_CreateNormalizesStatusAndDate(t *testing.T) {
	s := store.NewOrderStore(store.NewMemBlob(nil))

	req := validOrderRequest()
	req.Status = "CONFIRMED"
	req.OrderDate = "2024-01-02"
	order, err := s.Create(req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.Equal(t, "2024-01-02T00:00:00Z", order.OrderDate)

	req = validOrderRequest()
	req.Status = "shipped"
	req.OrderDate = "whenever"
	order, err = s.Create(req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
	_, err = time.Parse(time.RFC3339, order.OrderDate)
	assert.NoError(t, err)
}

func TestOrderStore_CreateMissingCustomerFields(t *testing.T) {
	for _, field := range []string{"name", "phone", "address", "city"} {
		s := store.NewOrderStore(store.NewMemBlob(nil))

		req := validOrderRequest()
		delete(req.Customer, field)
		_, err := s.Create(req)
		assert.ErrorIs(t, err, store.ErrMissingCustomerFields, "missing %s", field)
		assert.Empty(t, s.List(), "nothing may be persisted when %s is missing", field)
	}
}

func TestOrderStore_CreateTrimsStrings(t *testing.T) {
	s := store.NewOrderStore(store.NewMemBlob(nil))

	req := validOrderRequest()
	req.Customer["name"] = "  A  "
	req.Customer["email"] = nil
	req.Notes = "  wrap it  "
	order, err := s.Create(req)
	require.NoError(t, err)
	assert.Equal(t, "A", order.Customer.Name)
	assert.Equal(t, "", order.Customer.Email)
	assert.Equal(t, "wrap it", order.Notes)
}

func TestOrderStore_CollidingIDsRegenerate(t *testing.T) {
	s := store.NewOrderStore(store.NewMemBlob(nil))

	req := validOrderRequest()
	req.OrderID = "dup"
	first, err := s.Create(req)
	require.NoError(t, err)

	req = validOrderRequest()
	req.OrderID = "dup"
	second, err := s.Create(req)
	require.NoError(t, err)

	assert.Equal(t, "dup", first.OrderID)
	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Len(t, s.List(), 2)
}

func TestOrderStore_UpdateStatus(t *testing.T) {
	s := store.NewOrderStore(store.NewMemBlob(nil))

	order, err := s.Create(validOrderRequest())
	require.NoError(t, err)

	updated, err := s.UpdateStatus(order.OrderID, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	// Idempotent when applied twice.
	again, err := s.UpdateStatus(order.OrderID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, *updated, *again)

	_, err = s.UpdateStatus(order.OrderID, "shipped")
	assert.ErrorIs(t, err, store.ErrInvalidStatus)

	_, err = s.UpdateStatus("missing", "confirmed")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrderStore_ListToleratesLegacyShapes(t *testing.T) {
	legacy := `[{"orderId":"o1","status":"pending"}]`
	s := store.NewOrderStore(store.NewMemBlob([]byte(legacy)))
	orders := s.List()
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].OrderID)

	canonical := `{"orders":[{"orderId":"o2","status":"pending"}]}`
	s = store.NewOrderStore(store.NewMemBlob([]byte(canonical)))
	orders = s.List()
	require.Len(t, orders, 1)
	assert.Equal(t, "o2", orders[0].OrderID)

	// Missing file and malformed content both degrade to an empty list.
	assert.Empty(t, store.NewOrderStore(store.NewMemBlob(nil)).List())
	assert.Empty(t, store.NewOrderStore(store.NewMemBlob([]byte("not json"))).List())
}

func TestMigrateOrdersFile(t *testing.T) {
	legacy := store.NewMemBlob([]byte(`[{"orderId":"o1","status":"pending"}]`))
	migrated, err := store.MigrateOrdersFile(legacy)
	require.NoError(t, err)
	assert.True(t, migrated)

	raw, err := legacy.Read()
	require.NoError(t, err)
	var wrapper struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(raw, &wrapper))
	require.Len(t, wrapper.Orders, 1)
	assert.Equal(t, "o1", wrapper.Orders[0].OrderID)

	// Already canonical: untouched.
	canonical := store.NewMemBlob([]byte(`{"orders":[]}`))
	migrated, err = store.MigrateOrdersFile(canonical)
	require.NoError(t, err)
	assert.False(t, migrated)

	// Missing file: nothing to do.
	migrated, err = store.MigrateOrdersFile(store.NewMemBlob(nil))
	require.NoError(t, err)
	assert.False(t, migrated)
}
