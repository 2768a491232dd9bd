package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"waten-backend/internal/models"
)

// OrderStore is the file-backed order repository. Reads tolerate the
// legacy on-disk shape (a bare array) next to the canonical
// {"orders": [...]} wrapper, and degrade to an empty list when the file
// is absent or unreadable so public-facing requests never fail on it.
type OrderStore struct {
	blob Blob
	mu   sync.Mutex
	now  func() time.Time
}

func NewOrderStore(blob Blob) *OrderStore {
	return &OrderStore{blob: blob, now: time.Now}
}

type ordersFile struct {
	Orders []models.Order `json:"orders"`
}

// decodeOrders accepts both on-disk shapes and returns nil for anything
// else.
func decodeOrders(raw []byte) []models.Order {
	var wrapper ordersFile
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Orders != nil {
		return wrapper.Orders
	}
	var list []models.Order
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	return nil
}

func (s *OrderStore) load() []models.Order {
	raw, err := s.blob.Read()
	if err != nil {
		return nil
	}
	return decodeOrders(raw)
}

func (s *OrderStore) save(orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	raw, err := json.MarshalIndent(ordersFile{Orders: orders}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	return s.blob.Write(raw)
}

func (s *OrderStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := s.load()
	if orders == nil {
		orders = []models.Order{}
	}
	return orders
}

// Create normalizes the raw payload, validates the required customer
// fields, resolves id collisions and persists the order.
func (s *OrderStore) Create(req models.CreateOrderRequest) (*models.Order, error) {
	order := normalizeOrder(req, s.now())

	c := order.Customer
	if c.Name == "" || c.Phone == "" || c.Address == "" || c.City == "" {
		return nil, ErrMissingCustomerFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.load()
	if order.OrderID == "" {
		order.OrderID = newOrderID(s.now())
	}
	for hasOrderID(orders, order.OrderID) {
		// A colliding client-supplied id keeps its prefix so the customer
		// still recognizes it.
		order.OrderID = order.OrderID + "-" + newOrderID(s.now())
	}

	orders = append(orders, order)
	if err := s.save(orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus replaces only the status field of the matching order.
func (s *OrderStore) UpdateStatus(orderID, status string) (*models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.load()
	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}
		orders[i].Status = status
		if err := s.save(orders); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func hasOrderID(orders []models.Order, id string) bool {
	for _, o := range orders {
		if o.OrderID == id {
			return true
		}
	}
	return false
}

func newOrderID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + shortID()
}
