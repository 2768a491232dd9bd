package store

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"waten-backend/internal/models"
)

// normalizeOrder turns a raw submission into a storable order. Customer
// frontends are sloppy: quantities arrive as strings, prices as numbers
// or nothing, dates in whatever the browser produced. Everything is
// coerced here so the rest of the code only ever sees clean values.
func normalizeOrder(req models.CreateOrderRequest, now time.Time) models.Order {
	order := models.Order{
		OrderID: strings.TrimSpace(req.OrderID),
		Product: models.OrderedProduct{
			ID:    asString(req.Product["id"]),
			Name:  asString(req.Product["name"]),
			Price: asNumber(req.Product["price"]),
			Image: asString(req.Product["image"]),
		},
		Customer: models.Customer{
			Name:       asString(req.Customer["name"]),
			Phone:      asString(req.Customer["phone"]),
			Email:      asString(req.Customer["email"]),
			Address:    asString(req.Customer["address"]),
			City:       asString(req.Customer["city"]),
			PostalCode: asString(req.Customer["postalCode"]),
		},
		Quantity: asQuantity(req.Quantity),
		Notes:    asString(req.Notes),
	}

	unitPrice := order.Product.Price
	if total, ok := asFiniteNumber(req.TotalPrice); ok {
		order.TotalPrice = total
	} else if total, ok := asFiniteNumber(req.Total); ok {
		order.TotalPrice = total
	} else {
		order.TotalPrice = unitPrice * float64(order.Quantity)
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if models.ValidStatus(status) {
		order.Status = status
	} else {
		order.Status = models.StatusPending
	}

	order.OrderDate = normalizeOrderDate(req.OrderDate, now)
	return order
}

var orderDateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func normalizeOrderDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range orderDateLayouts {
		if raw == "" {
			break
		}
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return now.UTC().Format(time.RFC3339)
}

// asString trims strings and renders scalars; null and anything
// structured become "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asFiniteNumber reports whether v parses as a finite number.
func asFiniteNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func asNumber(v any) float64 {
	n, ok := asFiniteNumber(v)
	if !ok {
		return 0
	}
	return n
}

// asQuantity coerces to an integer of at least 1; anything invalid
// means a single item.
func asQuantity(v any) int {
	n, ok := asFiniteNumber(v)
	if !ok {
		return 1
	}
	q := int(n)
	if q < 1 {
		return 1
	}
	return q
}
