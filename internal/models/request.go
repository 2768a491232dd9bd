package models

// ProductPatch carries the writable product fields. Pointer fields
// distinguish "not sent" from a zero value, so a patch only overwrites
// the keys that were present in the request. The product id is never
// patchable.
type ProductPatch struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
}

// CreateOrderRequest is deliberately loose: customer frontends send
// quantities as strings, omit fields, or null them out. Normalization
// happens in the order store, not in binding.
type CreateOrderRequest struct {
	OrderID    string         `json:"orderId"`
	Product    map[string]any `json:"product"`
	Customer   map[string]any `json:"customer"`
	Quantity   any            `json:"quantity"`
	Notes      any            `json:"notes"`
	TotalPrice any            `json:"totalPrice"`
	Total      any            `json:"total"`
	Status     string         `json:"status"`
	OrderDate  string         `json:"orderDate"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

// ConfigPatch updates config.json field by field; absent keys keep
// their stored value.
type ConfigPatch struct {
	AdminPassword *string `json:"adminPassword"`
	FallbackImage *string `json:"fallbackImage"`
}
