package models

// Order statuses. Status updates only accept these four values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var OrderStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

func ValidStatus(status string) bool {
	for _, s := range OrderStatuses {
		if status == s {
			return true
		}
	}
	return false
}

type Customer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// OrderedProduct is a snapshot of the product at order time, not a
// reference into the catalog.
type OrderedProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type Order struct {
	OrderID    string         `json:"orderId"`
	Product    OrderedProduct `json:"product"`
	Customer   Customer       `json:"customer"`
	Quantity   int            `json:"quantity"`
	Notes      string         `json:"notes"`
	TotalPrice float64        `json:"totalPrice"`
	OrderDate  string         `json:"orderDate"`
	Status     string         `json:"status"`
}
