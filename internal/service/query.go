package service

import "github.com/rinserepeat/ordertrack/internal/models"

// FilterByStatus returns the orders whose status matches exactly, preserving
// input order.
func FilterByStatus(orders []models.Order, status models.OrderStatus) []models.Order {
	matched := []models.Order{}
	for _, order := range orders {
		if order.Status == status {
			matched = append(matched, order)
		}
	}
	return matched
}

// FilterByID returns zero or one orders, since ids are unique. A missing id
// is an empty result, not an error.
func FilterByID(orders []models.Order, id int) []models.Order {
	matched := []models.Order{}
	for _, order := range orders {
		if order.ID == id {
			matched = append(matched, order)
		}
	}
	return matched
}

// NextID allocates max(id)+1, or 1 for an empty store. Ids are never reused.
func NextID(orders []models.Order) int {
	next := 1
	for _, order := range orders {
		if order.ID >= next {
			next = order.ID + 1
		}
	}
	return next
}
