package models

// Customer is the person who placed an order. One customer row exists per
// order; repeat customers are not deduplicated.
type Customer struct {
	OrderID int
	Name    string
	Email   string
	Mobile  string
}
