package models

// WriteSet is the set of field updates a status transition implies. It is
// computed once against an in-memory order and then applied both to the
// persisted row and to the in-memory copy, so the two stay in step.
type WriteSet struct {
	// Status is the new value of the status field.
	Status OrderStatus
	// StampDate is the date to write into the date field bound to Status.
	// Empty means the field already holds a date and must not be overwritten.
	StampDate string
	// Clear lists the statuses whose date fields must be emptied, i.e. the
	// statuses strictly after Status in the forward progression.
	Clear []OrderStatus
}

// Apply returns a copy of the order with the write-set applied.
func (ws WriteSet) Apply(o Order) Order {
	o.Status = ws.Status
	if ws.StampDate != "" {
		o.SetDateFor(ws.Status, ws.StampDate)
	}
	for _, status := range ws.Clear {
		o.SetDateFor(status, "")
	}
	return o
}
