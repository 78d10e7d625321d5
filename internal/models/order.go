package models

// DateLayout is the calendar date format used in the spreadsheet date columns.
const DateLayout = "2006-01-02"

type Order struct {
	ID                 int
	Status             OrderStatus
	DroppedOffDate     string
	ReadyForPickupDate string
	PickedUpDate       string
	Total              Money
	ItemCounts         map[string]int
}

type OrderStatus string

const (
	StatusDroppedOff     OrderStatus = "Dropped off"
	StatusReadyForPickup OrderStatus = "Ready for pickup"
	StatusPickedUp       OrderStatus = "Picked up"
)

// Progression is the forward business ordering of the statuses. Transitions
// may also move backward through it to correct mistakes.
var Progression = []OrderStatus{StatusDroppedOff, StatusReadyForPickup, StatusPickedUp}

func (s OrderStatus) Valid() bool {
	return s.Index() >= 0
}

// Index returns the position of the status in Progression, or -1 for an
// unknown status.
func (s OrderStatus) Index() int {
	for i, status := range Progression {
		if status == s {
			return i
		}
	}
	return -1
}

// StatusesAfter returns the statuses strictly after s in Progression.
func StatusesAfter(s OrderStatus) []OrderStatus {
	index := s.Index()
	if index < 0 {
		return nil
	}
	return Progression[index+1:]
}

// DateFor returns the date field bound to the given status. An empty string
// means the date is not set.
func (o Order) DateFor(s OrderStatus) string {
	switch s {
	case StatusDroppedOff:
		return o.DroppedOffDate
	case StatusReadyForPickup:
		return o.ReadyForPickupDate
	case StatusPickedUp:
		return o.PickedUpDate
	}
	return ""
}

func (o *Order) SetDateFor(s OrderStatus, date string) {
	switch s {
	case StatusDroppedOff:
		o.DroppedOffDate = date
	case StatusReadyForPickup:
		o.ReadyForPickupDate = date
	case StatusPickedUp:
		o.PickedUpDate = date
	}
}
