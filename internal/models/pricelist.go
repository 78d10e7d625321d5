package models

// PriceList is the read-only reference data from the Prices worksheet. The
// item order matches the worksheet column order, which also dictates the
// order of the per-item count columns on the Orders worksheet.
type PriceList struct {
	Items []PriceItem
}

type PriceItem struct {
	Name  string
	Price Money
}

func (p PriceList) PriceFor(name string) (Money, bool) {
	for _, item := range p.Items {
		if item.Name == name {
			return item.Price, true
		}
	}
	return Money{}, false
}

func (p PriceList) Names() []string {
	names := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		names = append(names, item.Name)
	}
	return names
}

// Currency returns the currency symbol shared by the price list, taken from
// the first item.
func (p PriceList) Currency() string {
	if len(p.Items) == 0 {
		return ""
	}
	return p.Items[0].Price.Symbol
}
