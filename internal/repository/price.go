package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rinserepeat/ordertrack/internal/models"
	"github.com/rinserepeat/ordertrack/internal/store"
)

const pricesSheet = "Prices"

type PriceRepository struct {
	store store.RowStoreI
}

func NewPriceRepository(rowStore store.RowStoreI) *PriceRepository {
	return &PriceRepository{store: rowStore}
}

// Get reads the price list: a header row of item type names and a single data
// row of currency-prefixed unit prices.
func (repository *PriceRepository) Get(ctx context.Context) (models.PriceList, error) {
	rows, err := repository.store.GetAllRows(ctx, pricesSheet)
	if err != nil {
		return models.PriceList{}, err
	}
	if len(rows) < 2 {
		return models.PriceList{}, fmt.Errorf("prices sheet has no price row")
	}

	header, values := rows[0], rows[1]
	prices := models.PriceList{Items: make([]models.PriceItem, 0, len(header))}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		price, err := models.ParseMoney(cell(values, i+1))
		if err != nil {
			return models.PriceList{}, fmt.Errorf("price for %q: %w", name, err)
		}
		prices.Items = append(prices.Items, models.PriceItem{Name: name, Price: price})
	}
	return prices, nil
}
