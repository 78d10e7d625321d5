package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rinserepeat/ordertrack/internal/customerror"
	"github.com/rinserepeat/ordertrack/internal/models"
	"github.com/rinserepeat/ordertrack/internal/store"
)

const ordersSheet = "Orders"

// Orders worksheet columns, 1-indexed. Item count columns follow the fixed
// ones, one per item type, in Prices worksheet order.
const (
	colOrderID        = 1
	colStatus         = 2
	colDroppedOff     = 3
	colReadyForPickup = 4
	colPickedUp       = 5
	colTotal          = 6
	colFirstItem      = 7
)

type OrderRepository struct {
	store store.RowStoreI
}

func NewOrderRepository(rowStore store.RowStoreI) *OrderRepository {
	return &OrderRepository{store: rowStore}
}

func (repository *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	rows, err := repository.store.GetAllRows(ctx, ordersSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.Order{}, nil
	}

	header := rows[0]
	orders := make([]models.Order, 0, len(rows)-1)
	for i, row := range rows[1:] {
		order, err := parseOrder(header, row)
		if err != nil {
			return nil, fmt.Errorf("orders row %d: %w", i+2, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Append writes the order as a new row. The per-item count columns are laid
// out in price list order, matching the worksheet header.
func (repository *OrderRepository) Append(ctx context.Context, order models.Order, prices models.PriceList) error {
	row := []string{
		strconv.Itoa(order.ID),
		string(order.Status),
		order.DroppedOffDate,
		order.ReadyForPickupDate,
		order.PickedUpDate,
		order.Total.String(),
	}
	for _, name := range prices.Names() {
		row = append(row, strconv.Itoa(order.ItemCounts[name]))
	}
	return repository.store.AppendRow(ctx, ordersSheet, row)
}

// ApplyTransition persists a transition write-set against the order's row:
// the status cell, the stamped date cell when the write-set carries one, and
// a batch clear of the date cells for later statuses. The store has no
// transactions, so a failure part-way through is surfaced, not rolled back.
func (repository *OrderRepository) ApplyTransition(ctx context.Context, orderID int, ws models.WriteSet) error {
	row, err := repository.store.FindRow(ctx, ordersSheet, colOrderID, strconv.Itoa(orderID))
	if errors.Is(err, store.ErrRowNotFound) {
		return customerror.NewNotFoundError("order", orderID)
	}
	if err != nil {
		return err
	}

	if err := repository.store.UpdateCell(ctx, ordersSheet, row, colStatus, string(ws.Status)); err != nil {
		return err
	}
	if ws.StampDate != "" {
		if err := repository.store.UpdateCell(ctx, ordersSheet, row, statusDateColumn(ws.Status), ws.StampDate); err != nil {
			return err
		}
	}
	if len(ws.Clear) == 0 {
		return nil
	}
	cells := make([]string, 0, len(ws.Clear))
	for _, status := range ws.Clear {
		cells = append(cells, store.CellRef(statusDateColumn(status), row))
	}
	return repository.store.BatchClearCells(ctx, ordersSheet, cells)
}

func statusDateColumn(status models.OrderStatus) int {
	switch status {
	case models.StatusDroppedOff:
		return colDroppedOff
	case models.StatusReadyForPickup:
		return colReadyForPickup
	case models.StatusPickedUp:
		return colPickedUp
	}
	return 0
}

func parseOrder(header, row []string) (models.Order, error) {
	id, err := strconv.Atoi(cell(row, colOrderID))
	if err != nil {
		return models.Order{}, fmt.Errorf("order id: %w", err)
	}

	order := models.Order{
		ID:                 id,
		Status:             models.OrderStatus(cell(row, colStatus)),
		DroppedOffDate:     cell(row, colDroppedOff),
		ReadyForPickupDate: cell(row, colReadyForPickup),
		PickedUpDate:       cell(row, colPickedUp),
		ItemCounts:         map[string]int{},
	}

	if raw := cell(row, colTotal); raw != "" {
		total, err := models.ParseMoney(raw)
		if err != nil {
			return models.Order{}, fmt.Errorf("order %d total: %w", id, err)
		}
		order.Total = total
	}

	for column := colFirstItem; column <= len(header); column++ {
		name := strings.TrimSpace(header[column-1])
		if name == "" {
			continue
		}
		raw := cell(row, column)
		if raw == "" {
			order.ItemCounts[name] = 0
			continue
		}
		count, err := strconv.Atoi(raw)
		if err != nil {
			return models.Order{}, fmt.Errorf("order %d item %q: %w", id, name, err)
		}
		order.ItemCounts[name] = count
	}
	return order, nil
}

// cell returns the trimmed value at a 1-indexed column, empty when the row is
// shorter than the sheet (trailing blanks are not materialized by the store).
func cell(row []string, column int) string {
	if column-1 < len(row) {
		return strings.TrimSpace(row[column-1])
	}
	return ""
}
