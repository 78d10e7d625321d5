package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rinserepeat/ordertrack/internal/customerror"
	"github.com/rinserepeat/ordertrack/internal/models"
	"github.com/rinserepeat/ordertrack/internal/store"
)

const customersSheet = "Customers"

// Customers worksheet columns, 1-indexed.
const (
	colCustomerOrderID = 1
	colCustomerName    = 2
	colCustomerEmail   = 3
	colCustomerMobile  = 4
)

type CustomerRepository struct {
	store store.RowStoreI
}

func NewCustomerRepository(rowStore store.RowStoreI) *CustomerRepository {
	return &CustomerRepository{store: rowStore}
}

func (repository *CustomerRepository) GetByOrderID(ctx context.Context, orderID int) (*models.Customer, error) {
	rows, err := repository.store.GetAllRows(ctx, customersSheet)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		id, err := strconv.Atoi(cell(row, colCustomerOrderID))
		if err != nil {
			return nil, fmt.Errorf("customers row %d: order id: %w", i+1, err)
		}
		if id != orderID {
			continue
		}
		return &models.Customer{
			OrderID: id,
			Name:    cell(row, colCustomerName),
			Email:   cell(row, colCustomerEmail),
			Mobile:  cell(row, colCustomerMobile),
		}, nil
	}
	return nil, customerror.NewNotFoundError("customer for order", orderID)
}

func (repository *CustomerRepository) Append(ctx context.Context, customer models.Customer) error {
	row := []string{
		strconv.Itoa(customer.OrderID),
		customer.Name,
		customer.Email,
		customer.Mobile,
	}
	return repository.store.AppendRow(ctx, customersSheet, row)
}
