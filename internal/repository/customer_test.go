package repository

import (
	"context"
	"testing"

	"github.com/rinserepeat/ordertrack/internal/customerror"
	"github.com/rinserepeat/ordertrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCustomers(rows ...[]string) *fakeRowStore {
	fake := newFakeRowStore()
	fake.sheets[customersSheet] = append(
		[][]string{{"Order ID", "Name", "Email", "Mobile"}},
		rows...,
	)
	return fake
}

func TestCustomerRepository_GetByOrderID(t *testing.T) {
	fake := seedCustomers(
		[]string{"1", "Ada", "ada@x.com", "111"},
		[]string{"2", "Bob", "bob@x.com", "222"},
	)
	repo := NewCustomerRepository(fake)

	customer, err := repo.GetByOrderID(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, &models.Customer{OrderID: 2, Name: "Bob", Email: "bob@x.com", Mobile: "222"}, customer)
}

func TestCustomerRepository_GetByOrderID_NotFound(t *testing.T) {
	repo := NewCustomerRepository(seedCustomers())

	_, err := repo.GetByOrderID(context.Background(), 42)

	assert.True(t, customerror.IsNotFound(err))
}

func TestCustomerRepository_Append(t *testing.T) {
	fake := seedCustomers()
	repo := NewCustomerRepository(fake)

	err := repo.Append(context.Background(), models.Customer{
		OrderID: 3, Name: "Cleo", Email: "cleo@x.com", Mobile: "333",
	})

	require.NoError(t, err)
	require.Len(t, fake.sheets[customersSheet], 2)
	assert.Equal(t, []string{"3", "Cleo", "cleo@x.com", "333"}, fake.sheets[customersSheet][1])
}
