package store

import (
	"context"
	"errors"
	"strconv"
)

// ErrRowNotFound is returned by FindRow when no row matches.
var ErrRowNotFound = errors.New("row not found")

// RowStoreI is the tabular store boundary: a remote row-oriented store
// addressed by 1-indexed rows and columns. GetAllRows includes the header
// row. Implemented by the sheets client and by the in-memory fake used in
// tests.
type RowStoreI interface {
	GetAllRows(ctx context.Context, sheet string) ([][]string, error)
	FindRow(ctx context.Context, sheet string, column int, value string) (int, error)
	UpdateCell(ctx context.Context, sheet string, row, column int, value string) error
	AppendRow(ctx context.Context, sheet string, values []string) error
	BatchClearCells(ctx context.Context, sheet string, cells []string) error
}

// CellRef builds an A1-style reference, e.g. CellRef(5, 2) == "E2".
func CellRef(column, row int) string {
	return ColumnLetter(column) + strconv.Itoa(row)
}

func ColumnLetter(column int) string {
	letters := ""
	for column > 0 {
		column--
		letters = string(rune('A'+column%26)) + letters
		column /= 26
	}
	return letters
}
