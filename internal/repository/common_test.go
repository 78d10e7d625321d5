package repository

import (
	"context"
	"strconv"

	"github.com/rinserepeat/ordertrack/internal/store"
)

// fakeRowStore is an in-memory store.RowStoreI, standing in for the remote
// spreadsheet. Rows include the header, 1-indexed like the real thing.
type fakeRowStore struct {
	sheets map[string][][]string
}

func newFakeRowStore() *fakeRowStore {
	return &fakeRowStore{sheets: map[string][][]string{}}
}

func (f *fakeRowStore) GetAllRows(_ context.Context, sheet string) ([][]string, error) {
	rows := f.sheets[sheet]
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = append([]string{}, row...)
	}
	return copied, nil
}

func (f *fakeRowStore) FindRow(_ context.Context, sheet string, column int, value string) (int, error) {
	for i, row := range f.sheets[sheet] {
		if column-1 < len(row) && row[column-1] == value {
			return i + 1, nil
		}
	}
	return 0, store.ErrRowNotFound
}

func (f *fakeRowStore) UpdateCell(_ context.Context, sheet string, row, column int, value string) error {
	f.setCell(sheet, row, column, value)
	return nil
}

func (f *fakeRowStore) AppendRow(_ context.Context, sheet string, values []string) error {
	f.sheets[sheet] = append(f.sheets[sheet], append([]string{}, values...))
	return nil
}

func (f *fakeRowStore) BatchClearCells(_ context.Context, sheet string, cells []string) error {
	for _, cell := range cells {
		column, row := parseCellRef(cell)
		f.setCell(sheet, row, column, "")
	}
	return nil
}

func (f *fakeRowStore) setCell(sheet string, row, column int, value string) {
	rows := f.sheets[sheet]
	for len(rows[row-1]) < column {
		rows[row-1] = append(rows[row-1], "")
	}
	rows[row-1][column-1] = value
}

// parseCellRef reads an A1-style reference back into column and row numbers.
func parseCellRef(ref string) (column, row int) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		column = column*26 + int(ref[i]-'A') + 1
		i++
	}
	row, _ = strconv.Atoi(ref[i:])
	return column, row
}
