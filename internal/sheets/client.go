package sheets

import (
	"context"
	"fmt"

	"github.com/rinserepeat/ordertrack/internal/logger"
	"github.com/rinserepeat/ordertrack/internal/retry"
	"github.com/rinserepeat/ordertrack/internal/store"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client implements store.RowStoreI on top of the Google Sheets API. All
// worksheets live in a single spreadsheet, authenticated with a service
// account credentials file.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{service: service, spreadsheetID: spreadsheetID}, nil
}

func (client *Client) GetAllRows(ctx context.Context, sheet string) ([][]string, error) {
	return retry.DoRetryWithResult(ctx, func() ([][]string, error) {
		resp, err := client.service.Spreadsheets.Values.Get(client.spreadsheetID, sheet).
			Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("get rows from %s: %w", sheet, err)
		}
		rows := make([][]string, 0, len(resp.Values))
		for _, raw := range resp.Values {
			row := make([]string, len(raw))
			for i, cell := range raw {
				row[i] = fmt.Sprint(cell)
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
}

// FindRow scans a single column for an exact value and returns the 1-indexed
// row, or store.ErrRowNotFound.
func (client *Client) FindRow(ctx context.Context, sheet string, column int, value string) (int, error) {
	rows, err := client.GetAllRows(ctx, sheet)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if column-1 < len(row) && row[column-1] == value {
			return i + 1, nil
		}
	}
	return 0, store.ErrRowNotFound
}

func (client *Client) UpdateCell(ctx context.Context, sheet string, row, column int, value string) error {
	cellRange := fmt.Sprintf("%s!%s", sheet, store.CellRef(column, row))
	body := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}

	return retry.DoRetry(ctx, func() error {
		_, err := client.service.Spreadsheets.Values.Update(client.spreadsheetID, cellRange, body).
			ValueInputOption("USER_ENTERED").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("update cell %s: %w", cellRange, err)
		}
		logger.Log.Debug("cell updated", zap.String("range", cellRange), zap.String("value", value))
		return nil
	})
}

func (client *Client) AppendRow(ctx context.Context, sheet string, values []string) error {
	raw := make([]interface{}, len(values))
	for i, value := range values {
		raw[i] = value
	}
	body := &sheetsapi.ValueRange{Values: [][]interface{}{raw}}

	return retry.DoRetry(ctx, func() error {
		_, err := client.service.Spreadsheets.Values.Append(client.spreadsheetID, sheet, body).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("append row to %s: %w", sheet, err)
		}
		logger.Log.Debug("row appended", zap.String("sheet", sheet), zap.Int("columns", len(values)))
		return nil
	})
}

func (client *Client) BatchClearCells(ctx context.Context, sheet string, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	ranges := make([]string, 0, len(cells))
	for _, cell := range cells {
		ranges = append(ranges, fmt.Sprintf("%s!%s", sheet, cell))
	}
	body := &sheetsapi.BatchClearValuesRequest{Ranges: ranges}

	return retry.DoRetry(ctx, func() error {
		_, err := client.service.Spreadsheets.Values.BatchClear(client.spreadsheetID, body).
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("clear cells %v in %s: %w", cells, sheet, err)
		}
		return nil
	})
}
