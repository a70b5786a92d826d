// Package sheetstore implements the ledger store on a Google Sheets
// spreadsheet, the system of record the tracker originally ran on. Each
// collection lives in its own sheet; rows are keyed by user ID in column A
// and record ID in column B, mirroring the spreadsheet's historical layout.
package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/config"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
)

// Sheet names within the spreadsheet.
const (
	usersSheet        = "Users"
	transactionsSheet = "Transactions"
	categoriesSheet   = "Categories"
	debtsSheet        = "Debts"
	settingsSheet     = "Settings"
)

// Store is a Google Sheets-backed ledger store.
type Store struct {
	svc           *gsheet.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

var _ ledger.Store = (*Store)(nil)

// New creates a Store from application configuration. Credentials come from
// GOOGLE_CREDENTIALS_JSON, GOOGLE_APPLICATION_CREDENTIALS, or ambient
// application-default credentials, in that order.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("missing SHEET_ID")
	}

	opts := []option.ClientOption{option.WithScopes(gsheet.SpreadsheetsScope)}
	switch {
	case cfg.GoogleCredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.GoogleCredentialsJSON)))
	case cfg.GoogleCredentialsFile != "":
		raw, err := os.ReadFile(cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(raw))
	}

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

// getValues reads a range from the spreadsheet and returns its rows.
func (s *Store) getValues(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return resp.Values, nil
}

// appendRow appends a single row to the named sheet.
func (s *Store) appendRow(ctx context.Context, sheet string, row []interface{}) error {
	vr := &gsheet.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, sheet+"!A:Z", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", sheet, err)
	}
	return nil
}

// updateRow overwrites a single 1-indexed row in the named sheet.
func (s *Store) updateRow(ctx context.Context, sheet string, rowIndex int, row []interface{}) error {
	rng := fmt.Sprintf("%s!A%d", sheet, rowIndex)
	vr := &gsheet.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s row %d: %w", sheet, rowIndex, err)
	}
	return nil
}

// deleteRow physically removes a 1-indexed row from the named sheet.
func (s *Store) deleteRow(ctx context.Context, sheet string, rowIndex int) error {
	sheetID, err := s.sheetIDByName(ctx, sheet)
	if err != nil {
		return err
	}

	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			DeleteDimension: &gsheet.DeleteDimensionRequest{
				Range: &gsheet.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex - 1),
					EndIndex:   int64(rowIndex),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete %s row %d: %w", sheet, rowIndex, err)
	}
	return nil
}

// findRowByValue returns the 1-indexed row whose column columnIndex equals
// value, or 0 when no row matches. The header row is skipped.
func (s *Store) findRowByValue(ctx context.Context, sheet string, columnIndex int, value string) (int, [][]interface{}, error) {
	rows, err := s.getValues(ctx, sheet+"!A:Z")
	if err != nil {
		return 0, nil, err
	}
	for i := 1; i < len(rows); i++ {
		if cellString(rows[i], columnIndex) == value {
			return i + 1, rows, nil
		}
	}
	return 0, rows, nil
}

// sheetIDByName resolves a sheet title to its numeric ID, caching the result.
func (s *Store) sheetIDByName(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sheetIDs != nil {
		if id, ok := s.sheetIDs[name]; ok {
			return id, nil
		}
	}

	resp, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet metadata: %w", err)
	}

	s.sheetIDs = make(map[string]int64, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties != nil {
			s.sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetId
		}
	}

	id, ok := s.sheetIDs[name]
	if !ok {
		return 0, fmt.Errorf("sheet %q not found in spreadsheet", name)
	}
	return id, nil
}
