package service

import (
	"context"
	"fmt"

	"star-gestao-backend/internal/logger"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type googleSheetWriter struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewGoogleSheetWriter authenticates with a service account file, or with
// application default credentials when credentialsFile is empty.
func NewGoogleSheetWriter(ctx context.Context, credentialsFile, spreadsheetID string) (SheetWriter, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &googleSheetWriter{service: svc, spreadsheetID: spreadsheetID}, nil
}

func (w *googleSheetWriter) WriteTab(ctx context.Context, tab string, rows [][]any) error {
	logger.ExternalServiceCall("sheets", "WriteTab", "tab", tab, "rows", len(rows))

	if err := w.ensureTab(ctx, tab); err != nil {
		logger.ExternalServiceResult("sheets", "WriteTab", err, "tab", tab)
		return err
	}

	_, err := w.service.Spreadsheets.Values.Clear(w.spreadsheetID, tab, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		err = fmt.Errorf("failed to clear tab %s: %w", tab, err)
		logger.ExternalServiceResult("sheets", "WriteTab", err, "tab", tab)
		return err
	}

	_, err = w.service.Spreadsheets.Values.Update(w.spreadsheetID, tab+"!A1", &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		err = fmt.Errorf("failed to write tab %s: %w", tab, err)
		logger.ExternalServiceResult("sheets", "WriteTab", err, "tab", tab)
		return err
	}

	logger.ExternalServiceResult("sheets", "WriteTab", nil, "tab", tab)
	return nil
}

// ensureTab adds the tab to the spreadsheet when it does not exist yet
func (w *googleSheetWriter) ensureTab(ctx context.Context, tab string) error {
	spreadsheet, err := w.service.Spreadsheets.Get(w.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == tab {
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: tab}},
		}},
	}
	if _, err := w.service.Spreadsheets.BatchUpdate(w.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to add tab %s: %w", tab, err)
	}
	return nil
}
