// Package sheets reads and publishes spreadsheets through the Google Sheets
// and Drive APIs.
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/SergeyBogomolovv/shop-admin/internal/config"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

var scopes = []string{sheets.SpreadsheetsScope, drive.DriveFileScope}

type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
	logger *slog.Logger
}

func New(ctx context.Context, cfg config.Google, logger *slog.Logger) (*Client, error) {
	httpClient, err := newHTTPClient(ctx, cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	sheetsSrv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	driveSrv, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create drive service: %w", err)
	}

	return &Client{
		sheets: sheetsSrv,
		drive:  driveSrv,
		logger: logger.With("component", "sheets"),
	}, nil
}

func newHTTPClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	if credentialsFile == "" {
		client, err := google.DefaultClient(ctx, scopes...)
		if err != nil {
			return nil, fmt.Errorf("unable to load default credentials: %w", err)
		}
		return client, nil
	}

	jsonKey, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file: %w", err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}
	return jwtConfig.Client(ctx), nil
}

// ReadSpreadsheet returns every tab of the spreadsheet in tab order, with the
// first row of each tab as its header.
func (c *Client) ReadSpreadsheet(ctx context.Context, spreadsheetID string) ([]*table.Table, error) {
	meta, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	titles := make([]string, 0, len(meta.Sheets))
	ranges := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		titles = append(titles, s.Properties.Title)
		ranges = append(ranges, quoteTitle(s.Properties.Title))
	}
	if len(ranges) == 0 {
		return nil, nil
	}

	resp, err := c.sheets.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(ranges...).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read values of %s: %w", spreadsheetID, err)
	}

	tabs := make([]*table.Table, 0, len(resp.ValueRanges))
	for i, vr := range resp.ValueRanges {
		tabs = append(tabs, table.FromValues(titles[i], readValues(vr.Values)))
	}

	c.logger.Debug("spreadsheet read", "spreadsheet", spreadsheetID, "tabs", len(tabs))
	return tabs, nil
}

// Publish creates a new spreadsheet with one sheet per table, fills it and
// shares it as writer with each email. It returns the spreadsheet URL.
func (c *Client) Publish(ctx context.Context, title string, tabs []*table.Table, shareWith []string) (string, error) {
	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}
	for _, t := range tabs {
		spreadsheet.Sheets = append(spreadsheet.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{
				Title:       t.Name,
				RightToLeft: true,
				GridProperties: &sheets.GridProperties{
					FrozenRowCount: 1,
				},
			},
		})
	}

	created, err := c.sheets.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	update := &sheets.BatchUpdateValuesRequest{ValueInputOption: "RAW"}
	for _, t := range tabs {
		update.Data = append(update.Data, &sheets.ValueRange{
			Range:  quoteTitle(t.Name) + "!A1",
			Values: writeValues(t.Values()),
		})
	}
	if _, err := c.sheets.Spreadsheets.Values.BatchUpdate(created.SpreadsheetId, update).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to write spreadsheet %s: %w", created.SpreadsheetId, err)
	}

	if err := c.formatHeaders(ctx, created); err != nil {
		c.logger.Warn("failed to format headers", "spreadsheet", created.SpreadsheetId, "error", err)
	}

	for _, email := range shareWith {
		perm := &drive.Permission{Type: "user", Role: "writer", EmailAddress: email}
		_, err := c.drive.Permissions.Create(created.SpreadsheetId, perm).
			SendNotificationEmail(false).
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("failed to share spreadsheet with %s: %w", email, err)
		}
	}

	c.logger.Info("spreadsheet published",
		"spreadsheet", created.SpreadsheetId,
		"title", title,
		"tabs", len(tabs),
		"shared_with", len(shareWith))

	return created.SpreadsheetUrl, nil
}

func (c *Client) formatHeaders(ctx context.Context, created *sheets.Spreadsheet) error {
	requests := make([]*sheets.Request, 0, len(created.Sheets))
	for _, s := range created.Sheets {
		requests = append(requests, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:       s.Properties.SheetId,
					StartRowIndex: 0,
					EndRowIndex:   1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{Bold: true},
					},
				},
				Fields: "userEnteredFormat.textFormat",
			},
		})
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}
	_, err := c.sheets.Spreadsheets.BatchUpdate(created.SpreadsheetId, batchUpdate).Context(ctx).Do()
	return err
}

// quoteTitle makes a sheet title usable as an A1 range.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// readValues turns integral numbers into ints so that identifiers built from
// them read "40" and not "40.0".
func readValues(values [][]any) [][]any {
	out := make([][]any, len(values))
	for i, row := range values {
		out[i] = make([]any, len(row))
		for j, v := range row {
			if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
				out[i][j] = int(f)
				continue
			}
			out[i][j] = v
		}
	}
	return out
}

func writeValues(values [][]any) [][]any {
	out := make([][]any, len(values))
	for i, row := range values {
		out[i] = make([]any, len(row))
		for j, v := range row {
			out[i][j] = cellValue(v)
		}
	}
	return out
}

// cellValue converts a table cell to a JSON value the Sheets API accepts.
func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return x.InexactFloat64()
	case string, bool, int, int64, float64:
		return x
	}
	return table.Format(v)
}
