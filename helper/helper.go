// Package helper wraps the Google Sheets API with one-call operations on a single
// spreadsheet: reading, appending and updating values, colouring ranges, duplicating
// worksheets and locating cells.
package helper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"google.golang.org/api/sheets/v4"

	"github.com/sheets-helper/sheets-helper/a1"
)

const (
	RAW          = "RAW"
	USER_ENTERED = "USER_ENTERED"
)

// Worksheet IDs are stable for the lifetime of a worksheet, so lookups are only
// refreshed when a title is not found or the entry expires.
const sheetIDLifetime = 15 * time.Minute

type Helper struct {
	Spreadsheet      string
	Worksheet        string
	Range            string
	ValueInputOption string

	google   *sheets.Service
	sheetIDs *gocache.Cache
}

func NewHelper(google *sheets.Service, spreadsheet string) *Helper {
	return &Helper{
		Spreadsheet:      spreadsheet,
		ValueInputOption: RAW,

		google:   google,
		sheetIDs: gocache.New(sheetIDLifetime, 2*sheetIDLifetime),
	}
}

// Create creates a new spreadsheet and returns its ID. The helper is not switched to
// the new spreadsheet.
func (h *Helper) Create(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrMissingTitle
	}

	rq := sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}

	spreadsheet, err := h.google.Spreadsheets.Create(&rq).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet '%s' (%w)", title, err)
	}

	return spreadsheet.SpreadsheetId, nil
}

// Get returns the values in the current range.
func (h *Helper) Get(ctx context.Context) ([][]interface{}, error) {
	area, err := h.area()
	if err != nil {
		return nil, err
	}

	response, err := h.google.Spreadsheets.Values.Get(h.Spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from %s (%w)", area, err)
	}

	return response.Values, nil
}

// Append inserts rows after the last row of the table in the current range.
func (h *Helper) Append(ctx context.Context, rows [][]interface{}) (*sheets.UpdateValuesResponse, error) {
	area, err := h.area()
	if err != nil {
		return nil, err
	}

	rq := sheets.ValueRange{
		Values: rows,
	}

	response, err := h.google.Spreadsheets.Values.Append(h.Spreadsheet, area, &rq).
		ValueInputOption(h.valueInputOption()).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to append rows to %s (%w)", area, err)
	}

	return response.Updates, nil
}

// AppendRow inserts a single row after the last row of the table in the current range.
func (h *Helper) AppendRow(ctx context.Context, row []interface{}) (*sheets.UpdateValuesResponse, error) {
	return h.Append(ctx, [][]interface{}{row})
}

// Update overwrites the current range with rows.
func (h *Helper) Update(ctx context.Context, rows [][]interface{}) (*sheets.UpdateValuesResponse, error) {
	area, err := h.area()
	if err != nil {
		return nil, err
	}

	return h.update(ctx, area, rows)
}

// UpdateCell sets a single cell (e.g. 'B5') in the current worksheet.
func (h *Helper) UpdateCell(ctx context.Context, cell string, value string) (*sheets.UpdateValuesResponse, error) {
	if strings.TrimSpace(cell) == "" {
		return nil, ErrMissingCell
	}

	if value == "" {
		return nil, ErrMissingValue
	}

	if strings.TrimSpace(h.Worksheet) == "" {
		return nil, ErrMissingWorksheet
	}

	ref, err := a1.ParseCell(strings.TrimSpace(cell))
	if err != nil || ref.Column == 0 || ref.Row == 0 {
		return nil, fmt.Errorf("%w: '%s' - expected something like 'B5'", ErrInvalidCell, cell)
	}

	area := a1.Range{Sheet: h.Worksheet, Start: ref, End: ref}

	return h.update(ctx, area.String(), [][]interface{}{{value}})
}

func (h *Helper) update(ctx context.Context, area string, rows [][]interface{}) (*sheets.UpdateValuesResponse, error) {
	if h.Spreadsheet == "" {
		return nil, ErrMissingSpreadsheet
	}

	rq := sheets.ValueRange{
		Values: rows,
	}

	response, err := h.google.Spreadsheets.Values.Update(h.Spreadsheet, area, &rq).
		ValueInputOption(h.valueInputOption()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to update %s (%w)", area, err)
	}

	return response, nil
}

// Clear removes the values (but not the formatting) from each of the ranges.
func (h *Helper) Clear(ctx context.Context, ranges ...string) error {
	if h.Spreadsheet == "" {
		return ErrMissingSpreadsheet
	}

	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := h.google.Spreadsheets.Values.BatchClear(h.Spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear %v (%w)", ranges, err)
	}

	return nil
}

// ColorRange sets the background colour of every cell in the current range.
func (h *Helper) ColorRange(ctx context.Context, colour Colour) error {
	area, err := h.area()
	if err != nil {
		return err
	}

	r, err := a1.Parse(area)
	if err != nil {
		return err
	}

	if r.Sheet == "" {
		return ErrMissingWorksheet
	}

	sheetID, err := h.sheetID(ctx, r.Sheet)
	if err != nil {
		return err
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: gridRange(sheetID, r),
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							BackgroundColor: colour.color(),
						},
					},
					Fields: "userEnteredFormat.backgroundColor",
				},
			},
		},
	}

	if _, err := h.google.Spreadsheets.BatchUpdate(h.Spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to colour %s (%w)", area, err)
	}

	return nil
}

// DuplicateWorksheet copies the worksheet titled source to a new worksheet and returns
// the properties of the copy.
func (h *Helper) DuplicateWorksheet(ctx context.Context, source string, title string) (*sheets.SheetProperties, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	sheetID, err := h.sheetID(ctx, source)
	if err != nil {
		return nil, err
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DuplicateSheet: &sheets.DuplicateSheetRequest{
					SourceSheetId:   sheetID,
					NewSheetName:    title,
					ForceSendFields: []string{"SourceSheetId"},
				},
			},
		},
	}

	response, err := h.google.Spreadsheets.BatchUpdate(h.Spreadsheet, &rq).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to duplicate worksheet '%s' (%w)", source, err)
	}

	if len(response.Replies) == 0 || response.Replies[0].DuplicateSheet == nil || response.Replies[0].DuplicateSheet.Properties == nil {
		return nil, fmt.Errorf("invalid response duplicating worksheet '%s'", source)
	}

	properties := response.Replies[0].DuplicateSheet.Properties

	h.sheetIDs.SetDefault(h.key(properties.Title), properties.SheetId)

	return properties, nil
}

// FindCellByValue returns the first cell, scanning row by row, in the current range
// (or the whole of the current worksheet if no range is set) whose formatted value
// matches value.
func (h *Helper) FindCellByValue(ctx context.Context, value string) (a1.Cell, error) {
	area, err := h.area()
	if errors.Is(err, ErrMissingRange) && strings.TrimSpace(h.Worksheet) != "" {
		area, err = a1.Range{Sheet: h.Worksheet}.String(), nil
	}

	if err != nil {
		return a1.Cell{}, err
	}

	response, err := h.google.Spreadsheets.Values.Get(h.Spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return a1.Cell{}, fmt.Errorf("unable to retrieve data from %s (%w)", area, err)
	}

	origin := a1.Cell{Column: 1, Row: 1}
	if r, err := a1.Parse(response.Range); err == nil {
		origin = r.Origin()
	} else if r, err := a1.Parse(area); err == nil {
		origin = r.Origin()
	}

	for i, row := range response.Values {
		for j, v := range row {
			if fmt.Sprint(v) == value {
				return a1.Cell{Column: origin.Column + j, Row: origin.Row + i}, nil
			}
		}
	}

	return a1.Cell{}, fmt.Errorf("%w: '%s' in %s", ErrValueNotFound, value, area)
}

// Worksheets returns the properties of all the worksheets in the spreadsheet.
func (h *Helper) Worksheets(ctx context.Context) ([]*sheets.SheetProperties, error) {
	if h.Spreadsheet == "" {
		return nil, ErrMissingSpreadsheet
	}

	spreadsheet, err := h.google.Spreadsheets.Get(h.Spreadsheet).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	worksheets := []*sheets.SheetProperties{}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			worksheets = append(worksheets, sheet.Properties)
			h.sheetIDs.SetDefault(h.key(sheet.Properties.Title), sheet.Properties.SheetId)
		}
	}

	return worksheets, nil
}

func (h *Helper) sheetID(ctx context.Context, title string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrMissingWorksheet
	}

	if v, ok := h.sheetIDs.Get(h.key(title)); ok {
		return v.(int64), nil
	}

	if _, err := h.Worksheets(ctx); err != nil {
		return 0, err
	}

	if v, ok := h.sheetIDs.Get(h.key(title)); ok {
		return v.(int64), nil
	}

	return 0, fmt.Errorf("%w: '%s'", ErrWorksheetNotFound, title)
}

// area returns the current range, prefixed with the current worksheet if the range
// does not name one.
func (h *Helper) area() (string, error) {
	if h.Spreadsheet == "" {
		return "", ErrMissingSpreadsheet
	}

	area := strings.TrimSpace(h.Range)
	if area == "" {
		return "", ErrMissingRange
	}

	if strings.Contains(area, "!") || strings.TrimSpace(h.Worksheet) == "" {
		return area, nil
	}

	r, err := a1.Parse(area)
	if err != nil {
		return "", err
	}

	r.Sheet = h.Worksheet

	return r.String(), nil
}

func (h *Helper) valueInputOption() string {
	if h.ValueInputOption == "" {
		return RAW
	}

	return h.ValueInputOption
}

func (h *Helper) key(title string) string {
	return h.Spreadsheet + "!" + normalise(title)
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
