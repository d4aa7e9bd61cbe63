package helper

import "errors"

var (
	ErrMissingSpreadsheet = errors.New("no spreadsheet ID set")
	ErrMissingRange       = errors.New("no spreadsheet range set")
	ErrMissingWorksheet   = errors.New("no worksheet set")
	ErrMissingTitle       = errors.New("no title set")
	ErrMissingCell        = errors.New("no cell to update")
	ErrMissingValue       = errors.New("no value to set")
	ErrInvalidCell        = errors.New("invalid cell")
	ErrInvalidColour      = errors.New("invalid RGB colour")
	ErrWorksheetNotFound  = errors.New("worksheet not found")
	ErrValueNotFound      = errors.New("value not found")
)
