package helper

import (
	"google.golang.org/api/sheets/v4"

	"github.com/sheets-helper/sheets-helper/a1"
)

// gridRange converts a 1-based A1 range to the 0-based, end-exclusive grid used by batch
// update requests. Unbounded edges are left unset.
func gridRange(sheetID int64, r a1.Range) *sheets.GridRange {
	grid := sheets.GridRange{
		SheetId:         sheetID,
		ForceSendFields: []string{"SheetId"},
	}

	if r.Start.Row > 0 {
		grid.StartRowIndex = int64(r.Start.Row - 1)
		grid.ForceSendFields = append(grid.ForceSendFields, "StartRowIndex")
	}

	if r.End.Row > 0 {
		grid.EndRowIndex = int64(r.End.Row)
	}

	if r.Start.Column > 0 {
		grid.StartColumnIndex = int64(r.Start.Column - 1)
		grid.ForceSendFields = append(grid.ForceSendFields, "StartColumnIndex")
	}

	if r.End.Column > 0 {
		grid.EndColumnIndex = int64(r.End.Column)
	}

	return &grid
}
