package helper

import (
	"testing"

	"google.golang.org/api/sheets/v4"

	"github.com/sheets-helper/sheets-helper/a1"
)

func TestGridRange(t *testing.T) {
	tests := []struct {
		area     string
		expected sheets.GridRange
	}{
		{"Sheet1!A1:Z10", sheets.GridRange{SheetId: 7, StartRowIndex: 0, EndRowIndex: 10, StartColumnIndex: 0, EndColumnIndex: 26}},
		{"Sheet1!B5:D10", sheets.GridRange{SheetId: 7, StartRowIndex: 4, EndRowIndex: 10, StartColumnIndex: 1, EndColumnIndex: 4}},
		{"Sheet1!B5", sheets.GridRange{SheetId: 7, StartRowIndex: 4, EndRowIndex: 5, StartColumnIndex: 1, EndColumnIndex: 2}},
		{"Sheet1!AZ1:CZ2", sheets.GridRange{SheetId: 7, StartRowIndex: 0, EndRowIndex: 2, StartColumnIndex: 51, EndColumnIndex: 104}},
		{"Sheet1!A2:E", sheets.GridRange{SheetId: 7, StartRowIndex: 1, EndRowIndex: 0, StartColumnIndex: 0, EndColumnIndex: 5}},
		{"Sheet1!C:C", sheets.GridRange{SheetId: 7, StartRowIndex: 0, EndRowIndex: 0, StartColumnIndex: 2, EndColumnIndex: 3}},
	}

	for _, test := range tests {
		r, err := a1.Parse(test.area)
		if err != nil {
			t.Fatalf("Unexpected error parsing '%s' (%v)", test.area, err)
		}

		grid := gridRange(7, r)
		if grid.SheetId != test.expected.SheetId ||
			grid.StartRowIndex != test.expected.StartRowIndex ||
			grid.EndRowIndex != test.expected.EndRowIndex ||
			grid.StartColumnIndex != test.expected.StartColumnIndex ||
			grid.EndColumnIndex != test.expected.EndColumnIndex {
			t.Errorf("Incorrect grid range for '%s'\n   expected: %+v\n   got:      %+v", test.area, test.expected, *grid)
		}
	}
}

func TestGridRangeSendsZeroSheetID(t *testing.T) {
	r, _ := a1.Parse("Sheet1!A1:B2")

	b, err := gridRange(0, r).MarshalJSON()
	if err != nil {
		t.Fatalf("Unexpected error marshalling grid range (%v)", err)
	}

	expected := `{"endColumnIndex":2,"endRowIndex":2,"sheetId":0,"startColumnIndex":0,"startRowIndex":0}`
	if string(b) != expected {
		t.Errorf("Incorrect JSON\n   expected: %s\n   got:      %s", expected, string(b))
	}
}
