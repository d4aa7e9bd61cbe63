package table

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestWriteTSV(t *testing.T) {
	expected := `Name	From	To	Gate	Tower
Alice	2020-01-01	2020-12-31	Y	N
Bob	2020-02-03	2020-11-30	Y	
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			{"Name", "From", "To", "Gate", "Tower"},
			{"Alice", "2020-01-01", "2020-12-31", "Y", "N"},
			{" Bob ", "2020-02-03", "2020-11-30", "Y"},
		},
	}

	if err := WriteTSV(&f, &data); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestWriteTSVWithNumbers(t *testing.T) {
	expected := "Qty\tPrice\n3\t1.5\n"

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			{"Qty", "Price"},
			{float64(3), 1.5},
		},
	}

	if err := WriteTSV(&f, &data); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, f.String())
	}
}

func TestWriteTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder

	if err := WriteTSV(&f, &sheets.ValueRange{}); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}

	data := sheets.ValueRange{
		Values: [][]interface{}{
			{},
		},
	}

	if err := WriteTSV(&f, &data); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("Expected error return for sheet with no columns, got %v", err)
	}
}

func TestReadTSV(t *testing.T) {
	tsv := `Name	From	To
Alice	2020-01-01	2020-12-31
Bob	2020-02-03
`

	expected := sheets.ValueRange{
		Range:          "Sheet1!B5:D7",
		MajorDimension: "ROWS",
		Values: [][]interface{}{
			{"Name", "From", "To"},
			{"Alice", "2020-01-01", "2020-12-31"},
			{"Bob", "2020-02-03"},
		},
	}

	data, err := ReadTSV(strings.NewReader(tsv), "Sheet1!B5:E")
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTSV (%v)", err)
	}

	if !reflect.DeepEqual(*data, expected) {
		t.Errorf("Incorrect value range\n   expected: %+v\n   got:      %+v\n", expected, *data)
	}
}

func TestReadTSVAnchoredAtWorksheet(t *testing.T) {
	tsv := strings.Repeat("x\t", 27) + "x\n"

	data, err := ReadTSV(strings.NewReader(tsv), "'Wide Sheet'!")
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTSV (%v)", err)
	}

	if data.Range != "'Wide Sheet'!A1:AB1" {
		t.Errorf("Incorrect range - expected:%v, got:%v", "'Wide Sheet'!A1:AB1", data.Range)
	}
}

func TestReadTSVWithEmptyFile(t *testing.T) {
	if _, err := ReadTSV(strings.NewReader(""), "Sheet1!A1"); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Expected ErrEmptyFile, got %v", err)
	}
}

func TestReadTSVWithInvalidRange(t *testing.T) {
	if _, err := ReadTSV(strings.NewReader("a\tb\n"), "Sheet1!A0"); err == nil {
		t.Errorf("Expected error for invalid range, got %v", err)
	}
}
