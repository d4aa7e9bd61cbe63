// Package table converts worksheet values to and from TSV and xlsx files.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/sheets-helper/sheets-helper/a1"
)

var ErrEmptySheet = errors.New("empty sheet")
var ErrEmptyFile = errors.New("TSV file is empty")

// WriteTSV writes the values as tab separated rows. Cells are formatted with %v and
// trimmed, and short rows are padded to the width of the widest row.
func WriteTSV(f io.Writer, data *sheets.ValueRange) error {
	if data == nil || len(data.Values) == 0 {
		return ErrEmptySheet
	}

	width := 0
	for _, row := range data.Values {
		if len(row) > width {
			width = len(row)
		}
	}

	if width == 0 {
		return ErrEmptySheet
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range data.Values {
		record := make([]string, width)
		for i, v := range row {
			record[i] = clean(v)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// ReadTSV reads a TSV file into a value range anchored at the top-left cell of area. The
// range is sized to fit the file, e.g. a 3x2 file anchored at 'Sheet1!B5' has the range
// 'Sheet1!B5:D6'.
func ReadTSV(f io.Reader, area string) (*sheets.ValueRange, error) {
	r, err := a1.Parse(area)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	width := 0
	rows := make([][]interface{}, 0, len(records))
	for _, record := range records {
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = v
		}

		if len(record) > width {
			width = len(record)
		}

		rows = append(rows, row)
	}

	origin := r.Origin()
	extent := a1.Range{
		Sheet: r.Sheet,
		Start: origin,
		End:   a1.Cell{Column: origin.Column + width - 1, Row: origin.Row + len(rows) - 1},
	}

	return &sheets.ValueRange{
		Range:          extent.String(),
		MajorDimension: "ROWS",
		Values:         rows,
	}, nil
}

func clean(v interface{}) string {
	if v == nil {
		return ""
	}

	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
