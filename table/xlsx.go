package table

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"google.golang.org/api/sheets/v4"

	"github.com/sheets-helper/sheets-helper/column"
)

// WriteXLSX writes the values to a single worksheet xlsx workbook, starting at A1.
func WriteXLSX(f io.Writer, worksheet string, data *sheets.ValueRange) error {
	if data == nil || len(data.Values) == 0 {
		return ErrEmptySheet
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	if worksheet == "" {
		worksheet = "Sheet1"
	}

	if err := workbook.SetSheetName("Sheet1", worksheet); err != nil {
		return fmt.Errorf("invalid worksheet name '%s' (%w)", worksheet, err)
	}

	for i, row := range data.Values {
		for j, v := range row {
			label, err := column.ToLabel(j + 1)
			if err != nil {
				return err
			}

			cell := fmt.Sprintf("%s%d", label, i+1)
			if err := workbook.SetCellValue(worksheet, cell, v); err != nil {
				return fmt.Errorf("error writing cell %s (%w)", cell, err)
			}
		}
	}

	_, err := workbook.WriteTo(f)

	return err
}
