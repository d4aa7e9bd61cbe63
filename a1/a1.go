// Package a1 parses and formats spreadsheet ranges in A1 notation, e.g. "Sheet1!B5:D10".
package a1

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sheets-helper/sheets-helper/column"
)

var ErrInvalidRange = errors.New("invalid range")

var cellRE = regexp.MustCompile(`^([A-Za-z]*)([0-9]*)$`)
var plainRE = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Cell is a 1-based cell reference. A zero Column or Row is unbounded, so "A" is
// Cell{Column: 1} and "5" is Cell{Row: 5}.
type Cell struct {
	Column int
	Row    int
}

// Range is a worksheet area. Sheet is empty for ranges without a worksheet prefix and
// Start/End are both zero for a whole worksheet.
type Range struct {
	Sheet string
	Start Cell
	End   Cell
}

func Parse(area string) (Range, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return Range{}, fmt.Errorf("%w: empty range", ErrInvalidRange)
	}

	r := Range{}
	cells := area

	if ix := strings.LastIndex(area, "!"); ix >= 0 {
		sheet, err := unquote(area[:ix])
		if err != nil {
			return Range{}, fmt.Errorf("%w: '%s' (%v)", ErrInvalidRange, area, err)
		}

		r.Sheet = sheet
		cells = area[ix+1:]
	} else if strings.HasPrefix(area, "'") {
		sheet, err := unquote(area)
		if err != nil {
			return Range{}, fmt.Errorf("%w: '%s' (%v)", ErrInvalidRange, area, err)
		}

		return Range{Sheet: sheet}, nil
	}

	if cells == "" {
		if r.Sheet == "" {
			return Range{}, fmt.Errorf("%w: '%s'", ErrInvalidRange, area)
		}

		return r, nil
	}

	parts := strings.Split(cells, ":")
	if len(parts) > 2 {
		return Range{}, fmt.Errorf("%w: '%s'", ErrInvalidRange, area)
	}

	start, err := ParseCell(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: '%s' (%v)", ErrInvalidRange, area, err)
	}

	end := start
	if len(parts) == 2 {
		if end, err = ParseCell(parts[1]); err != nil {
			return Range{}, fmt.Errorf("%w: '%s' (%v)", ErrInvalidRange, area, err)
		}
	}

	if end.Column != 0 && start.Column > end.Column || end.Row != 0 && start.Row > end.Row {
		return Range{}, fmt.Errorf("%w: '%s' is inverted", ErrInvalidRange, area)
	}

	r.Start = start
	r.End = end

	return r, nil
}

// ParseCell parses a single cell reference without a worksheet prefix, e.g. "B5", "B" or "5".
func ParseCell(ref string) (Cell, error) {
	match := cellRE.FindStringSubmatch(ref)
	if match == nil || (match[1] == "" && match[2] == "") {
		return Cell{}, fmt.Errorf("invalid cell reference '%s'", ref)
	}

	cell := Cell{}

	if match[1] != "" {
		col, err := column.ToIndex(match[1])
		if err != nil {
			return Cell{}, err
		}

		cell.Column = col
	}

	if match[2] != "" {
		row, err := strconv.Atoi(match[2])
		if err != nil {
			return Cell{}, err
		} else if row < 1 {
			return Cell{}, fmt.Errorf("invalid row '%s'", match[2])
		}

		cell.Row = row
	}

	return cell, nil
}

// IsCell returns true if the range is exactly one cell.
func (r Range) IsCell() bool {
	return r.Start == r.End && r.Start.Column > 0 && r.Start.Row > 0
}

// Origin returns the top-left cell of the range, treating unbounded edges as column A
// and row 1.
func (r Range) Origin() Cell {
	origin := r.Start

	if origin.Column < 1 {
		origin.Column = 1
	}

	if origin.Row < 1 {
		origin.Row = 1
	}

	return origin
}

func (c Cell) String() string {
	s := ""
	if c.Column > 0 {
		s, _ = column.ToLabel(c.Column)
	}

	if c.Row > 0 {
		s += strconv.Itoa(c.Row)
	}

	return s
}

func (r Range) String() string {
	var s strings.Builder

	if r.Sheet != "" {
		// a bare whole-worksheet name like 'Q1' would otherwise read as a cell
		if r.Start == (Cell{}) && r.End == (Cell{}) {
			return "'" + strings.ReplaceAll(r.Sheet, "'", "''") + "'"
		}

		s.WriteString(quote(r.Sheet))
		s.WriteString("!")
	}

	s.WriteString(r.Start.String())
	if r.End != r.Start || !r.IsCell() {
		s.WriteString(":")
		s.WriteString(r.End.String())
	}

	return s.String()
}

func quote(sheet string) string {
	if plainRE.MatchString(sheet) {
		return sheet
	}

	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func unquote(sheet string) (string, error) {
	if !strings.HasPrefix(sheet, "'") {
		if sheet == "" {
			return "", fmt.Errorf("missing worksheet name")
		}

		return sheet, nil
	}

	if len(sheet) < 3 || !strings.HasSuffix(sheet, "'") {
		return "", fmt.Errorf("unbalanced quotes in '%s'", sheet)
	}

	return strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'"), nil
}
