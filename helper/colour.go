package helper

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Colour is an 8-bit RGB colour with an alpha channel in the range [0,1].
type Colour struct {
	R uint8
	G uint8
	B uint8
	A float64
}

// ParseColour parses a comma separated 'r,g,b' or 'r,g,b,a' colour e.g. '142,68,173' or
// '142,68,173,0.5'. The alpha channel defaults to 1.0.
func ParseColour(s string) (Colour, error) {
	fields := strings.Split(s, ",")
	if len(fields) < 3 || len(fields) > 4 {
		return Colour{}, fmt.Errorf("%w: '%s' - expected something like '142,68,173'", ErrInvalidColour, s)
	}

	rgb := [3]uint8{}
	for i := range rgb {
		v, err := strconv.ParseUint(strings.TrimSpace(fields[i]), 10, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: '%s' (%v)", ErrInvalidColour, s, err)
		}

		rgb[i] = uint8(v)
	}

	alpha := 1.0
	if len(fields) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil || a < 0.0 || a > 1.0 {
			return Colour{}, fmt.Errorf("%w: alpha '%s' must be in the range [0,1]", ErrInvalidColour, fields[3])
		}

		alpha = a
	}

	return Colour{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}

func (c Colour) color() *sheets.Color {
	return &sheets.Color{
		Red:             float64(c.R) / 255,
		Green:           float64(c.G) / 255,
		Blue:            float64(c.B) / 255,
		Alpha:           c.A,
		ForceSendFields: []string{"Red", "Green", "Blue", "Alpha"},
	}
}

func (c Colour) String() string {
	return fmt.Sprintf("%d,%d,%d,%g", c.R, c.G, c.B, c.A)
}
