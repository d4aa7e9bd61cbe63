package helper

import (
	"errors"
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := map[string]Colour{
		"142,68,173":       {R: 142, G: 68, B: 173, A: 1.0},
		"142, 68, 173, 0.5": {R: 142, G: 68, B: 173, A: 0.5},
		"0,0,0,0":          {A: 0.0},
		"255,255,255":      {R: 255, G: 255, B: 255, A: 1.0},
	}

	for s, expected := range tests {
		colour, err := ParseColour(s)
		if err != nil {
			t.Fatalf("Unexpected error parsing '%s' (%v)", s, err)
		}

		if colour != expected {
			t.Errorf("Incorrect colour for '%s' - expected:%v, got:%v", s, expected, colour)
		}
	}
}

func TestParseColourWithInvalidColour(t *testing.T) {
	tests := []string{"", "142,68", "142,68,173,1,1", "256,0,0", "-1,0,0", "a,b,c", "1,2,3,1.5"}

	for _, s := range tests {
		if _, err := ParseColour(s); !errors.Is(err, ErrInvalidColour) {
			t.Errorf("Expected ErrInvalidColour for '%s', got %v", s, err)
		}
	}
}
