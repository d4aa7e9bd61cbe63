// Package column converts between spreadsheet column labels ("A", "Z", "AA", ...) and
// their 1-based column positions.
//
// Labels are bijective base-26 numerals: there is no zero digit, 'A' is 1 and 'Z' is 26,
// so "AA" follows "Z" as 27.
package column

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidLabel = errors.New("invalid column label")
	ErrInvalidIndex = errors.New("invalid column index")
)

const radix = 26

// ToIndex returns the 1-based position of a column label. Labels are case-insensitive.
func ToIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty label", ErrInvalidLabel)
	}

	index := 0
	for _, ch := range label {
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}

		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: '%s'", ErrInvalidLabel, label)
		}

		digit := int(ch-'A') + 1
		if index > (math.MaxInt-digit)/radix {
			return 0, fmt.Errorf("%w: '%s' is out of range", ErrInvalidLabel, label)
		}

		index = index*radix + digit
	}

	return index, nil
}

// ToLabel returns the canonical uppercase label for a 1-based column position.
func ToLabel(index int) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	var label []byte
	for index > 0 {
		index--
		label = append(label, byte('A'+index%radix))
		index /= radix
	}

	for i, j := 0, len(label)-1; i < j; i, j = i+1, j-1 {
		label[i], label[j] = label[j], label[i]
	}

	return string(label), nil
}
