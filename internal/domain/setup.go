package domain

import (
	"strconv"
	"strings"
)

// ParseDimensions reads "<rows> x <columns>" where the separator is a case
// insensitive x and each part may be padded with spaces. A blank spec returns
// the default board size.
func ParseDimensions(spec string) (rows, cols int, err error) {
	if strings.TrimSpace(spec) == "" {
		return DefaultRows, DefaultColumns, nil
	}

	parts := strings.Split(strings.ToLower(spec), "x")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidDimensions
	}
	rows, err = parseInt(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, ErrInvalidDimensions
	}
	cols, err = parseInt(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, ErrInvalidDimensions
	}

	if rows < MinSize || rows > MaxSize {
		return 0, 0, ErrRowsOutOfRange
	}
	if cols < MinSize || cols > MaxSize {
		return 0, 0, ErrColumnsOutOfRange
	}
	return rows, cols, nil
}

// ParseGameCount reads the number of rounds to play. Blank means one round;
// anything that is not a positive integer is rejected.
func ParseGameCount(spec string) (int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 1, nil
	}
	n, err := parseInt(spec)
	if err != nil || n < 1 {
		return 0, ErrInvalidGameCount
	}
	return n, nil
}

// parseInt reads a base 10 number that fits in 32 bits. Larger values are
// rejected as malformed input rather than clamped.
func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
