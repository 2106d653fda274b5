package search

import (
	"bufio"
	"fmt"
	"io"
)

// ReadInitialRows reads the 2*period prefix rows from whitespace separated
// tokens of exactly width characters. '.' is a dead cell and anything else
// a live one; the last character of a token is bit 0.
func ReadInitialRows(r io.Reader, width, period int) ([]uint16, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	rows := make([]uint16, 0, 2*period)
	for len(rows) < 2*period && sc.Scan() {
		tok := sc.Text()
		if len(tok) != width {
			return nil, fmt.Errorf("%w: row %d is %q, want %d cells", ErrBadInitialRows, len(rows), tok, width)
		}
		var row uint16
		for _, c := range []byte(tok) {
			row <<= 1
			if c != '.' {
				row |= 1
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInitialRows, err)
	}
	if len(rows) < 2*period {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadInitialRows, 2*period, len(rows))
	}
	return rows, nil
}
