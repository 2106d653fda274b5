package rule

import (
	"fmt"
	"strings"
)

// ParseRule parses rule strings of the form B3/S23. The separator is
// optional and the letters are case insensitive.
func ParseRule(s string) (Rule, error) {
	if len(s) == 0 || (s[0] != 'b' && s[0] != 'B') {
		return 0, fmt.Errorf("%w: %q must start with B", ErrBadRule, s)
	}
	var r Rule
	shift := 0
	for _, c := range s[1:] {
		switch {
		case c == 's' || c == 'S':
			if shift != 0 {
				return 0, fmt.Errorf("%w: %q has more than one S", ErrBadRule, s)
			}
			shift = survivalShift
		case c == '/':
		case c >= '0' && c <= '8':
			r |= 1 << (shift + int(c-'0'))
		default:
			return 0, fmt.Errorf("%w: %q has unexpected %q", ErrBadRule, s, c)
		}
	}
	return r, nil
}

// Births reports whether a dead cell with n live neighbors is born.
func (r Rule) Births(n int) bool { return r&(1<<n) != 0 }

// Survives reports whether a live cell with n live neighbors survives.
func (r Rule) Survives(n int) bool { return r&(1<<(survivalShift+n)) != 0 }

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Births(n) {
			sb.WriteByte(byte('0' + n))
		}
	}
	sb.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.Survives(n) {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Rule) UnmarshalText(text []byte) error {
	v, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseSymmetry accepts the long names and the single letter forms
// a, u, v and g.
func ParseSymmetry(s string) (Symmetry, error) {
	switch strings.ToLower(s) {
	case "asymmetric", "a":
		return Asymmetric, nil
	case "odd", "u":
		return Odd, nil
	case "even", "v":
		return Even, nil
	case "gutter", "g":
		return Gutter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadSymmetry, s)
}

func (s Symmetry) Valid() bool { return s >= Asymmetric && s <= Gutter }

func (s Symmetry) String() string {
	switch s {
	case Asymmetric:
		return "asymmetric"
	case Odd:
		return "odd"
	case Even:
		return "even"
	case Gutter:
		return "gutter"
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

func (s Symmetry) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadSymmetry, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Symmetry) UnmarshalText(text []byte) error {
	v, err := ParseSymmetry(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
