package hockeytech

import (
	"bytes"
	"strconv"
	"strings"
)

// The feed encodes nearly every scalar as a string: ids arrive as "123",
// booleans as "1"/"0", and missing values as "" or "null". The types below
// absorb all of those spellings so payload structs can stay declarative.

// Int decodes from a JSON number, a numeric string, or an empty value.
// Anything unparseable decodes to zero, matching the feed's own defaults.
type Int int

func (n *Int) UnmarshalJSON(b []byte) error {
	s := unquote(b)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Int(f)
	return nil
}

// V returns the plain int value.
func (n Int) V() int { return int(n) }

// Ptr returns nil for zero ids, for nullable foreign key columns.
func (n Int) Ptr() *int {
	if n == 0 {
		return nil
	}
	v := int(n)
	return &v
}

// Float decodes like Int but keeps the fraction.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	s := unquote(b)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = Float(v)
	return nil
}

func (f Float) V() float64 { return float64(f) }

// Bool decodes "1"/"0", numbers, and actual booleans.
type Bool bool

func (v *Bool) UnmarshalJSON(b []byte) error {
	switch unquote(b) {
	case "1", "true":
		*v = true
	default:
		*v = false
	}
	return nil
}

func (v Bool) V() bool { return bool(v) }

func unquote(b []byte) string {
	s := string(bytes.TrimSpace(b))
	s = strings.Trim(s, `"`)
	if s == "null" {
		return ""
	}
	return s
}
