// Package amountinput keeps a monetary text field and its caret in sync
// while the user types. Display strings use the es-AR convention: dots as
// thousands separators, comma as the decimal marker ("1.234.567,89").
package amountinput

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Input holds the state of one amount field: the formatted display string.
// The zero value is an empty field.
type Input struct {
	display string
}

// New returns an empty Input.
func New() *Input {
	return &Input{}
}

// Change runs one keystroke through the pipeline: normalize, sanitize,
// collapse to a single decimal comma, regroup thousands, then recompute the
// caret so it stays adjacent to the same logical digit. raw is the field's
// full text after the edit and caret the position at the time of input.
// It returns the new display string and caret position.
func (in *Input) Change(raw string, caret int) (string, int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(raw) {
		caret = len(raw)
	}

	normalized := normalize(raw)
	clean := sanitize(normalized)
	finalRaw := singleComma(clean)
	display := formatGrouped(finalRaw)

	// Count non-separator characters before the old caret, then walk the new
	// display until that many have been passed.
	rawCaret := caret - strings.Count(raw[:caret], ".")
	newCaret := len(display)
	rawCount := 0
	for i := 0; i < len(display); i++ {
		if rawCount >= rawCaret {
			newCaret = i
			break
		}
		if display[i] != '.' {
			rawCount++
		}
	}

	in.display = display
	return display, newCaret
}

// Display returns the current formatted string.
func (in *Input) Display() string {
	return in.display
}

// Value parses the display into a decimal. ok is false when the field is
// empty or holds no parseable number; an empty field never reads as zero.
func (in *Input) Value() (decimal.Decimal, bool) {
	if in.display == "" {
		return decimal.Decimal{}, false
	}
	s := strings.ReplaceAll(in.display, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Decimal{}, false
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Reset re-derives the display from an externally supplied value, as when an
// existing record is loaded into the edit form. It bypasses the keystroke
// pipeline but applies the same formatting rules.
func (in *Input) Reset(v *decimal.Decimal) {
	if v == nil {
		in.display = ""
		return
	}
	in.display = formatGrouped(strings.Replace(v.String(), ".", ",", 1))
}

// normalize decides what a period means before anything is stripped: with no
// comma present and exactly one period followed by at most two digits, the
// period is a decimal separator and becomes a comma; in every other case
// periods are thousands separators and are removed.
func normalize(s string) string {
	hasComma := strings.Contains(s, ",")
	dots := strings.Count(s, ".")

	if !hasComma && dots == 1 {
		afterDot := s[strings.Index(s, ".")+1:]
		if len(afterDot) <= 2 && isDigits(afterDot) {
			return strings.Replace(s, ".", ",", 1)
		}
	}
	return strings.ReplaceAll(s, ".", "")
}

// sanitize drops everything but digits and commas.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// singleComma keeps only the first comma so a second decimal point cannot be
// typed.
func singleComma(s string) string {
	first := strings.Index(s, ",")
	if first == -1 {
		return s
	}
	return s[:first+1] + strings.ReplaceAll(s[first+1:], ",", "")
}

// formatGrouped re-inserts thousands dots into the integer portion and keeps
// the decimal portion verbatim after the comma.
func formatGrouped(raw string) string {
	if raw == "" {
		return ""
	}
	intPart := raw
	decPart := ""
	hasComma := false
	if i := strings.Index(raw, ","); i != -1 {
		intPart, decPart = raw[:i], raw[i+1:]
		hasComma = true
	}
	grouped := groupThousands(intPart)
	if hasComma {
		return grouped + "," + decPart
	}
	return grouped
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
