package equation

import (
	"math"
	"strconv"
	"strings"
)

// Normalized is the canonical form of one parsed equation:
//
//	Σ Coefficients[i]·Variables[i] = Constant
//
// Variables holds distinct names in first-seen order and Coefficients is
// aligned with it 1:1. A Normalized value is not mutated after Normalize
// returns it.
type Normalized struct {
	Raw          string    // input line as given
	Variables    []string  // distinct names, first-seen order
	Coefficients []float64 // signed sums, aligned with Variables
	Constant     float64   // right-hand side after transposition
	Warnings     []Warning // dropped terms (empty on a clean parse)
}

// Warning records a term that was dropped during a lenient parse.
type Warning struct {
	Segment string // term text, whitespace removed
	Offset  int    // byte offset in the whitespace-free expression
	Reason  string // human-readable cause
}

// String renders the warning as "<reason>: <segment>".
func (w Warning) String() string {
	return w.Reason + ": " + strconv.Quote(w.Segment)
}

// Coefficient returns the coefficient of name and whether name occurs.
// Complexity: O(len(Variables)).
func (n *Normalized) Coefficient(name string) (float64, bool) {
	for i, v := range n.Variables {
		if v == name {
			return n.Coefficients[i], true
		}
	}

	return 0, false
}

// String renders the equation in canonical form, e.g. "2x + 3y - 4z = 5".
// Unit coefficients are elided; an equation without variables renders as "0 = c".
func (n *Normalized) String() string {
	var sb strings.Builder
	if len(n.Variables) == 0 {
		sb.WriteString("0")
	}
	for i, name := range n.Variables {
		c := n.Coefficients[i]
		switch {
		case i == 0 && math.Signbit(c):
			sb.WriteString("-")
		case i > 0 && math.Signbit(c):
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if abs := math.Abs(c); abs != 1 {
			sb.WriteString(formatNumber(abs))
		}
		sb.WriteString(name)
	}
	sb.WriteString(" = ")
	sb.WriteString(formatNumber(n.Constant))

	return sb.String()
}

// formatNumber prints the shortest decimal that round-trips, never in
// exponent form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
