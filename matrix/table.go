package matrix

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteTable renders s as a fixed-width table: one header line with every
// variable name followed by ConstantHeader, then one line per row. Each cell
// is left-justified in a TableCellWidth field. Values are rounded half away
// from zero to precision decimals for display only; negative precision
// disables rounding.
func (s *System) WriteTable(w io.Writer, precision int) error {
	var sb strings.Builder
	for _, name := range s.Variables {
		writeCell(&sb, name)
	}
	writeCell(&sb, ConstantHeader)
	sb.WriteByte('\n')

	for _, row := range s.Rows {
		for _, c := range row.Coefficients {
			writeCell(&sb, displayNumber(c, precision))
		}
		writeCell(&sb, displayNumber(row.Constant, precision))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders s with DefaultPrecision.
func (s *System) String() string {
	var sb strings.Builder
	_ = s.WriteTable(&sb, DefaultPrecision) // strings.Builder never fails

	return sb.String()
}

func writeCell(sb *strings.Builder, text string) {
	fmt.Fprintf(sb, "%-*s", TableCellWidth, text)
}

// displayNumber rounds v and prints the shortest decimal form.
// Negative zero prints as "0".
func displayNumber(v float64, precision int) string {
	if precision >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
		scale := math.Pow(10, float64(precision))
		v = math.Round(v*scale) / scale
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
