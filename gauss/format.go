package gauss

import (
	"bufio"
	"io"
)

// FormatTrace writes each transformation of t followed by a newline.
func FormatTrace(w io.Writer, t Trace) error {
	bw := bufio.NewWriter(w)
	for _, tr := range t {
		if _, err := bw.WriteString(tr.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Strings renders every transformation of t.
func (t Trace) Strings() []string {
	out := make([]string, len(t))
	for i, tr := range t {
		out[i] = tr.String()
	}

	return out
}
