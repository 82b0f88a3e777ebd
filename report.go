package fireplace

import (
	"fmt"
	"io"
	"time"
)

// Report writes answer to w as a single line and returns the text written
// (without the newline).
func Report(w io.Writer, answer fmt.Stringer) string {
	s := answer.String()
	fmt.Fprintln(w, s)
	return s
}

// ReportTimed is like Report but follows the answer with a line giving the
// solver's run time: "RT <nanoseconds> ns".
func ReportTimed(w io.Writer, answer fmt.Stringer, d time.Duration) string {
	s := Report(w, answer)
	fmt.Fprintf(w, "RT %d ns\n", d.Nanoseconds())
	return s
}
