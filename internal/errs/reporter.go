package errs

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter formats Faults and the final pass/fail verdict for the CLI.
// Grounded on kanso/internal/errors.ErrorReporter's color scheme (red bold
// for fatal errors, yellow bold for the residual-claims warning, green bold
// for success) without its source-snippet rendering, which has no analog
// here.
type Reporter struct {
	out io.Writer
}

// NewReporter builds a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// ReportFault prints a verification error. A Fault whose Code is not
// fatal() (only CodeResidualClaims qualifies, and that path is reported via
// ReportResidualClaims instead) is printed as a warning rather than an
// error, so a future coded-but-non-fatal addition degrades safely here too.
func (r *Reporter) ReportFault(err error) {
	var fault *Fault
	if errors.As(err, &fault) && !fault.Code.fatal() {
		warn := color.New(color.FgYellow, color.Bold).SprintFunc()
		fmt.Fprintf(r.out, "%s %v\n", warn("warning:"), err)
		return
	}
	bold := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "%s %v\n", bold("error:"), err)
}

// ReportResidualClaims prints the non-fatal warning that the proof stream
// ended with claims still unproved, tagged with CodeResidualClaims the same
// way ReportFault tags a fatal error with its Code.
func (r *Reporter) ReportResidualClaims(remaining int) {
	warn := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "%s [%s] checking finished but %d claim(s) were left unproved\n", warn("warning:"), CodeResidualClaims, remaining)
}

// ReportSuccess prints the all-claims-proved verdict.
func (r *Reporter) ReportSuccess() {
	ok := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "%s all claims proved\n", ok("success:"))
}
