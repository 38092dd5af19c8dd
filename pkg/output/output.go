// Package output prints entrypoint diagnostics. Standard output belongs to
// the daemon once it runs, so everything here goes to standard error.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// Printer writes step results.
type Printer struct {
	W     io.Writer
	Trace bool // print successful steps too
}

// Stderr returns a printer on the process standard error.
func Stderr(trace bool) *Printer {
	return &Printer{W: os.Stderr, Trace: trace}
}

// OK reports a completed step when tracing.
func (p *Printer) OK(step string, details ...string) {
	if !p.Trace {
		return
	}
	_, _ = fmt.Fprintf(p.W, "%s[OK]%s %s\n", green, reset, step)
	p.details(details)
}

// Fail reports a failed step.
func (p *Printer) Fail(step string, err error) {
	_, _ = fmt.Fprintf(p.W, "%s[FAIL]%s %s\n", red, reset, step)
	if err != nil {
		p.details([]string{err.Error()})
	}
}

func (p *Printer) details(details []string) {
	for _, d := range details {
		_, _ = fmt.Fprintf(p.W, "      %s\n", formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ": ")
	if !ok || strings.ContainsAny(label, " /") {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
