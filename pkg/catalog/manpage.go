package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultManDir is where the images install the section 1 man pages.
const DefaultManDir = "/usr/share/man/man1"

// FileReader abstracts file reads for testability.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// RealFileReader reads from the host file system.
type RealFileReader struct{}

// ReadFile returns the contents of name.
func (r *RealFileReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // path is built from a known executable name
}

// An option entry in a man(1) page is a .HP paragraph whose first line is
// the bold option, e.g. `\fB\-datadir=\fR\fI<dir>\fR` or `\fB\-help\-debug\fR`.
var manEntry = regexp.MustCompile(`(?m)^\.HP\n\\fB\\-(.*?)=?\\fR`)

// ManPageSource reads options from the executable's roff man page.
type ManPageSource struct {
	Dir   string // default: DefaultManDir
	Files FileReader
}

// Path returns the man page location for executable.
func (s *ManPageSource) Path(executable string) string {
	dir := s.Dir
	if dir == "" {
		dir = DefaultManDir
	}
	return filepath.Join(dir, executable+".1")
}

// Options reads and parses the man page of executable.
func (s *ManPageSource) Options(_ context.Context, executable string) ([]string, error) {
	path := s.Path(executable)
	data, err := s.Files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read man page: %w", err)
	}
	return ParseManPage(string(data)), nil
}

// ParseManPage extracts option tokens from roff text, stripping the escape
// backslashes and "=" placeholders left by the formatting.
func ParseManPage(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var options []string
	for _, m := range manEntry.FindAllStringSubmatch(text, -1) {
		token := strings.NewReplacer(`\`, "", "=", "").Replace(m[1])
		options = append(options, token)
	}
	return options
}
