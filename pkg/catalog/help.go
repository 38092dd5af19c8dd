package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

// DefaultTimeout bounds a single help invocation.
const DefaultTimeout = 30 * time.Second

const (
	helpFlag      = "-help"
	helpDebugFlag = "-help-debug"
)

var helpLine = regexp.MustCompile(`^  -[a-z]+`)

// HelpSource reads options from the executable's own -help output.
type HelpSource struct {
	Runner      CommandRunner
	Timeout     time.Duration // default: DefaultTimeout
	ExtendedFor []string      // executables also asked for -help-debug
}

// Args returns the arguments used to print the help of executable.
func (s *HelpSource) Args(executable string) []string {
	args := []string{helpFlag}
	if slices.Contains(s.ExtendedFor, executable) {
		args = append(args, helpDebugFlag)
	}
	return args
}

// Options runs the executable's help and returns the raw option tokens.
func (s *HelpSource) Options(ctx context.Context, executable string) ([]string, error) {
	timeout := s.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := s.Args(executable)
	stdout, stderr, err := s.Runner.RunCommandContext(ctx, executable, args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s %s timed out after %s", executable, strings.Join(args, " "), timeout)
		}
		if stderr = strings.TrimSpace(stderr); stderr != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", executable, strings.Join(args, " "), err, stderr)
		}
		return nil, fmt.Errorf("%s %s: %w", executable, strings.Join(args, " "), err)
	}

	return ParseHelp(stdout), nil
}

// ParseHelp extracts option tokens from help output. Only lines starting
// with exactly two spaces and a dash followed by a lowercase letter are
// entries; everything else is description text.
func ParseHelp(text string) []string {
	var options []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !helpLine.MatchString(line) {
			continue
		}
		token, _, _ := strings.Cut(strings.Fields(line)[0], "=")
		options = append(options, strings.TrimLeft(token, "-"))
	}
	return options
}
