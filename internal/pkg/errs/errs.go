package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err with a sentinel so that Is(err, markErr) holds while the
// message of err is kept. A nil err yields the sentinel itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target by identity or by a mark applied with Mark.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// WithHint attaches a message meant for the API caller.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return cr.WithHint(err, hint)
}

// Hint joins every hint attached along the chain, or returns "".
func Hint(err error) string {
	return strings.Join(cr.GetAllHints(err), "; ")
}

// StackLines renders err with its stack and keeps at most maxLines non-blank
// lines. maxLines <= 0 keeps everything.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}
