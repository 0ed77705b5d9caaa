package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vk/schoolregistry/internal/registry"
	"golang.org/x/text/unicode/norm"
)

// personForm is what the console collects before registering a person.
type personForm struct {
	Name string `validate:"required"`
	ID   string `validate:"required"`
}

// nameForm is what the console collects before registering a subject,
// a section or an activity.
type nameForm struct {
	Name string `validate:"required"`
}

// activityForm is what the console collects before logging an activity.
type activityForm struct {
	Description string `validate:"required"`
}

// maxLineBytes bounds a single answer. Longer lines are discarded whole.
const maxLineBytes = 4096

var errLineTooLong = errors.New("input line too long")

// line is one answer read from the input, or the error that ended reading.
type line struct {
	text string
	err  error
}

// lineReader reads the input stream in the background so a pending read
// can be abandoned when the context is cancelled.
type lineReader struct {
	lines chan line
}

func newLineReader(r io.Reader) *lineReader {
	l := &lineReader{lines: make(chan line)}
	go l.pump(bufio.NewReader(r))
	return l
}

// pump forwards lines until the input ends or fails. An overlong line is
// forwarded as errLineTooLong and reading goes on.
func (l *lineReader) pump(r *bufio.Reader) {
	defer close(l.lines)
	for {
		text, err := readLine(r)
		if err != nil && !errors.Is(err, errLineTooLong) {
			if !errors.Is(err, io.EOF) {
				l.lines <- line{err: err}
			}
			return
		}
		l.lines <- line{text: text, err: err}
	}
}

// next returns the next line, trimmed and NFC-normalized. It returns io.EOF
// once the input is exhausted and ctx.Err() when ctx is done first.
func (l *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case ln, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return ln.text, ln.err
	}
}

// readLine reads up to the next newline. A final line without a newline is
// still returned.
func readLine(r *bufio.Reader) (string, error) {
	var (
		buf     []byte
		read    bool
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if !read {
				return "", err
			}
			break
		}
		read = true
		if !tooLong && len(buf)+len(chunk) <= maxLineBytes {
			buf = append(buf, chunk...)
		} else {
			tooLong, buf = true, nil
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return cleanText(string(buf)), nil
}

// cleanText trims surrounding space and composes accents, so "José" typed
// with a combining acute and with a precomposed é end up identical.
func cleanText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// parseChoice turns a typed number into a 0-based position. Anything that
// is not a plain positive decimal number is an invalid selection.
func parseChoice(s string) (int, error) {
	n, ok := parseNumber(s)
	if !ok || n == 0 {
		return 0, fmt.Errorf("%w: %q", registry.ErrInvalidSelection, s)
	}
	return n - 1, nil
}

// parseNumber accepts only ASCII digits, so "+1", "-1" and " 1x" are refused.
func parseNumber(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// describeValidation renders validator errors as a short sentence.
func describeValidation(errs validator.ValidationErrors) string {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Sprintf("Invalid input: %s must not be empty.", strings.Join(fields, " and "))
}
