package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/raphi011/consolemenu/internal/log"
)

const (
	// DefaultHeader is the line printed above the options.
	DefaultHeader = "Please choose an option:"

	// DefaultSeparator sits between an option's number and its label.
	DefaultSeparator = "-"

	// DefaultWordSeparator is rendered as a blank when labels are prettified.
	DefaultWordSeparator = '_'

	// CancelToken is the input that ends the menu without a selection.
	// It is matched case-insensitively.
	CancelToken = "x"

	cancelLabel  = "Exit"
	retryMessage = "No valid selection! Please try again: "
)

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Menu renders an option set and reads a selection from a line stream.
//
// The exported fields may be changed between calls to Show. A Menu is not
// safe for concurrent use; callers must not run Show on the same Menu from
// several goroutines.
type Menu[K Key] struct {
	// Header is printed above the options.
	Header string
	// Separator is printed between an option's number and its label.
	Separator string
	// WordSeparator is replaced by a blank in labels when Show is asked to.
	// Zero disables the replacement.
	WordSeparator rune
	// SupportsCancel adds the "X - Exit" line and accepts the cancel token.
	SupportsCancel bool
	// AutoDispatch runs the action registered for the accepted key.
	AutoDispatch bool
	// LeadingBlankLine prints a blank line before the header.
	LeadingBlankLine bool

	out       io.Writer
	in        *bufio.Reader
	options   []Option[K]
	labels    map[K]string
	actions   map[K]func()
	selection Selection[K]
}

// New creates a menu writing to out and reading from in.
// The options are displayed in ascending key order; keys must be unique.
// An empty option set is allowed and leaves only the cancel line.
func New[K Key](out io.Writer, in io.Reader, options []Option[K]) (*Menu[K], error) {
	if isNil(out) {
		return nil, ErrNilOutput
	}
	if isNil(in) {
		return nil, ErrNilInput
	}

	sorted, err := sortOptions(options)
	if err != nil {
		return nil, err
	}

	labels := make(map[K]string, len(sorted))
	for _, o := range sorted {
		labels[o.Key] = o.Label
	}

	return &Menu[K]{
		Header:           DefaultHeader,
		Separator:        DefaultSeparator,
		WordSeparator:    DefaultWordSeparator,
		SupportsCancel:   true,
		AutoDispatch:     true,
		LeadingBlankLine: true,
		out:              out,
		in:               bufio.NewReader(in),
		options:          sorted,
		labels:           labels,
		actions:          make(map[K]func()),
	}, nil
}

// Options returns the option set in display order.
func (m *Menu[K]) Options() []Option[K] {
	return append([]Option[K](nil), m.options...)
}

// Label returns the label for key, with word separators replaced by blanks
// when wordSeparatorToSpace is set.
func (m *Menu[K]) Label(key K, wordSeparatorToSpace bool) (string, bool) {
	label, ok := m.labels[key]
	if !ok {
		return "", false
	}
	return m.displayLabel(label, wordSeparatorToSpace), true
}

// RegisterAction binds fn to key, replacing any earlier action for that key.
func (m *Menu[K]) RegisterAction(key K, fn func()) error {
	if fn == nil {
		return ErrNilAction
	}
	if m.actions == nil {
		m.actions = make(map[K]func())
	}
	m.actions[key] = fn
	return nil
}

// Selection returns the outcome of the last successful Show.
func (m *Menu[K]) Selection() Selection[K] {
	return m.selection
}

// Show renders the menu and reads lines until one names an option or, when
// SupportsCancel is set, equals the cancel token. Invalid lines are answered
// with a retry message and the menu is rendered again, without limit.
//
// The result is also stored for Selection. With AutoDispatch set, the action
// registered for the selected key runs before Show returns.
//
// ctx carries the diagnostics logger; a blocked read is not interrupted.
// Show returns ErrInputClosed when the input ends before a selection.
func (m *Menu[K]) Show(ctx context.Context, wordSeparatorToSpace bool) (Selection[K], error) {
	if err := m.checkStreams(); err != nil {
		return NoSelection[K](), err
	}

	l := log.FromContext(ctx)

	sel, err := m.run(l, wordSeparatorToSpace)
	if err != nil {
		return NoSelection[K](), err
	}

	m.selection = sel
	l.Debugf("menu: selection %s\n", sel)

	if m.AutoDispatch {
		m.Dispatch(ctx)
	}
	return sel, nil
}

// Dispatch runs the action registered for the current selection.
// It reports whether an action ran.
func (m *Menu[K]) Dispatch(ctx context.Context) bool {
	key, ok := m.selection.Key()
	if !ok {
		return false
	}
	fn, ok := m.actions[key]
	if !ok {
		return false
	}
	log.FromContext(ctx).Debugf("menu: running action for %d\n", int64(key))
	fn()
	return true
}

func (m *Menu[K]) checkStreams() error {
	if m.in == nil {
		return ErrNilInput
	}
	if isNil(m.out) {
		return ErrNilOutput
	}
	return nil
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// map, channel, func or slice.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func (m *Menu[K]) run(l *log.Logger, wordSeparatorToSpace bool) (Selection[K], error) {
	for attempt := 1; ; attempt++ {
		if err := m.render(wordSeparatorToSpace); err != nil {
			return NoSelection[K](), err
		}

		line, err := m.readLine()
		if err != nil {
			return NoSelection[K](), err
		}

		sel, err := m.resolve(line)
		if err == nil {
			return sel, m.writeLine("")
		}

		l.Debugf("menu: attempt %d rejected: %v\n", attempt, err)
		for _, s := range []string{"", retryMessage, ""} {
			if err := m.writeLine(s); err != nil {
				return NoSelection[K](), err
			}
		}
	}
}

func (m *Menu[K]) render(wordSeparatorToSpace bool) error {
	var lines []string
	if m.LeadingBlankLine {
		lines = append(lines, "")
	}
	lines = append(lines, m.Header, "")
	for _, o := range m.options {
		lines = append(lines, fmt.Sprintf("%d %s %s", int64(o.Key), m.Separator, m.displayLabel(o.Label, wordSeparatorToSpace)))
	}
	if m.SupportsCancel {
		lines = append(lines, fmt.Sprintf("%s %s %s", strings.ToUpper(CancelToken), m.Separator, cancelLabel))
	}
	lines = append(lines, "")

	for _, s := range lines {
		if err := m.writeLine(s); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu[K]) displayLabel(label string, wordSeparatorToSpace bool) string {
	if !wordSeparatorToSpace || m.WordSeparator == 0 {
		return label
	}
	return strings.ReplaceAll(label, string(m.WordSeparator), " ")
}

// resolve maps one input line to a selection.
// Returns an error wrapping ErrInvalidSelection if the line names no option.
func (m *Menu[K]) resolve(line string) (Selection[K], error) {
	input := strings.TrimSpace(line)

	if m.SupportsCancel && strings.EqualFold(input, CancelToken) {
		return NoSelection[K](), nil
	}

	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return NoSelection[K](), fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, input)
	}

	key := K(n)
	if int64(key) != n {
		return NoSelection[K](), fmt.Errorf("%w: %d is out of range", ErrInvalidSelection, n)
	}
	if _, ok := m.labels[key]; !ok {
		return NoSelection[K](), fmt.Errorf("%w: no option %d", ErrInvalidSelection, n)
	}
	return Selected(key), nil
}

// readLine reads one line without its terminator.
// A final line without a newline is returned as-is.
func (m *Menu[K]) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read selection: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// writeLine writes s and a newline, then flushes buffered sinks.
func (m *Menu[K]) writeLine(s string) error {
	if _, err := io.WriteString(m.out, s+"\n"); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	if f, ok := m.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush menu: %w", err)
		}
	}
	return nil
}
