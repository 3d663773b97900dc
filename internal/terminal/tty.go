package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/nmaint/nmaint/internal/render"
	"github.com/nmaint/nmaint/internal/theme"
	"golang.org/x/term"
)

// TTY drives a terminal through its file descriptors.
type TTY struct {
	in      *os.File
	out     *os.File
	styles  *theme.Styles
	saved   *term.State
	buf     []byte
	pending []byte
}

// NewTTY builds a driver reading from in and drawing to out.
func NewTTY(in, out *os.File, styles *theme.Styles) *TTY {
	if styles == nil {
		styles = theme.Default()
	}
	return &TTY{
		in:     in,
		out:    out,
		styles: styles,
		buf:    make([]byte, 256),
	}
}

// Enter implements Device.
func (t *TTY) Enter() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	if _, err := io.WriteString(t.out, ansi.SetAltScreenSaveCursorMode+ansi.HideCursor); err != nil {
		_ = term.Restore(fd, saved)
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	t.saved = saved
	return nil
}

// Leave implements Device.
func (t *TTY) Leave() error {
	if t.saved == nil {
		return nil
	}
	saved := t.saved
	t.saved = nil
	t.pending = nil
	_, werr := io.WriteString(t.out, ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode)
	rerr := term.Restore(int(t.in.Fd()), saved)
	return errors.Join(werr, rerr)
}

// Present implements Device.
func (t *TTY) Present(frame render.Frame) error {
	width, _, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		width = 0
	}
	lines := strings.Split(frame.View(t.styles, width), "\n")
	if width > 0 {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(width))
		}
	}
	var b strings.Builder
	b.WriteString(ansi.EraseEntireScreen)
	b.WriteString(ansi.CursorHomePosition)
	// raw mode disables output post-processing, so rows need an explicit CR
	b.WriteString(strings.Join(lines, "\r\n"))
	_, err = io.WriteString(t.out, b.String())
	return err
}

// ReadKey implements Device. A single read may deliver several keys; the
// surplus is kept for the following calls.
func (t *TTY) ReadKey() (Key, error) {
	for len(t.pending) == 0 {
		n, err := t.in.Read(t.buf)
		if n > 0 {
			t.pending = append(t.pending, t.buf[:n]...)
		}
		if err != nil && len(t.pending) == 0 {
			return Key{}, err
		}
	}
	seq, _, n, _ := ansi.DecodeSequence(t.pending, ansi.NormalState, nil)
	if n <= 0 {
		n = len(t.pending)
		seq = t.pending
	}
	key := keyFromSequence(seq)
	t.pending = t.pending[n:]
	return key, nil
}

func keyFromSequence(seq []byte) Key {
	if len(seq) == 1 && (seq[0] == '\r' || seq[0] == '\n') {
		return Key{Code: KeyEnter}
	}
	r, size := utf8.DecodeRune(seq)
	if size == len(seq) && r != utf8.RuneError && unicode.IsPrint(r) {
		return RuneKey(r)
	}
	return Key{Code: KeyOther, Name: fmt.Sprintf("%q", seq)}
}
