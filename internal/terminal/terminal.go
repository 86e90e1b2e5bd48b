package terminal

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Terminal provides line-oriented read/write access over a raw connection:
// a local console, or a pipe fed by another front end.
type Terminal struct {
	r           *bufio.Reader
	w           io.Writer
	closer      io.Closer
	ANSIEnabled bool
}

// New creates a new Terminal reading from r and writing to w.
// If r implements io.Closer, Close closes it.
func New(r io.Reader, w io.Writer, ansiEnabled bool) *Terminal {
	t := &Terminal{
		r:           bufio.NewReader(r),
		w:           w,
		ANSIEnabled: ansiEnabled,
	}
	if c, ok := r.(io.Closer); ok {
		t.closer = c
	}
	return t
}

// Close closes the underlying reader, if it can be closed.
func (t *Terminal) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// Write implements io.Writer, delegating to the underlying output.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Send writes raw text to the terminal.
func (t *Terminal) Send(data string) error {
	_, err := io.WriteString(t.w, data)
	return err
}

// SendLn writes a line of text followed by a newline.
func (t *Terminal) SendLn(text string) error {
	return t.Send(text + "\n")
}

// Cls clears the screen, or starts a new line when ANSI is off.
func (t *Terminal) Cls() error {
	if t.ANSIEnabled {
		return t.Send(ClearScreen())
	}
	return t.Send("\n")
}

// ReadLine reads one line of input without the trailing CR/LF.
// A blank line yields "". A final line without a newline is returned as is;
// io.EOF is returned only once no input is left.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
