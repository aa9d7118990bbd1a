package input

import (
	"errors"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode
var ErrInterrupted = errors.New("interrupted")

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readEscape decodes the rest of an escape sequence. Only arrow keys are
// recognised; a bare escape maps to "escape".
func readEscape() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadKey puts the terminal in raw mode, reads one keypress and returns it
// as a raw input event.
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, err
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return RawInput{}, err
	}

	code := ""
	switch {
	case b == 3:
		return RawInput{}, ErrInterrupted
	case b == 0x1b:
		code = readEscape()
	case b == '\r' || b == '\n':
		code = "enter"
	case b == ' ':
		code = "space"
	case b >= 32 && b < 127:
		code = string(b)
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}
