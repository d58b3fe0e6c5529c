// Package input turns device input into game intents.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader reads single keystrokes from a terminal held in raw mode.
type KeyReader struct {
	in       *os.File
	reader   *bufio.Reader
	oldState *term.State
}

// NewKeyReader puts in into raw mode. Call Restore when done.
func NewKeyReader(in *os.File) (*KeyReader, error) {
	oldState, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &KeyReader{
		in:       in,
		reader:   bufio.NewReader(in),
		oldState: oldState,
	}, nil
}

// Restore returns the terminal to the mode it was in before NewKeyReader
func (k *KeyReader) Restore() error {
	if k.oldState == nil {
		return nil
	}
	err := term.Restore(int(k.in.Fd()), k.oldState)
	k.oldState = nil
	return err
}

// ReadKey blocks until a key is pressed and returns its code
func (k *KeyReader) ReadKey() (string, error) {
	return DecodeKey(k.reader)
}

// DecodeKey reads one keystroke from r and returns its code: "arrow_up",
// "arrow_down", "arrow_left", "arrow_right", "escape", "enter", "f5", "f8",
// "quit" for Ctrl+C, the lower-cased character for printable ASCII, or ""
// for bytes with no meaning.
func DecodeKey(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return decodeEscape(r)
	case b == 3:
		return "quit", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b >= 'A' && b <= 'Z':
		return string(rune(b + ('a' - 'A'))), nil
	case b >= 32 && b < 127:
		return string(rune(b)), nil
	default:
		return "", nil
	}
}

// decodeEscape handles the bytes after ESC. A lone ESC with nothing
// buffered behind it is the Escape key.
func decodeEscape(r *bufio.Reader) (string, error) {
	if r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	// Both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err == io.EOF {
		return "escape", nil
	}
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	if b3 >= '0' && b3 <= '9' {
		return decodeFunctionKey(r, b3)
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// functionKeys maps the numeric CSI sequences (ESC [ n ~) we bind
var functionKeys = map[string]string{
	"15": "f5",
	"19": "f8",
}

// decodeFunctionKey reads the rest of an ESC [ n ~ sequence whose first digit was read
func decodeFunctionKey(r *bufio.Reader, first byte) (string, error) {
	digits := []byte{first}
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		if b == '~' {
			break
		}
		if b < '0' || b > '9' {
			// Modifier forms such as ESC [ 1 5 ; 2 ~ are ignored
			digits = nil
			continue
		}
		if digits != nil {
			digits = append(digits, b)
		}
	}
	return functionKeys[string(digits)], nil
}
