// Package input reads console commands and maps their first word to an
// action through a table of aliases.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader reads input one line at a time
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r for line reads
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. A final line with
// no newline is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
