package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// DefaultWindow is the number of trailing lines a refresh considers.
const DefaultWindow = 1000

// ReadError reports a log file that could not be opened, read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ErrInvalidEncoding marks content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid utf-8")

// Read returns at most maxLines from the end of the file at path. Lines keep
// their original terminators. A non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	lines, err := tail(bufio.NewReaderSize(file, 64*1024), maxLines)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return lines, nil
}

func tail(r *bufio.Reader, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		var all []string
		err := eachLine(r, func(line string) { all = append(all, line) })
		return all, err
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	err := eachLine(r, func(line string) {
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	})
	if err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

func eachLine(r *bufio.Reader, fn func(string)) error {
	lineNo := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNo++
			if !utf8.ValidString(line) {
				return fmt.Errorf("line %d: %w", lineNo, ErrInvalidEncoding)
			}
			fn(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read log: %w", err)
		}
	}
}
