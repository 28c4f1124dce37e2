package shell

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type readResult struct {
	line string
	err  error
}

// LineReader reads newline-terminated lines from the interactive channel.
// Reads are abandoned when ctx is done, so a pending read never outlives
// a shutdown signal.
type LineReader struct {
	ctx   context.Context
	r     *bufio.Reader
	once  sync.Once
	lines chan readResult
}

// NewLineReader creates a LineReader over r bound to ctx.
func NewLineReader(ctx context.Context, r io.Reader) *LineReader {
	return &LineReader{
		ctx:   ctx,
		r:     bufio.NewReader(r),
		lines: make(chan readResult),
	}
}

// ReadLine blocks until a full line is available and returns it without the
// line terminator. A final unterminated line is returned before io.EOF.
// Returns ctx.Err() once ctx is done.
func (l *LineReader) ReadLine() (string, error) {
	if err := l.ctx.Err(); err != nil {
		return "", err
	}

	l.once.Do(func() { go l.pump() })

	select {
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	case <-l.ctx.Done():
		return "", l.ctx.Err()
	}
}

// pump reads lines in order and hands each one to the next ReadLine call.
// It stops after the first read error or when ctx is done.
func (l *LineReader) pump() {
	defer close(l.lines)

	for {
		line, err := l.readLine()

		select {
		case l.lines <- readResult{line: line, err: err}:
		case <-l.ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (l *LineReader) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
