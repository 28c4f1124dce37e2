// Package shell provides the line-oriented interactive command loop.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/infra/config"
)

const invalidCommand = "Please enter a valid command, type HELP for a list of available commands."

// Shell reads commands from the interactive channel and dispatches them to
// the session. The session shares the same reader for search prompts.
type Shell struct {
	session Session
	in      *LineReader
	out     io.Writer

	prompt         string
	maxSuggestions int
}

// New creates a new shell.
func New(session Session, in *LineReader, out io.Writer, cfg config.ShellConfig) *Shell {
	return &Shell{
		session:        session,
		in:             in,
		out:            out,
		prompt:         cfg.Prompt,
		maxSuggestions: cfg.MaxSuggestions,
	}
}

// Run runs the command loop until EXIT, end of input or ctx is done.
// A read pending on a LineReader bound to ctx is abandoned on cancel.
func (s *Shell) Run(ctx context.Context) error {
	s.writef("Hello and welcome to vidbox! Type HELP for a list of available commands.\n")

	for {
		if err := ctx.Err(); err != nil {
			zlog.Debug().Msgf("shell: context done: %v", err)
			return nil
		}

		s.writef("%s", s.prompt)
		line, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.writef("\n")
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				zlog.Debug().Msgf("shell: read abandoned: %v", err)
				s.writef("\n")
				return nil
			}
			return errors.Wrap(err, "failed to read command")
		}

		if !s.Execute(line) {
			s.writef("vidbox has now terminated its execution. Thank you and goodbye!\n")
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the loop continues.
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	name, args := strings.ToUpper(fields[0]), fields[1:]
	switch name {
	case cmdExit:
		return false
	case cmdHelp:
		s.writef("%s", helpText())
		return true
	}

	c, ok := lookup(name)
	if !ok {
		zlog.Debug().Msgf("shell: unknown command: %q", fields[0])
		s.writef("%s\n", invalidCommand)
		for _, suggestion := range suggest(name, s.maxSuggestions) {
			s.writef("Did you mean %s?\n", suggestion)
		}
		return true
	}

	if !c.accepts(len(args)) {
		zlog.Debug().Msgf("shell: wrong arity: command=%s args=%d", c.name, len(args))
		s.writef("%s\n", invalidCommand)
		return true
	}

	zlog.Debug().Msgf("shell: dispatch: command=%s args=%v", c.name, args)
	c.run(s.session, args)
	return true
}

func (s *Shell) writef(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		zlog.Warn().Msgf("shell: failed to write output: %v", err)
	}
}
