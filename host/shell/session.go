// Package shell drives the board's command-line interface over a console
// port: it sends one command and collects the transcript that follows.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"blinky/core"
)

// Result classifies how a command invocation ended
type Result string

const (
	ResultOK       Result = "ok"        // banner seen, then the prompt came back
	ResultNoBanner Result = "no_banner" // prompt came back without the banner, e.g. unknown command
	ResultHalted   Result = "halted"    // fallback diagnostic seen; the board is parked
	ResultTimeout  Result = "timeout"   // none of the above within the deadline
)

// DefaultPrompt is the BL602 SDK CLI prompt
const DefaultPrompt = "# "

// Report is the outcome of one invocation
type Report struct {
	Result     Result
	Banner     bool   // banner line seen
	Transcript string // everything read after the command was sent
	Elapsed    time.Duration
}

// Lines splits the transcript into lines without CR/LF.
func (r *Report) Lines() []string {
	var out []string
	for _, l := range strings.Split(strings.ReplaceAll(r.Transcript, "\r", ""), "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Session talks to one board console.
type Session struct {
	port   io.ReadWriter
	prompt string
	log    *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithPrompt overrides DefaultPrompt
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithLogger sets the session logger (no-op by default)
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession wraps port. Reads must return within a bounded time (serial
// ports opened with a read timeout do) so the context deadline is honoured.
func NewSession(port io.ReadWriter, opts ...Option) *Session {
	s := &Session{port: port, prompt: DefaultPrompt, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Invoke sends command and reads until the prompt returns, the fallback
// diagnostic appears, or ctx is done. Only a prompt preceded by the banner
// counts as ResultOK. A timeout is a Result, not an error;
// errors are reserved for port failures.
func (s *Session) Invoke(ctx context.Context, command string) (*Report, error) {
	start := time.Now()
	if f, ok := s.port.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			s.log.Debug("flush failed", zap.Error(err))
		}
	}
	if _, err := io.WriteString(s.port, command+"\r\n"); err != nil {
		return nil, fmt.Errorf("send %q: %w", command, err)
	}
	s.log.Debug("command sent", zap.String("command", command))

	rep := &Report{Result: ResultTimeout}
	var sb strings.Builder
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			break
		}
		n, err := s.port.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
			out := sb.String()
			if !rep.Banner && strings.Contains(out, core.Banner) {
				rep.Banner = true
				s.log.Debug("banner seen")
			}
			if strings.Contains(out, core.FaultMessage) {
				rep.Result = ResultHalted
				break
			}
			if s.promptReturned(out) {
				rep.Result = ResultOK
				if !rep.Banner {
					rep.Result = ResultNoBanner
				}
				break
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			rep.Transcript = sb.String()
			return rep, fmt.Errorf("read console: %w", err)
		}
	}

	rep.Transcript = sb.String()
	rep.Elapsed = time.Since(start)
	s.log.Info("command finished",
		zap.String("command", command),
		zap.String("result", string(rep.Result)),
		zap.Bool("banner", rep.Banner),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

// promptReturned reports whether the prompt follows at least one full line,
// so the prompt echoed before the command output does not count.
func (s *Session) promptReturned(out string) bool {
	return strings.Contains(out, "\n") && strings.HasSuffix(out, s.prompt)
}
