// Package cli is a minimal line-oriented command shell for the board console.
// It mirrors the BL602 SDK CLI closely enough to host the blink command on
// targets that have no shell of their own.
package cli

import (
	"errors"
	"io"
	"sort"

	"github.com/google/shlex"
)

// Handler is a shell command in the firmware calling convention: the raw
// NUL-terminated command line and a C-style argument vector.
type Handler func(buf *byte, length, argc int32, argv **byte)

// Command is a registered shell command
type Command struct {
	Name    string
	Help    string
	Handler Handler
}

// LineMax is the longest accepted command line, terminator excluded.
const LineMax = 128

// Prompt is written whenever the shell is ready for input.
const Prompt = "# "

var ErrLineTooLong = errors.New("cli: line too long")

// Shell reads command lines byte by byte and dispatches them.
type Shell struct {
	out      io.Writer
	commands map[string]*Command
	line     [LineMax]byte
	n        int
	overrun  bool
}

// New creates a shell that writes its output to out.
func New(out io.Writer) *Shell {
	s := &Shell{out: out, commands: make(map[string]*Command)}
	s.Register("help", "print this", func(*byte, int32, int32, **byte) { s.printHelp() })
	return s
}

// Register adds a command. Registering a name twice keeps the first one.
func (s *Shell) Register(name, help string, h Handler) {
	if _, exists := s.commands[name]; exists {
		return
	}
	s.commands[name] = &Command{Name: name, Help: help, Handler: h}
}

// Start writes the first prompt.
func (s *Shell) Start() {
	s.write(Prompt)
}

// Feed consumes one input byte. Completed lines are executed before Feed
// returns, so a command that blocks also blocks the shell.
func (s *Shell) Feed(b byte) {
	switch b {
	case '\r', '\n':
		if s.n == 0 && !s.overrun {
			if b == '\r' {
				s.write("\r\n" + Prompt)
			}
			return
		}
		s.write("\r\n")
		if s.overrun {
			s.write(ErrLineTooLong.Error() + "\r\n")
		} else {
			s.Exec(string(s.line[:s.n]))
		}
		s.n, s.overrun = 0, false
		s.write(Prompt)
	case 0x08, 0x7f: // backspace, delete
		if s.n > 0 {
			s.n--
			s.write("\b \b")
		}
	default:
		if s.n >= LineMax {
			s.overrun = true
			return
		}
		s.line[s.n] = b
		s.n++
		s.out.Write([]byte{b}) // echo
	}
}

// Exec runs one command line. Unknown commands and unbalanced quoting are
// reported on the shell output.
func (s *Shell) Exec(line string) {
	args, err := shlex.Split(line)
	if err != nil {
		s.write("parse error: " + err.Error() + "\r\n")
		return
	}
	if len(args) == 0 {
		return
	}
	cmd, ok := s.commands[args[0]]
	if !ok {
		s.write("command '" + args[0] + "' not found\r\n")
		return
	}
	buf, n, argc, argv := CArgs(line, args)
	cmd.Handler(buf, n, argc, argv)
}

func (s *Shell) printHelp() {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	s.write("====User Commands====\r\n")
	for _, name := range names {
		cmd := s.commands[name]
		pad := 25 - len(name)
		if pad < 1 {
			pad = 1
		}
		s.write(name + spaces(pad) + ": " + cmd.Help + "\r\n")
	}
}

func (s *Shell) write(str string) {
	io.WriteString(s.out, str)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
