package t2048

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CommandKind identifies what an input command asks for.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandQuit
	CommandRestart
)

// Command is a single input event.
type Command struct {
	Kind CommandKind
	Dir  Direction // Set for CommandMove
}

func (c Command) String() string {
	switch c.Kind {
	case CommandQuit:
		return "quit"
	case CommandRestart:
		return "restart"
	default:
		return c.Dir.String()
	}
}

// ParseCommand maps a word to a command. Unknown words return
// ErrInvalidDirection.
func ParseCommand(word string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "quit", "q", "exit":
		return Command{Kind: CommandQuit}, nil
	case "restart", "r", "new":
		return Command{Kind: CommandRestart}, nil
	}
	dir, err := ParseDirection(word)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CommandMove, Dir: dir}, nil
}

// InputSource feeds commands to a game. Next returns io.EOF when exhausted.
type InputSource interface {
	Next() (Command, error)
}

// ScriptSource reads whitespace-separated commands from a reader.
// Everything after '#' on a line is ignored.
type ScriptSource struct {
	scanner *bufio.Scanner
	pending []string
	line    int
}

// NewScriptSource creates a script source reading from r.
func NewScriptSource(r io.Reader) *ScriptSource {
	return &ScriptSource{scanner: bufio.NewScanner(r)}
}

// Next returns the next command in the script.
func (s *ScriptSource) Next() (Command, error) {
	for len(s.pending) == 0 {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return Command{}, fmt.Errorf("t2048: read script: %w", err)
			}
			return Command{}, io.EOF
		}
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		s.pending = strings.Fields(text)
	}

	word := s.pending[0]
	s.pending = s.pending[1:]
	cmd, err := ParseCommand(word)
	if err != nil {
		return Command{}, fmt.Errorf("line %d: %w", s.line, err)
	}
	return cmd, nil
}
