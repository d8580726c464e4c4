package chase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/gridchase/core"
)

// Command is one player action for a turn.
type Command int

const (
	// Wait keeps the prey in place; the hunter still moves.
	Wait Command = iota
	// MoveUp moves the prey one tile up (-y).
	MoveUp
	// MoveDown moves the prey one tile down (+y).
	MoveDown
	// MoveLeft moves the prey one tile left (-x).
	MoveLeft
	// MoveRight moves the prey one tile right (+x).
	MoveRight
	// Quit forfeits the game.
	Quit
)

// Direction returns the movement of a move command and false for Wait and Quit.
func (c Command) Direction() (core.Direction, bool) {
	switch c {
	case MoveUp:
		return core.Up, true
	case MoveDown:
		return core.Down, true
	case MoveLeft:
		return core.Left, true
	case MoveRight:
		return core.Right, true
	}
	return 0, false
}

func (c Command) String() string {
	switch c {
	case Wait:
		return "wait"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// ParseCommand maps player input to a Command by its first letter,
// case-insensitively: u, d, l, r move; w or blank input waits; q or e quit.
// Anything else yields ErrUnknownCommand.
func ParseCommand(s string) (Command, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Wait, nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch unicode.ToLower(r) {
	case 'u':
		return MoveUp, nil
	case 'd':
		return MoveDown, nil
	case 'l':
		return MoveLeft, nil
	case 'r':
		return MoveRight, nil
	case 'w':
		return Wait, nil
	case 'q', 'e':
		return Quit, nil
	}
	return Wait, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}
