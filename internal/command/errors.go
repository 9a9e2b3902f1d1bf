package command

import (
	"errors"
	"fmt"
)

// MissingOperandError is returned when a command that needs an operand gets none.
type MissingOperandError struct {
	Command string
}

func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("%s: missing file operand", e.Command)
}
func (e *MissingOperandError) Is(target error) bool { return target == ErrMissingOperand }

// CommandNotFoundError is returned for names outside the command set.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}
func (e *CommandNotFoundError) Is(target error) bool { return target == ErrCommandNotFound }

// -- Sentinels --

var (
	ErrMissingOperand  = errors.New("missing operand")
	ErrCommandNotFound = errors.New("command not found")
)
