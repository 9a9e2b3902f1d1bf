package command

import (
	"fmt"

	"github.com/Cyclone1070/foliosh/internal/parser"
)

// Validation is the advisory verdict on a parsed command. Errors mark
// invocations that cannot do what was asked; warnings mark input that will be
// ignored. Neither stops the command from running.
type Validation struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validate checks the shape of parsed without touching any file system.
func Validate(parsed parser.ParsedCommand) Validation {
	var v Validation
	if parsed.Command == "" {
		v.Valid = true
		return v
	}

	name, ok := Lookup(parsed.Command)
	if !ok {
		v.Errors = append(v.Errors, fmt.Sprintf("unknown command: %s", parsed.Command))
		return v
	}

	u := usages[name]
	n := len(parsed.Args)
	switch {
	case name == Cd && n >= 2:
		v.Errors = append(v.Errors, "cd: too many arguments")
	case name == Cat && n == 0:
		v.Errors = append(v.Errors, (&MissingOperandError{Command: Cat.String()}).Error())
	case u.maxArgs == 0 && n > 0:
		v.Warnings = append(v.Warnings, fmt.Sprintf("%s: takes no arguments, ignoring %d", name, n))
	case u.maxArgs > 0 && n > u.maxArgs:
		v.Warnings = append(v.Warnings, fmt.Sprintf("%s: extra operands ignored: %v", name, parsed.Args[u.maxArgs:]))
	}

	for _, flag := range parsed.Flags.Names() {
		if u.acceptsFlag(flag) {
			continue
		}
		dash := "-"
		if len(flag) > 1 {
			dash = "--"
		}
		v.Warnings = append(v.Warnings, fmt.Sprintf("%s: unsupported option %s%s", name, dash, flag))
	}

	v.Valid = len(v.Errors) == 0
	return v
}
