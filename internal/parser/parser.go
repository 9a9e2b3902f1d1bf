// Package parser turns a raw input line into a structured command.
package parser

import (
	"sort"
	"strings"
)

// FlagSet holds presence-only flags.
type FlagSet map[string]struct{}

// Has reports whether any of the given flags is set.
func (f FlagSet) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := f[name]; ok {
			return true
		}
	}
	return false
}

// Names returns the flag names in sorted order.
func (f FlagSet) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParsedCommand is the structured form of one input line.
type ParsedCommand struct {
	Command string
	Args    []string
	Flags   FlagSet
	Raw     string
}

// Parse tokenizes raw and classifies the tokens after the command name:
//
//	--name      flag "name"
//	-abc        flags "a", "b", "c"
//	-1, -2.5    positional arguments (negative numbers)
//	-, --       positional arguments
//
// Parse is total and pure: the same input always yields an equal value.
func Parse(raw string) ParsedCommand {
	parsed := ParsedCommand{
		Args:  []string{},
		Flags: FlagSet{},
		Raw:   raw,
	}

	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return parsed
	}

	parsed.Command = tokens[0]
	for _, tok := range tokens[1:] {
		switch {
		case tok == "-" || tok == "--":
			parsed.Args = append(parsed.Args, tok)
		case strings.HasPrefix(tok, "--"):
			parsed.Flags[tok[2:]] = struct{}{}
		case strings.HasPrefix(tok, "-") && !isDigit(tok[1]):
			for _, r := range tok[1:] {
				parsed.Flags[string(r)] = struct{}{}
			}
		default:
			parsed.Args = append(parsed.Args, tok)
		}
	}

	return parsed
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
