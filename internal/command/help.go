package command

import (
	"fmt"
	"strings"
)

// unlimited marks a command that takes any number of operands.
const unlimited = -1

type usage struct {
	synopsis    string
	description string
	maxArgs     int
	flags       []string
}

var usages = [nameCount]usage{
	Ls:         {"ls [-l] [-a] [path]", "list directory contents", 1, []string{"l", "a"}},
	Cd:         {"cd [path]", "change the current directory", 1, nil},
	Pwd:        {"pwd", "print the current directory", 0, nil},
	Cat:        {"cat <path...>", "print file contents", unlimited, nil},
	Help:       {"help [command]", "show available commands", 1, nil},
	Clear:      {"clear", "clear the screen", 0, nil},
	Echo:       {"echo <text...>", "print text", unlimited, nil},
	Whoami:     {"whoami", "print the visitor name", 0, nil},
	Date:       {"date", "print the current date and time", 0, nil},
	Neofetch:   {"neofetch", "show system information", 0, nil},
	About:      {"about", "who I am", 0, nil},
	Experience: {"experience", "work history", 0, nil},
	Projects:   {"projects", "things I have built", 0, nil},
	Skills:     {"skills", "what I work with", 0, nil},
	Contact:    {"contact", "how to reach me", 0, nil},
	Exit:       {"exit", "close the terminal", 0, nil},
	GUI:        {"gui", "close the terminal", 0, nil},
}

func (u usage) acceptsFlag(flag string) bool {
	for _, f := range u.flags {
		if f == flag {
			return true
		}
	}
	return false
}

// helpIndex lists every command with its one-line description.
func helpIndex() []string {
	width := 0
	for _, n := range Names() {
		width = max(width, len(n.String()))
	}
	lines := make([]string, 0, nameCount+1)
	lines = append(lines, "Available commands:")
	for _, n := range Names() {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, n.String(), usages[n].description))
	}
	return lines
}

func helpTopic(n Name) string {
	u := usages[n]
	return fmt.Sprintf("usage: %s\n%s", u.synopsis, strings.ToUpper(u.description[:1])+u.description[1:])
}
