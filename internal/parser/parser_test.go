package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "simple command", input: "echo hello", expected: []string{"echo", "hello"}},
		{name: "surrounding whitespace", input: "  \t ls  /  ", expected: []string{"ls", "/"}},
		{name: "runs of whitespace", input: "echo    hello     world", expected: []string{"echo", "hello", "world"}},
		{name: "double quotes", input: `echo "hello world"`, expected: []string{"echo", "hello world"}},
		{name: "single quotes", input: `echo 'hello world'`, expected: []string{"echo", "hello world"}},
		{name: "adjacent quoted spans", input: `echo "hello"'world'`, expected: []string{"echo", "helloworld"}},
		{name: "quote inside other quote", input: `echo "it's"`, expected: []string{"echo", "it's"}},
		{name: "escaped quote in double quotes", input: `echo "say \"hi\""`, expected: []string{"echo", `say "hi"`}},
		{name: "escaped quote in single quotes", input: `echo 'it\'s'`, expected: []string{"echo", "it's"}},
		{name: "newline escape", input: `echo a\nb`, expected: []string{"echo", "a\nb"}},
		{name: "tab and cr escapes", input: `echo "a\tb\rc"`, expected: []string{"echo", "a\tb\rc"}},
		{name: "escaped backslash", input: `echo a\\b`, expected: []string{"echo", `a\b`}},
		{name: "unknown escape keeps backslash", input: `echo a\qb`, expected: []string{"echo", `a\qb`}},
		{name: "escaped space keeps backslash and joins", input: `echo a\ b`, expected: []string{"echo", `a\ b`}},
		{name: "trailing backslash", input: `echo end\`, expected: []string{"echo", `end\`}},
		{name: "unterminated double quote", input: `echo "hello world`, expected: []string{"echo", "hello world"}},
		{name: "unterminated single quote", input: `cat 'my file`, expected: []string{"cat", "my file"}},
		{name: "empty quotes", input: `echo "" ''`, expected: []string{"echo", "", ""}},
		{name: "empty input", input: "", expected: []string{}},
		{name: "whitespace only", input: "   \t  \n ", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		command string
		args    []string
		flags   []string
	}{
		{name: "quoted argument", input: `echo "hello world"`, command: "echo", args: []string{"hello world"}, flags: []string{}},
		{name: "combined short flags", input: "ls -la", command: "ls", args: []string{}, flags: []string{"a", "l"}},
		{name: "long flag", input: "ls --all projects", command: "ls", args: []string{"projects"}, flags: []string{"all"}},
		{name: "negative numbers", input: "echo -1 -2.5", command: "echo", args: []string{"-1", "-2.5"}, flags: []string{}},
		{name: "dash and double dash", input: "echo - --", command: "echo", args: []string{"-", "--"}, flags: []string{}},
		{name: "repeated flags collapse", input: "ls -l -l --l", command: "ls", args: []string{}, flags: []string{"l"}},
		{name: "flag like command name", input: "-la x", command: "-la", args: []string{"x"}, flags: []string{}},
		{name: "empty", input: "", command: "", args: []string{}, flags: []string{}},
		{name: "whitespace only", input: "    ", command: "", args: []string{}, flags: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.input)
			assert.Equal(t, tt.command, parsed.Command)
			assert.Equal(t, tt.args, parsed.Args)
			assert.Equal(t, tt.flags, parsed.Flags.Names())
			assert.Equal(t, tt.input, parsed.Raw)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"ls -la /projects",
		`echo "unterminated`,
		`cat 'a b' c\ d -1 --x`,
		"cd ~/experience",
	}

	for _, input := range inputs {
		first := Parse(input)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Parse(input), "input %q, iteration %d", input, i)
		}
	}
}

func TestFlagSet_Has(t *testing.T) {
	flags := Parse("ls -l --all").Flags
	assert.True(t, flags.Has("l"))
	assert.True(t, flags.Has("a", "all"))
	assert.False(t, flags.Has("a"))
	assert.False(t, FlagSet{}.Has("x"))
}
