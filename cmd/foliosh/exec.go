package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/session"
)

const (
	execUse              = "exec [line...]"
	execShortDescription = "run shell lines without the terminal UI"
	execLongDescription  = `Run each argument as one shell line in a single session, printing output to
stdout and errors to stderr. Without arguments, lines are read from stdin.
The exit status is the last non-zero command status.`
	execUsageExample = `  foliosh exec "cd experience" "ls" "cat acme.txt"
  printf 'about\ncontact\n' | foliosh exec`
)

func newExecCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     execUse,
		Short:   execShortDescription,
		Long:    execLongDescription,
		Example: execUsageExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			sess, err := a.newSession()
			if err != nil {
				return err
			}

			lines := args
			if len(lines) == 0 {
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			code := runLines(sess, lines, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if code != output.ExitSuccess {
				return &exitCodeError{code: code}
			}
			return nil
		},
	}
}

// runLines submits each line and prints what it produced, stopping at exit.
// It returns the last non-zero exit code.
func runLines(sess *session.Session, lines []string, stdout, stderr io.Writer) int {
	code := output.ExitSuccess
	for _, line := range lines {
		outcome := sess.Submit(line)
		for _, l := range outcome.Lines[1:] { // skip the echo
			writeLine(l, stdout, stderr)
		}
		if outcome.Result.ExitCode != output.ExitSuccess {
			code = outcome.Result.ExitCode
		}
		if outcome.Exit {
			break
		}
	}
	return code
}

func writeLine(l output.Line, stdout, stderr io.Writer) {
	if l.Action() == output.ActionClear {
		return
	}
	text := l.Text
	if len(text) > 0 && text[len(text)-1] == '\n' {
		text = text[:len(text)-1]
	}
	if l.Kind == output.KindError {
		fmt.Fprintln(stderr, text)
		return
	}
	fmt.Fprintln(stdout, text)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}
