// Package command implements the shell's fixed command set: the registry and
// executor that run a parsed command against a file system, the help table and
// the advisory validator.
package command

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/parser"
)

// Identity is what whoami, neofetch and the prompt report.
type Identity struct {
	User     string
	Host     string
	Owner    string
	Title    string
	Location string
}

// Options configures an Executor. Zero values fall back to defaults.
type Options struct {
	Identity Identity
	Clock    func() time.Time
	Logger   *zap.Logger
	Recorder Recorder
}

type handler func(inv *invocation)

// Executor dispatches parsed commands to their handlers. It holds no per-session
// state; the cursor lives in the file system passed to Execute.
type Executor struct {
	identity Identity
	clock    func() time.Time
	logger   *zap.Logger
	recorder Recorder
	handlers map[Name]handler
}

// New creates an Executor with its handler table.
func New(opts Options) *Executor {
	e := &Executor{
		identity: opts.Identity,
		clock:    opts.Clock,
		logger:   opts.Logger,
		recorder: opts.Recorder,
	}
	if e.identity.User == "" {
		e.identity.User = "guest"
	}
	if e.identity.Host == "" {
		e.identity.Host = "portfolio"
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.recorder == nil {
		e.recorder = nopRecorder{}
	}

	e.handlers = map[Name]handler{
		Ls:         e.ls,
		Cd:         e.cd,
		Pwd:        e.pwd,
		Cat:        e.cat,
		Help:       e.help,
		Clear:      e.clear,
		Echo:       e.echo,
		Whoami:     e.whoami,
		Date:       e.date,
		Neofetch:   e.neofetch,
		About:      e.about,
		Experience: e.experience,
		Projects:   e.projects,
		Skills:     e.skills,
		Contact:    e.contact,
		Exit:       e.exit,
		GUI:        e.exit,
	}
	return e
}

// Identity returns the identity the executor reports.
func (e *Executor) Identity() Identity { return e.identity }

// Execute runs parsed against fs. It never panics: a failing handler becomes an
// exit code of 1 with the failure message attached.
func (e *Executor) Execute(parsed parser.ParsedCommand, fs fileSystem) output.Result {
	if parsed.Command == "" {
		return output.Result{Output: []output.Line{}, ExitCode: output.ExitSuccess}
	}

	started := time.Now()
	inv := &invocation{
		command: parsed.Command,
		args:    parsed.Args,
		flags:   parsed.Flags,
		fs:      fs,
		now:     e.clock(),
	}

	label := "unknown"
	if name, ok := Lookup(parsed.Command); ok {
		label = name.String()
		e.run(e.handlers[name], inv)
	} else {
		inv.fail(output.ExitCommandNotFound, (&CommandNotFoundError{Name: parsed.Command}).Error())
		inv.info(fmt.Sprintf("Type '%s' to see available commands.", Help), nil)
	}

	elapsed := time.Since(started)
	e.recorder.ObserveCommand(label, inv.exitCode, elapsed)
	e.logger.Debug("command executed",
		zap.String("command", label),
		zap.Int("exit_code", inv.exitCode),
		zap.Duration("elapsed", elapsed),
	)
	return inv.result()
}

func (e *Executor) run(h handler, inv *invocation) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%s: %v", inv.command, r)
			e.logger.Error("command panicked", zap.String("command", inv.command), zap.Any("panic", r))
			inv.fail(output.ExitFailure, msg)
		}
	}()
	h(inv)
}

// invocation accumulates the output of one command.
type invocation struct {
	command string
	args    []string
	flags   parser.FlagSet
	fs      fileSystem
	now     time.Time

	lines    []output.Line
	exitCode int
	errMsg   string
}

func (inv *invocation) print(text string, metadata map[string]any) {
	inv.lines = append(inv.lines, output.NewLine(output.KindOutput, text, inv.now, metadata))
}

func (inv *invocation) info(text string, metadata map[string]any) {
	inv.lines = append(inv.lines, output.NewLine(output.KindInfo, text, inv.now, metadata))
}

// fail adds an error line and sets the exit code. Error keeps the first failure.
func (inv *invocation) fail(code int, text string) {
	inv.lines = append(inv.lines, output.NewLine(output.KindError, text, inv.now, nil))
	inv.exitCode = code
	if inv.errMsg == "" {
		inv.errMsg = text
	}
}

func (inv *invocation) result() output.Result {
	lines := inv.lines
	if lines == nil {
		lines = []output.Line{}
	}
	return output.Result{Output: lines, ExitCode: inv.exitCode, Error: inv.errMsg}
}
