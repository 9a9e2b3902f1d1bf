// Package session owns everything between keystrokes and the command core for
// one visitor: the file system cursor, the output buffer, history, the prompt
// and tab completion.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cyclone1070/foliosh/internal/command"
	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/parser"
	"github.com/Cyclone1070/foliosh/internal/vfs"
)

const (
	defaultHistorySize    = 500
	defaultMaxOutputLines = 2000
)

// Recorder observes session activity.
type Recorder interface {
	ObserveValidation(errors, warnings int)
	SessionStarted()
}

type nopRecorder struct{}

func (nopRecorder) ObserveValidation(int, int) {}
func (nopRecorder) SessionStarted()            {}

// Option configures a Session.
type Option func(*Session)

// WithHome sets the path "~" and a bare cd resolve to.
func WithHome(path string) Option {
	return func(s *Session) { s.home = path }
}

// WithLimits caps history entries and buffered output lines. Values below 1
// keep the defaults.
func WithLimits(historySize, maxOutputLines int) Option {
	return func(s *Session) {
		if historySize > 0 {
			s.historySize = historySize
		}
		if maxOutputLines > 0 {
			s.maxLines = maxOutputLines
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithClock sets the clock used to timestamp echo and validator lines.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// Session is one visitor's shell. It is not safe for concurrent use.
type Session struct {
	id       string
	root     *vfs.Node
	home     string
	fs       *vfs.FileSystem
	executor *command.Executor
	history  *History
	buffer   []output.Line
	closed   bool

	historySize int
	maxLines    int
	logger      *zap.Logger
	recorder    Recorder
	clock       func() time.Time
}

// Outcome describes what one submitted line did.
type Outcome struct {
	Lines      []output.Line // every line produced, echo first
	Result     output.Result
	Validation command.Validation
	Cleared    bool
	Exit       bool
}

// New starts a session over root with the cursor at "/".
func New(root *vfs.Node, executor *command.Executor, opts ...Option) (*Session, error) {
	s := &Session{
		root:        root,
		home:        vfs.RootPath,
		executor:    executor,
		historySize: defaultHistorySize,
		maxLines:    defaultMaxOutputLines,
		logger:      zap.NewNop(),
		recorder:    nopRecorder{},
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	fs, err := vfs.New(root, vfs.WithHome(s.home))
	if err != nil {
		return nil, err
	}
	s.fs = fs
	s.history = NewHistory(s.historySize)
	s.begin("session started")
	return s, nil
}

func (s *Session) begin(msg string) {
	s.id = uuid.NewString()
	s.recorder.SessionStarted()
	s.logger.Info(msg, zap.String("session_id", s.id), zap.String("home", s.home))
}

// ID identifies the current run of the session; Restart assigns a new one.
func (s *Session) ID() string { return s.id }

// FileSystem exposes the session's file system.
func (s *Session) FileSystem() *vfs.FileSystem { return s.fs }

// History exposes the session's history.
func (s *Session) History() *History { return s.history }

// Closed reports whether exit or gui has run.
func (s *Session) Closed() bool { return s.closed }

// Lines returns a copy of the output buffer.
func (s *Session) Lines() []output.Line {
	lines := make([]output.Line, len(s.buffer))
	copy(lines, s.buffer)
	return lines
}

// Prompt renders "user@host:<dir>$ " for the current directory.
func (s *Session) Prompt() string {
	id := s.executor.Identity()
	return id.User + "@" + id.Host + ":" + s.fs.DisplayPath(s.fs.CurrentDirectory()) + "$ "
}

// Submit runs one line. The validator and the executor both run; validator
// findings are reported ahead of the command's own output.
func (s *Session) Submit(raw string) Outcome {
	now := s.clock()
	if strings.TrimSpace(raw) != "" {
		s.history.Add(raw)
	}
	s.history.ResetCursor()

	lines := []output.Line{output.NewLine(output.KindCommand, s.Prompt()+raw, now, nil)}

	parsed := parser.Parse(raw)
	validation := command.Validate(parsed)
	for _, msg := range validation.Errors {
		lines = append(lines, output.NewLine(output.KindError, msg, now, validatorMeta()))
	}
	for _, msg := range validation.Warnings {
		lines = append(lines, output.NewLine(output.KindInfo, msg, now, validatorMeta()))
	}
	s.recorder.ObserveValidation(len(validation.Errors), len(validation.Warnings))

	result := s.executor.Execute(parsed, s.fs)
	lines = append(lines, result.Output...)

	out := Outcome{Lines: lines, Result: result, Validation: validation}
	if result.HasAction(output.ActionClear) {
		s.Clear()
		out.Cleared = true
	} else {
		s.append(lines)
	}
	if result.HasAction(output.ActionExit) {
		s.closed = true
		out.Exit = true
		s.logger.Info("session closed", zap.String("session_id", s.id))
	}
	return out
}

// Clear empties the output buffer.
func (s *Session) Clear() {
	s.buffer = s.buffer[:0]
}

// Restart discards the cursor, cached content and output and starts over under a
// new id. History is kept.
func (s *Session) Restart() {
	s.fs.Reset()
	s.buffer = nil
	s.closed = false
	s.history.ResetCursor()
	s.begin("session restarted")
}

func (s *Session) append(lines []output.Line) {
	s.buffer = append(s.buffer, lines...)
	if over := len(s.buffer) - s.maxLines; over > 0 {
		s.buffer = append(s.buffer[:0:0], s.buffer[over:]...)
	}
}

func validatorMeta() map[string]any {
	return map[string]any{output.MetaSource: output.SourceValidator}
}
