package session

import (
	"testing"
	"time"

	"github.com/Cyclone1070/foliosh/internal/command"
	"github.com/Cyclone1070/foliosh/internal/content"
	"github.com/Cyclone1070/foliosh/internal/output"
	"github.com/Cyclone1070/foliosh/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

type fakeRecorder struct {
	errors, warnings, sessions int
}

func (r *fakeRecorder) ObserveValidation(errors, warnings int) {
	r.errors += errors
	r.warnings += warnings
}

func (r *fakeRecorder) SessionStarted() { r.sessions++ }

func testRoot(t *testing.T) *vfs.Node {
	t.Helper()
	root, err := content.BuildTree(&content.Profile{
		Name:       "Sam Doe",
		About:      "Hi.",
		Experience: []content.Job{{Company: "Acme"}, {Company: "Globex"}},
		Projects:   []content.Project{{Name: "Shell"}, {Name: "Shelf"}},
		Skills:     []content.SkillGroup{{Category: "languages", Items: []string{"Go"}}},
	})
	require.NoError(t, err)
	return root
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	exec := command.New(command.Options{
		Identity: command.Identity{User: "guest", Host: "folio"},
		Clock:    func() time.Time { return fixedNow },
	})
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	s, err := New(testRoot(t), exec, opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, WithRecorder(rec))

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "/", s.FileSystem().CurrentDirectory())
	assert.Empty(t, s.Lines())
	assert.False(t, s.Closed())
	assert.Equal(t, 1, rec.sessions)

	_, err := New(vfs.NewFile("x", ""), command.New(command.Options{}))
	assert.ErrorIs(t, err, vfs.ErrNilRoot)
}

func TestPrompt(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "guest@folio:~$ ", s.Prompt())

	s.Submit("cd experience")
	assert.Equal(t, "guest@folio:~/experience$ ", s.Prompt())

	t.Run("custom home", func(t *testing.T) {
		s := newTestSession(t, WithHome("/projects"))
		assert.Equal(t, "guest@folio:/$ ", s.Prompt())
		s.Submit("cd")
		assert.Equal(t, "/projects", s.FileSystem().CurrentDirectory())
		assert.Equal(t, "guest@folio:~$ ", s.Prompt())
	})
}

func TestSubmit_EchoThenOutput(t *testing.T) {
	s := newTestSession(t)
	out := s.Submit(`echo "hello world"`)

	require.Len(t, out.Lines, 2)
	assert.Equal(t, output.KindCommand, out.Lines[0].Kind)
	assert.Equal(t, `guest@folio:~$ echo "hello world"`, out.Lines[0].Text)
	assert.Equal(t, "hello world", out.Lines[1].Text)
	assert.Equal(t, 0, out.Result.ExitCode)
	assert.Equal(t, out.Lines, s.Lines())
}

func TestSubmit_ReportsValidatorAndExecutor(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, WithRecorder(rec))

	out := s.Submit("cd experience nowhere")
	assert.False(t, out.Validation.Valid)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, output.KindError, out.Lines[1].Kind)
	assert.Equal(t, output.SourceValidator, out.Lines[1].Metadata[output.MetaSource])
	// the executor still ran
	assert.Equal(t, "/experience", s.FileSystem().CurrentDirectory())

	out = s.Submit("pwd now")
	require.Len(t, out.Lines, 3)
	assert.Equal(t, output.KindInfo, out.Lines[1].Kind)
	assert.Equal(t, "/experience", out.Lines[2].Text)

	out = s.Submit("cat")
	assert.Equal(t, 1, out.Result.ExitCode)
	require.Len(t, out.Lines, 3)
	assert.Equal(t, output.SourceValidator, out.Lines[1].Metadata[output.MetaSource])
	assert.Nil(t, out.Lines[2].Metadata)

	assert.Equal(t, 2, rec.errors)
	assert.Equal(t, 1, rec.warnings)
}

func TestSubmit_Clear(t *testing.T) {
	s := newTestSession(t)
	s.Submit("pwd")
	s.Submit("whoami")
	require.NotEmpty(t, s.Lines())

	out := s.Submit("clear")
	assert.True(t, out.Cleared)
	assert.Empty(t, s.Lines())

	s.Submit("pwd")
	assert.Len(t, s.Lines(), 2)
}

func TestSubmit_Exit(t *testing.T) {
	for _, cmd := range []string{"exit", "gui"} {
		t.Run(cmd, func(t *testing.T) {
			s := newTestSession(t)
			s.Submit("cd projects")
			out := s.Submit(cmd)
			assert.True(t, out.Exit)
			assert.True(t, s.Closed())
			assert.Equal(t, "/projects", s.FileSystem().CurrentDirectory())
		})
	}
}

func TestSubmit_BufferCapped(t *testing.T) {
	s := newTestSession(t, WithLimits(0, 5))
	for i := 0; i < 4; i++ {
		s.Submit("pwd")
	}
	lines := s.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, "/", lines[4].Text)
	assert.Equal(t, output.KindOutput, lines[0].Kind)
}

func TestSubmit_RecordsHistory(t *testing.T) {
	s := newTestSession(t)
	s.Submit("ls")
	s.Submit("   ")
	s.Submit("pwd")

	assert.Equal(t, []string{"ls", "pwd"}, s.History().Entries())
}

func TestRestart(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, WithRecorder(rec))
	first := s.ID()

	s.Submit("cd experience")
	s.Submit("cat acme.txt")
	s.Submit("exit")
	require.True(t, s.Closed())

	s.Restart()
	assert.NotEqual(t, first, s.ID())
	assert.Equal(t, "/", s.FileSystem().CurrentDirectory())
	assert.Empty(t, s.Lines())
	assert.False(t, s.Closed())
	assert.Equal(t, 3, s.History().Len())
	assert.Equal(t, 2, rec.sessions)
}

func TestComplete(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		name       string
		line       string
		want       string
		candidates []string
	}{
		{"unique command", "pw", "pwd ", []string{"pwd"}},
		{"ambiguous command", "c", "c", []string{"cd", "cat", "clear", "contact"}},
		{"shared prefix", "ex", "ex", []string{"experience", "exit"}},
		{"no match", "zz", "zz", nil},
		{"directory", "cd exp", "cd experience/", []string{"experience/"}},
		{"file in directory", "cat experience/ac", "cat experience/acme.txt ", []string{"experience/acme.txt"}},
		{"common prefix of files", "cat projects/s", "cat projects/shel", []string{"projects/shelf.md", "projects/shell.md"}},
		{"missing directory", "ls nope/x", "ls nope/x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, candidates := s.Complete(tt.line)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.candidates, candidates)
		})
	}
}
