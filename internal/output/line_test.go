package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLine_Action(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("no metadata", func(t *testing.T) {
		line := NewLine(KindOutput, "hello", ts, nil)
		assert.Equal(t, "", line.Action())
		assert.Nil(t, line.Metadata)
	})

	t.Run("clear action", func(t *testing.T) {
		line := NewLine(KindInfo, "", ts, map[string]any{MetaAction: ActionClear})
		assert.Equal(t, ActionClear, line.Action())
	})

	t.Run("non string action is ignored", func(t *testing.T) {
		line := NewLine(KindInfo, "", ts, map[string]any{MetaAction: 42})
		assert.Equal(t, "", line.Action())
	})
}

func TestResult_HasAction(t *testing.T) {
	ts := time.Now()
	res := Result{
		Output: []Line{
			NewLine(KindOutput, "bye", ts, nil),
			NewLine(KindInfo, "", ts, map[string]any{MetaAction: ActionExit}),
		},
	}

	assert.True(t, res.OK())
	assert.True(t, res.HasAction(ActionExit))
	assert.False(t, res.HasAction(ActionClear))

	res.ExitCode = ExitCommandNotFound
	assert.False(t, res.OK())
}
