package runner

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/rfcli/packages/core/env"
)

func TestCommand_Commandline(t *testing.T) {
	t.Run("default executable", func(t *testing.T) {
		c := &Command{
			Listeners: []string{"crl.threadverify.ThreadListener"},
			Options:   []string{"-d", "out"},
			Args:      []string{"tests"},
		}
		assert.Equal(t, []string{
			"robot", "--listener", "crl.threadverify.ThreadListener", "-d", "out", "tests",
		}, c.Commandline())
	})

	t.Run("custom executable without listeners", func(t *testing.T) {
		c := &Command{Executable: []string{"python3", "-m", "robot"}, Args: []string{"suite.robot"}}
		assert.Equal(t, []string{"python3", "-m", "robot", "suite.robot"}, c.Commandline())
	})
}

func TestCommand_String(t *testing.T) {
	c := &Command{
		Args:    []string{"tests"},
		Env:     []env.Var{{Name: "PYTHONPATH", Value: "/work:/work/libraries"}},
		BaseEnv: []string{"HOME=/home/u", "PYTHONPATH=/opt/lib"},
	}

	assert.Equal(t,
		"export PYTHONPATH=\"/work:/work/libraries:/opt/lib\"\nrobot tests",
		c.String())
}

func TestCommand_Environ(t *testing.T) {
	c := &Command{
		Env:     []env.Var{{Name: "PYTHONPATH", Value: "/work"}},
		BaseEnv: []string{"HOME=/home/u"},
	}
	assert.Equal(t, []string{"HOME=/home/u", "PYTHONPATH=/work"}, c.Environ())

	c.BaseEnv = nil
	t.Setenv("RFCLI_TEST_MARKER", "1")
	assert.Contains(t, c.Environ(), "RFCLI_TEST_MARKER=1")
}

func TestCommand_Execute(t *testing.T) {
	t.Run("passes everything to the runner", func(t *testing.T) {
		mock := NewMockRunner()
		mock.Status = 3
		c := &Command{
			Dir:     "/work",
			Options: []string{"--nostatusrc"},
			Args:    []string{"tests"},
			BaseEnv: []string{"A=1"},
		}

		status, err := c.Execute(context.Background(), mock)
		require.NoError(t, err)
		assert.Equal(t, 3, status)

		calls := mock.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, Call{
			Dir:  "/work",
			Name: "robot",
			Args: []string{"--nostatusrc", "tests"},
			Env:  []string{"A=1"},
		}, calls[0])
	})

	t.Run("runner error", func(t *testing.T) {
		mock := NewMockRunner()
		mock.Err = errors.New("boom")

		_, err := (&Command{}).Execute(context.Background(), mock)
		assert.EqualError(t, err, "boom")
	})

	t.Run("nil runner", func(t *testing.T) {
		_, err := (&Command{}).Execute(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestExecRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		status, err := NewExecRunner().Run(ctx, "", "sh", []string{"-c", "exit 0"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, status)
	})

	t.Run("exit status is relayed", func(t *testing.T) {
		status, err := NewExecRunner().Run(ctx, "", "sh", []string{"-c", "exit 3"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, status)
	})

	t.Run("environment is exactly env", func(t *testing.T) {
		t.Setenv("RFCLI_LEAK", "yes")
		script := `test "$FOO" = bar && test -z "$RFCLI_LEAK"`
		status, err := NewExecRunner().Run(ctx, "", "/bin/sh", []string{"-c", script}, []string{"FOO=bar"})
		require.NoError(t, err)
		assert.Equal(t, 0, status)
	})

	t.Run("working directory", func(t *testing.T) {
		dir := t.TempDir()
		status, err := NewExecRunner().Run(ctx, dir, "sh", []string{"-c", "test -d . && touch marker"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, status)
		assert.FileExists(t, dir+"/marker")
	})

	t.Run("missing executable", func(t *testing.T) {
		status, err := NewExecRunner().Run(ctx, "", "rfcli-no-such-robot", nil, nil)
		require.Error(t, err)
		assert.Equal(t, -1, status)

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, "rfcli-no-such-robot", cmdErr.Command)
	})
}
