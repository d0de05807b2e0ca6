package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "sortscope", cmd.Use)
	assert.Contains(t, cmd.Long, "read, write and swap")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"record", "replay", "trace", "runs", "play", "methods", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestRecordCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	recordCmd, _, err := cmd.Find([]string{"record"})
	require.NoError(t, err)

	for _, name := range []string{"db", "method", "length", "seed", "start", "shuffle", "sweep", "skip-sorted"} {
		assert.NotNil(t, recordCmd.Flags().Lookup(name), "missing --%s", name)
	}
	assert.Equal(t, "[quick]", recordCmd.Flags().Lookup("method").DefValue)
}

func TestPlayCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	playCmd, _, err := cmd.Find([]string{"play"})
	require.NoError(t, err)

	rateFlag := playCmd.Flags().Lookup("rate")
	require.NotNil(t, rateFlag)
	assert.Equal(t, "50", rateFlag.DefValue)

	heightFlag := playCmd.Flags().Lookup("height")
	require.NotNil(t, heightFlag)
	assert.Equal(t, "16", heightFlag.DefValue)
}

func TestTraceCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	traceCmd, _, err := cmd.Find([]string{"trace"})
	require.NoError(t, err)

	toFlag := traceCmd.Flags().Lookup("to")
	require.NotNil(t, toFlag)
	assert.Equal(t, "-1", toFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	_, err := execute(t, cmd, "--format", "xml", "methods")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoggerLevel(t *testing.T) {
	buf := &bytes.Buffer{}

	quiet := (&RootOptions{}).Logger(buf)
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	loud := (&RootOptions{Verbose: true}).Logger(buf)
	loud.Debug("shown", "key", 1)
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "key=1")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := WrapExitError(ExitFailure, "replay failed", errors.New("mismatch"))
	assert.Equal(t, "replay failed: mismatch", wrapped.Error())
	assert.Equal(t, "mismatch", errors.Unwrap(wrapped).Error())
}
