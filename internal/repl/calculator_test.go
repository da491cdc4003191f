package repl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession drives a full REPL session with scripted input and returns the
// captured output. Input ends after the last line, so sessions without an
// explicit exit terminate on end-of-input.
func runSession(t *testing.T, lines ...string) (string, *Calculator) {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	c := New("Calculator> ", in, &out)

	err := c.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, c.Running())

	return out.String(), c
}

func TestRun_SuccessfulCalculation(t *testing.T) {
	out, c := runSession(t, "5 + 3", "exit")

	assert.Contains(t, out, "Result: 5.0 + 3.0 = 8.0")
	assert.Equal(t, 1, c.History().Count())

	last, ok := c.History().Last()
	require.True(t, ok)
	result, err := last.Result()
	require.NoError(t, err)
	assert.Equal(t, 8.0, result)
}

func TestRun_WordAlias(t *testing.T) {
	out, c := runSession(t, "5 add 3", "10 DIV 4", "exit")

	assert.Contains(t, out, "Result: 5.0 + 3.0 = 8.0")
	assert.Contains(t, out, "Result: 10.0 / 4.0 = 2.5")
	assert.Equal(t, 2, c.History().Count())
}

func TestRun_DivisionByZero(t *testing.T) {
	out, c := runSession(t, "5 / 0", "exit")

	assert.Contains(t, out, "Math error: cannot divide by zero")
	assert.NotContains(t, out, "Result:")
	assert.Equal(t, 0, c.History().Count(), "failed calculation must not reach history")
}

func TestRun_UnsupportedOperation(t *testing.T) {
	out, c := runSession(t, "5 %% 3", "exit")

	assert.Contains(t, out, "Unsupported operation: %%")
	assert.Contains(t, out, "Available:")
	assert.Contains(t, out, "addition")
	assert.Contains(t, out, "division")
	assert.Equal(t, 0, c.History().Count())
}

func TestRun_InvalidNumber(t *testing.T) {
	out, c := runSession(t, "abc + 3", "5 + x", "exit")

	assert.Contains(t, out, "'abc' is not a valid number")
	assert.Contains(t, out, "'x' is not a valid number")
	assert.Contains(t, out, "Please use format: <number> <operation> <number>")
	assert.Equal(t, 0, c.History().Count())
}

func TestRun_WrongTokenCount(t *testing.T) {
	out, c := runSession(t, "5 +", "5 + 3 + 2", "exit")

	assert.Contains(t, out, "Please provide exactly three parts: number operation number")
	assert.Equal(t, 0, c.History().Count())
}

func TestRun_RejectsInfinityLiterals(t *testing.T) {
	out, c := runSession(t, "inf + 1", "1 + NaN", "exit")

	assert.Contains(t, out, "'inf' is not a valid number")
	assert.Contains(t, out, "'NaN' is not a valid number")
	assert.Equal(t, 0, c.History().Count())
}

func TestRun_InfiniteResultIsDisplayed(t *testing.T) {
	// Only user-entered infinities are rejected; overflowing results are
	// displayed and recorded like any other calculation.
	out, c := runSession(t, "1e308 * 10", "exit")

	assert.Contains(t, out, "= +Inf")
	assert.Equal(t, 1, c.History().Count())
}

func TestRun_BlankLinesIgnored(t *testing.T) {
	out, c := runSession(t, "", "   ", "\t", "exit")

	assert.NotContains(t, out, "Input error")
	assert.Equal(t, 0, c.History().Count())
}

func TestRun_HistoryClearSequence(t *testing.T) {
	out, c := runSession(t, "5 + 3", "history", "clear", "history", "exit")

	assert.Contains(t, out, "CALCULATION HISTORY")
	assert.Contains(t, out, " 1. 5.0 + 3.0 = 8.0")
	assert.Contains(t, out, "Calculation history cleared.")
	assert.Contains(t, out, "No calculations in history.")
	assert.Contains(t, out, "Goodbye!")

	cleared := strings.Index(out, "Calculation history cleared.")
	empty := strings.Index(out, "No calculations in history.")
	assert.Greater(t, empty, cleared, "second history must print after clear")
	assert.Equal(t, 0, c.History().Count())
}

func TestRun_Help(t *testing.T) {
	out, _ := runSession(t, "help", "exit")

	assert.Contains(t, out, "CALCULATOR HELP")
	assert.Contains(t, out, "Addition: +, add, addition")
	assert.Contains(t, out, "exit     - Exit the calculator")
}

func TestRun_CommandsAreCaseInsensitive(t *testing.T) {
	out, _ := runSession(t, "HELP", "QUIT")

	assert.Contains(t, out, "CALCULATOR HELP")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_WelcomeBanner(t *testing.T) {
	out, _ := runSession(t, "exit")

	assert.Contains(t, out, "Professional Calculator Application")
	assert.Contains(t, out, "Type 'help' for instructions, 'exit' to quit")
}

func TestRun_EndOfInput(t *testing.T) {
	// No exit command: the session ends when input runs out.
	out, _ := runSession(t, "2 * 3")

	assert.Contains(t, out, "Result: 2.0 * 3.0 = 6.0")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_ErrorsDoNotStopTheLoop(t *testing.T) {
	out, c := runSession(t, "bogus", "5 / 0", "nonsense line here", "4 - 1", "exit")

	assert.Contains(t, out, "Result: 4.0 - 1.0 = 3.0")
	assert.Equal(t, 1, c.History().Count())
}

func TestRun_ContextCancellation(t *testing.T) {
	// A blocked read plus cancellation must end the session gracefully.
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	c := New("Calculator> ", pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}

	assert.Contains(t, out.String(), "Goodbye!")
	assert.False(t, c.Running())
}
