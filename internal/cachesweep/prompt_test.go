package cachesweep

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_ConsecutiveLines(t *testing.T) {
	var out bytes.Buffer

	prompter := NewLinePrompter(strings.NewReader("2\r\ny\nn\n"), &out)

	for _, want := range []string{"2", "y", "n"} {
		got, err := prompter.Prompt(context.Background(), "> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, "> > > ", out.String())
}

func TestLinePrompter_LastLineWithoutNewline(t *testing.T) {
	prompter := NewLinePrompter(strings.NewReader("3"), io.Discard)

	got, err := prompter.Prompt(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	_, err = prompter.Prompt(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLinePrompter_EmptyLine(t *testing.T) {
	prompter := NewLinePrompter(strings.NewReader("\n"), io.Discard)

	got, err := prompter.Prompt(context.Background(), "> ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	_, err := NewLinePrompter(strings.NewReader("y\n"), &out).Prompt(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
