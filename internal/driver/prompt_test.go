package driver

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Request
	}{
		{
			"all answers",
			"a.txt\nb.txt\nmultiply\nout.txt\n",
			Request{Left: "a.txt", Right: "b.txt", Operation: "multiply", Output: "out.txt"},
		},
		{
			"empty output answer",
			" a.txt \nb.txt\nadd\n\n",
			Request{Left: "a.txt", Right: "b.txt", Operation: "add"},
		},
		{
			"eof before output answer",
			"a.txt\nb.txt\nsubtract",
			Request{Left: "a.txt", Right: "b.txt", Operation: "subtract"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Prompt(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, promptLeft+promptRight+promptOperation+promptOutput, out.String())
		})
	}
}

func TestPrompt_EarlyEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := Prompt(strings.NewReader("a.txt\n"), &out)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, promptLeft+promptRight, out.String())
}
