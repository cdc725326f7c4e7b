package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	sb1.WriteString("already-here")
	sb2 := &strings.Builder{}

	cw := NewCombinedWriter(sb1, sb2)
	require.Len(t, cw.Writers, 2)

	msg := "a message"
	n, err := cw.Write([]byte(msg))
	require.NoError(t, err)
	assert.Equal(t, len(msg), n)
	assert.Equal(t, "already-here"+msg, sb1.String())
	assert.Equal(t, msg, sb2.String())
}

func TestCombinedWriter_WriteWithFailingWriter(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(failingWriter{}, sb, failingWriter{})

	n, err := cw.Write([]byte("msg"))
	require.Error(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "msg", sb.String())
	assert.Contains(t, err.Error(), "disk full")

	cw = NewCombinedWriter(failingWriter{})
	n, err = cw.Write([]byte("msg"))
	require.Error(t, err)
	assert.Zero(t, n)
}
