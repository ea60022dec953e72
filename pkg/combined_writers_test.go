package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	initMessage := "already-here"
	sb1.WriteString(initMessage)
	sb2 := &strings.Builder{}

	cw := NewCombinedWriter(sb1, sb2)
	require.NotNil(t, cw)
	assert.Equal(t, 2, cw.Len())

	msg1 := "a message"
	msg2 := "another message here"
	n, err := cw.Write([]byte(msg1))
	require.NoError(t, err)
	assert.Equal(t, len(msg1), n)
	n, err = cw.Write([]byte(msg2))
	require.NoError(t, err)
	assert.Equal(t, len(msg2), n)

	assert.Equal(t, initMessage+msg1+msg2, sb1.String())
	assert.Equal(t, msg1+msg2, sb2.String())
}

func TestCombinedWriter_Write_WithError(t *testing.T) {
	fw := &faultyWriter{}
	sb := &strings.Builder{}

	cw := NewCombinedWriter(fw, sb)
	msg1 := "a message"
	n, err := cw.Write([]byte(msg1))
	assert.EqualError(t, err, "disk full")

	// written only to string builder
	assert.Equal(t, len(msg1), n)
	assert.Equal(t, msg1, sb.String())
}

func TestCombinedWriter_Write_AllFail(t *testing.T) {
	cw := NewCombinedWriter(&faultyWriter{}, &faultyWriter{})
	n, err := cw.Write([]byte("lost"))
	assert.Equal(t, 0, n)
	assert.Len(t, multierr.Errors(err), 2)
}

type faultyWriter struct{}

func (fw *faultyWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("disk full")
}
