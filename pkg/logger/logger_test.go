package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, WARNING, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, INFO, level)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}

func TestLevelGate(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLoggerWithWriter(WARNING, buf)

	l.Infof("hidden %d", 1)
	require.Empty(t, buf.String())

	l.Errorf("shown %d", 2)
	require.Contains(t, buf.String(), "ERROR shown 2")
}
