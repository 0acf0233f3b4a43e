package loggers

import (
	"bytes"
	"testing"

	jww "github.com/spf13/jwalterweatherman"
	"github.com/stretchr/testify/require"
)

func TestLoggerErrorCount(t *testing.T) {
	l, _ := NewBufferLogger()

	l.Warnf("a warning")
	l.Errorf("first %s", "error")
	l.Errorf("second error")

	require.Equal(t, 2, l.ErrorCount())
}

func TestLoggerThreshold(t *testing.T) {
	var b bytes.Buffer
	l := NewBasicLoggerForWriter(jww.LevelWarn, &b)

	l.Debugf("hidden")
	l.Process("newSite", "hidden too")
	l.Warnf("shown")

	require.NotContains(t, b.String(), "hidden")
	require.Contains(t, b.String(), "shown")
}

func TestLoggerProcess(t *testing.T) {
	l, b := NewBufferLogger()

	l.Process("newSite", "normalize sidebar")

	require.Contains(t, b.String(), "newSite: normalize sidebar")
	require.Same(t, b, l.Out())
}
