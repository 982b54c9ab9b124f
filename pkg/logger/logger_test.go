package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, minLevel Level) writerLogger {
	return writerLogger{
		w:     buf,
		min:   minLevel,
		clock: func() time.Time { return time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestWriterLoggerFormatsObject(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)

	l.Info("planilha carregada", map[string]any{"rows": 3})

	assert.Equal(t, "2024-09-01T12:00:00Z INFO  planilha carregada obj={\"rows\":3}\n", buf.String())
}

func TestWriterLoggerDropsBelowMinimum(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelWarn)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)
	l.Error("shown too", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN  shown")
	assert.Contains(t, lines[1], "ERROR shown too")
}

func TestWriterLoggerFallsBackForUnmarshalable(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)

	l.Error("bad obj", map[string]any{"fn": func() {}})

	assert.Contains(t, buf.String(), "ERROR bad obj obj=")
}

func TestDebugHelperRespectsEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)

	Debug(false, l, "off", nil)
	assert.Empty(t, buf.String())

	Debug(true, l, "on", nil)
	assert.Contains(t, buf.String(), "DEBUG on")

	Debug(true, nil, "nil logger", nil)
	Info(nil, "nil logger", nil)
}
