package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAnsiToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "<pre>hello</pre>"},
		{"colored", "\033[32minfo\033[0m done", `<pre><span style="color: green;">info</span> done</pre>`},
		{"unclosed", "\033[31merr", `<pre><span style="color: red;">err</span></pre>`},
		{"escaped", "a<b>&c", "<pre>a&lt;b&gt;&amp;c</pre>"},
		{"unknown code", "\033[35mx", "<pre>x</pre>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansiToHTML(tt.input); got != tt.want {
				t.Errorf("ansiToHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBufferedLoggerHTML(t *testing.T) {
	l := New()
	l.Debug("hidden")
	l.Info("[s] sampler ready", zap.Int("samples", 1))

	html := l.HTML()
	if strings.Contains(html, "hidden") {
		t.Errorf("debug record leaked into buffered log: %s", html)
	}
	if !strings.Contains(html, "[s] sampler ready") {
		t.Errorf("info record missing: %s", html)
	}

	l.ClearLogs()
	if got := l.HTML(); got != "<pre></pre>" {
		t.Errorf("HTML after ClearLogs = %q", got)
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, zapcore.DebugLevel)
	l.Debug("[cli] debug line")

	if !strings.Contains(buf.String(), "[cli] debug line") {
		t.Errorf("console output = %q", buf.String())
	}
	if l.HTML() != "" {
		t.Error("console logger should not render HTML")
	}
}

func TestNewFromCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromCore(core)

	l.Debug("dropped")
	l.Warn("kept", zap.String("k", "v"))

	if logs.Len() != 1 {
		t.Fatalf("observed %d entries, want 1", logs.Len())
	}
	if !l.Enabled(zapcore.InfoLevel) || l.Enabled(zapcore.DebugLevel) {
		t.Error("Enabled does not follow the core level")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	if l.Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger reports enabled levels")
	}
}
