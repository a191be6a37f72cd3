package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestQuietCopyLeavesParentLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, log.InfoLevel)

	quiet := parent.With()
	quiet.SetLevel(log.WarnLevel)
	quiet.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q at info", buf.String())
	}

	parent.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("parent logger should still log at info")
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Rendered card")

	out := buf.String()
	if !strings.Contains(out, "Rendered card") {
		t.Errorf("progress.done() output = %q, want message", out)
	}
	if !strings.Contains(out, "ms") && !strings.Contains(out, "s)") {
		t.Errorf("progress.done() output = %q, want elapsed time", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestRootCommandAttachesLogger(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"inspect", "--seed", "5"})

	var seen *log.Logger
	inspect, _, err := root.Find([]string{"inspect"})
	if err != nil {
		t.Fatal(err)
	}
	run := inspect.RunE
	inspect.RunE = func(cmd *cobra.Command, args []string) error {
		seen = loggerFromContext(cmd.Context())
		return run(cmd, args)
	}

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if seen != c.Logger {
		t.Error("subcommands should see the CLI logger in their context")
	}
	if !strings.Contains(out.String(), "blemishes") {
		t.Errorf("inspect output = %q", out.String())
	}
}
