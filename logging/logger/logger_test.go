package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ncobase/sqlpage/ctxutil"
	"github.com/ncobase/sqlpage/logging/logger/config"
	"github.com/sirupsen/logrus"
)

func newBufferLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	l := NewLogger()
	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	return l, buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", lines[len(lines)-1], err)
	}
	return entry
}

func TestKeyValueFields(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.SetVersion("1.2.3")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-abc")
	l.Info(ctx, "page fetched", "page_num", 2, "error", errors.New("boom"), "dangling")

	entry := lastEntry(t, buf)
	if entry["msg"] != "page fetched" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["trace_id"] != "trace-abc" {
		t.Errorf("trace_id = %v", entry["trace_id"])
	}
	if entry[VersionKey] != "1.2.3" {
		t.Errorf("version = %v", entry[VersionKey])
	}
	if entry["page_num"] != float64(2) {
		t.Errorf("page_num = %v", entry["page_num"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["extra"] != "dangling" {
		t.Errorf("extra = %v", entry["extra"])
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.SetLevel(logrus.WarnLevel)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	l.Warn(context.Background(), "shown")
	if entry := lastEntry(t, buf); entry["level"] != "warning" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestDesensitizedFields(t *testing.T) {
	l, buf := newBufferLogger(t)

	l.Info(context.Background(), "connecting", "dsn", "postgres://user:secret@db/app", "table", "events")

	entry := lastEntry(t, buf)
	if entry["dsn"] != "******" {
		t.Errorf("dsn = %v, want masked", entry["dsn"])
	}
	if entry["table"] != "events" {
		t.Errorf("table = %v", entry["table"])
	}
}

func TestDesensitizerDisabled(t *testing.T) {
	d := NewDesensitizer(&config.Desensitization{Enabled: false})
	fields := logrus.Fields{"password": "p"}
	if got := d.DesensitizeFields(fields); got["password"] != "p" {
		t.Errorf("password = %v", got["password"])
	}
}

func TestDesensitizerPrefix(t *testing.T) {
	d := NewDesensitizer(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"API_KEY"},
		PreservePrefix:  3,
		MaskChar:        "#",
		FixedMaskLength: 4,
	})
	got := d.DesensitizeFields(logrus.Fields{"api_key": "abcdef", "name": "x"})
	if got["api_key"] != "abc####" {
		t.Errorf("api_key = %v", got["api_key"])
	}
	if got["name"] != "x" {
		t.Errorf("name = %v", got["name"])
	}
}

func TestInitTextFormat(t *testing.T) {
	l := NewLogger()
	cleanup, err := l.Init(&config.Config{Level: int(logrus.InfoLevel), Format: "text", Output: "stdout", Name: "sqlpage-dev"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer cleanup()

	if _, ok := l.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.TextFormatter", l.Formatter)
	}
	if l.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v", l.GetLevel())
	}

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.Info(context.Background(), "ready")
	if !strings.Contains(buf.String(), "app=sqlpage-dev") {
		t.Errorf("output %q missing app field", buf.String())
	}
}

func TestInitFileOutput(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger()
	cleanup, err := l.Init(&config.Config{Output: "file", OutputFile: filepath.Join(dir, "logs", "sqlpage.log")})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	l.Error(context.Background(), "source failed", "op", "count")
	cleanup()

	name := filepath.Join(dir, "logs", "sqlpage."+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"op":"count"`) {
		t.Errorf("log file content = %q", data)
	}
}

func TestInitNilConfig(t *testing.T) {
	cleanup, err := NewLogger().Init(nil)
	if err != nil {
		t.Fatalf("Init(nil) error = %v", err)
	}
	cleanup()
}
