package llogs

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

func TestMakeFilesLogsWritesToDatedFile(t *testing.T) {
	dir := t.TempDir()

	e := &env.Environment{
		Logs: env.LogsEnvironment{Dir: dir + "/log-%s.txt", DateFormat: "2006"},
	}

	driver, err := MakeFilesLogs(e)
	if err != nil {
		t.Fatalf("make logs: %v", err)
	}

	fl := driver.(FilesLogs)

	if !strings.HasPrefix(fl.path, dir) {
		t.Fatalf("expected the log file under %s, got %s", dir, fl.path)
	}

	slog.Info("hello from the test")

	if !fl.Close() {
		t.Fatalf("close failed")
	}

	raw, err := os.ReadFile(fl.path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	if !strings.Contains(string(raw), "hello from the test") {
		t.Fatalf("expected the log line in %s", fl.path)
	}
}

func TestDefaultPathUsesDateFormat(t *testing.T) {
	e := &env.Environment{
		Logs: env.LogsEnvironment{Dir: "foo-%s", DateFormat: "2006"},
	}

	path := FilesLogs{env: e}.DefaultPath()

	if !strings.HasPrefix(path, "foo-") || len(path) != len("foo-2006") {
		t.Fatalf("unexpected path %s", path)
	}
}
