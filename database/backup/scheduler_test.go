package backup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

type recordingRunner struct {
	mu     sync.Mutex
	calls  []dumpCall
	runErr error
	onRun  func()
}

type dumpCall struct {
	name string
	args []string
	env  map[string]string
}

func (r *recordingRunner) Run(_ context.Context, name string, args []string, envVars map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := dumpCall{name: name, args: append([]string(nil), args...), env: map[string]string{}}

	for key, value := range envVars {
		call.env[key] = value
	}

	r.calls = append(r.calls, call)

	if r.onRun != nil {
		r.onRun()
	}

	return r.runErr
}

func backupEnv(dir, schedule string, maxKeep int) *env.Environment {
	return &env.Environment{
		DB: env.DBEnvironment{
			Host:         "db.example.com",
			Port:         5432,
			UserName:     "blogger",
			UserPassword: "sekret",
			DatabaseName: "blog",
			SSLMode:      "require",
		},
		Backup: env.BackupEnvironment{Schedule: schedule, Dir: dir, MaxKeep: maxKeep},
	}
}

func quietScheduler(t *testing.T, environment *env.Environment, opts ...Option) *Scheduler {
	t.Helper()

	opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	scheduler, err := NewScheduler(environment, opts...)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	return scheduler
}

func TestNewSchedulerValidatesInput(t *testing.T) {
	if _, err := NewScheduler(nil); err == nil {
		t.Fatalf("expected an error for a nil environment")
	}

	if _, err := NewScheduler(backupEnv(t.TempDir(), "not-a-cron", 0)); err == nil {
		t.Fatalf("expected an error for a bad cron expression")
	}
}

func TestSchedulerRunInvokesCommandRunner(t *testing.T) {
	dir := t.TempDir()
	runner := &recordingRunner{}
	frozen := func() time.Time { return time.Date(2024, time.May, 1, 3, 4, 5, 0, time.UTC) }

	scheduler := quietScheduler(t, backupEnv(dir, "@daily", 0), WithCommandRunner(runner), WithNow(frozen))

	if err := scheduler.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected a single dump, got %d", len(runner.calls))
	}

	call := runner.calls[0]

	if call.name != "pg_dump" {
		t.Fatalf("unexpected command %q", call.name)
	}

	want := []string{
		"--host", "db.example.com",
		"--port", "5432",
		"--username", "blogger",
		"--file", filepath.Join(dir, "backup-20240501T030405Z.sql"),
		"--no-owner",
		"--no-privileges",
		"blog",
	}

	if !reflect.DeepEqual(call.args, want) {
		t.Fatalf("unexpected args\n got %v\nwant %v", call.args, want)
	}

	if call.env["PGPASSWORD"] != "sekret" || call.env["PGSSLMODE"] != "require" {
		t.Fatalf("unexpected command env %v", call.env)
	}
}

func TestSchedulerRunPrunesOldBackups(t *testing.T) {
	dir := t.TempDir()

	stale := []string{
		"backup-20240101T000000Z.sql",
		"backup-20240102T000000Z.sql",
		"backup-20240103T000000Z.sql",
	}

	for _, name := range stale {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("-- dump"), 0o644); err != nil {
			t.Fatalf("seed stale backup: %v", err)
		}
	}

	frozen := func() time.Time { return time.Date(2024, time.May, 1, 3, 4, 5, 0, time.UTC) }
	scheduler := quietScheduler(t, backupEnv(dir, "@daily", 2), WithCommandRunner(&recordingRunner{}), WithNow(frozen))

	if err := scheduler.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read backup dir: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 surviving backups, got %d", len(entries))
	}

	// The two oldest seeds must be gone; the newest seed and the fresh dump
	// survive.
	for _, entry := range entries {
		if entry.Name() == stale[0] || entry.Name() == stale[1] {
			t.Fatalf("stale backup %s survived the prune", entry.Name())
		}
	}
}

func TestSchedulerRunPropagatesErrors(t *testing.T) {
	runner := &recordingRunner{runErr: errors.New("boom")}
	scheduler := quietScheduler(t, backupEnv(t.TempDir(), "@weekly", 0), WithCommandRunner(runner))

	if err := scheduler.Run(context.Background()); err == nil {
		t.Fatalf("expected the runner failure to surface")
	}
}

func TestSchedulerStartSchedulesJob(t *testing.T) {
	ran := make(chan struct{}, 1)

	runner := &recordingRunner{onRun: func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}}

	scheduler := quietScheduler(
		t,
		backupEnv(t.TempDir(), "@every 1s", 0),
		WithCommandRunner(runner),
		WithCron(cron.New(cron.WithParser(scheduleParser))),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the job to fire within two seconds")
	}

	cancel()
	scheduler.Stop()
}

func TestSchedulerStartReturnsErrorWhenAlreadyStarted(t *testing.T) {
	scheduler := quietScheduler(t, backupEnv(t.TempDir(), "@daily", 0), WithCommandRunner(&recordingRunner{}))

	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	t.Cleanup(scheduler.Stop)

	if err := scheduler.Start(context.Background()); err == nil {
		t.Fatalf("expected the second start to fail")
	}
}

func TestWithJobTimeoutOption(t *testing.T) {
	scheduler := quietScheduler(t, backupEnv(t.TempDir(), "@daily", 0), WithJobTimeout(time.Second))

	if scheduler.jobTimeout != time.Second {
		t.Fatalf("expected a one second timeout, got %v", scheduler.jobTimeout)
	}
}

func TestFlattenEnv(t *testing.T) {
	if values := flattenEnv(nil); values != nil {
		t.Fatalf("expected nil for an empty map, got %v", values)
	}

	values := flattenEnv(map[string]string{"A": "1", "B": "2"})

	if len(values) != 2 {
		t.Fatalf("expected two entries, got %v", values)
	}

	seen := map[string]bool{}
	for _, value := range values {
		seen[value] = true
	}

	if !seen["A=1"] || !seen["B=2"] {
		t.Fatalf("missing formatted entries in %v", values)
	}
}
