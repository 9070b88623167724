package backup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

const (
	dumpTimeLayout    = "20060102T150405Z"
	dumpPrefix        = "backup-"
	dumpSuffix        = ".sql"
	defaultJobTimeout = 5 * time.Minute
)

// Same grammar the env validator accepts, descriptors included.
var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// CommandRunner abstracts exec.CommandContext so backups run in tests without
// a pg_dump binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, env map[string]string) error
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string, extraEnv map[string]string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), flattenEnv(extraEnv)...)

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, string(output))
	}

	return nil
}

// Scheduler dumps the database on a cron cadence and keeps the newest
// Backup.MaxKeep dumps around.
type Scheduler struct {
	cron        *cron.Cron
	env         *env.Environment
	runner      CommandRunner
	logger      *slog.Logger
	now         func() time.Time
	jobTimeout  time.Duration
	started     bool
	startStopMu sync.Mutex
	entryID     cron.EntryID
}

type Option func(*Scheduler)

func WithCommandRunner(runner CommandRunner) Option {
	return func(s *Scheduler) {
		if runner != nil {
			s.runner = runner
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNow pins the timestamp used for dump filenames.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

func NewScheduler(environment *env.Environment, opts ...Option) (*Scheduler, error) {
	if environment == nil {
		return nil, errors.New("environment cannot be nil")
	}

	if _, err := scheduleParser.Parse(environment.Backup.Schedule); err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	scheduler := &Scheduler{
		cron:       cron.New(cron.WithParser(scheduleParser)),
		env:        environment,
		runner:     ExecRunner{},
		logger:     slog.Default(),
		now:        time.Now,
		jobTimeout: defaultJobTimeout,
	}

	for _, opt := range opts {
		opt(scheduler)
	}

	return scheduler, nil
}

// Start registers the dump job and fires up the cron engine. Cancelling ctx
// stops the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	entryID, err := s.cron.AddFunc(s.env.Backup.Schedule, func() { s.runJob(ctx) })
	if err != nil {
		return fmt.Errorf("schedule backup job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.started = true

	if ctx != nil {
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
	}

	return nil
}

// Stop halts the cron engine and waits for a running dump to finish.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.startStopMu.Lock()

	if !s.started {
		s.startStopMu.Unlock()

		return
	}

	done := s.cron.Stop()
	s.started = false
	s.startStopMu.Unlock()

	<-done.Done()
}

func (s *Scheduler) runJob(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	if s.jobTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	if err := s.Run(ctx); err != nil {
		s.logger.Error("database backup failed", "error", err)
	}
}

// Run dumps the database once, then prunes dumps beyond the retention limit.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	dir := s.env.Backup.Dir

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	target := filepath.Join(dir, dumpPrefix+s.now().UTC().Format(dumpTimeLayout)+dumpSuffix)

	if err := s.runner.Run(ctx, "pg_dump", s.dumpArgs(target), s.dumpEnv()); err != nil {
		return err
	}

	s.logger.Info("database backup created", "path", target)

	if err := s.prune(dir); err != nil {
		s.logger.Error("pruning old backups failed", "error", err)
	}

	return nil
}

func (s *Scheduler) dumpArgs(target string) []string {
	db := s.env.DB

	return []string{
		"--host", db.Host,
		"--port", strconv.Itoa(db.Port),
		"--username", db.UserName,
		"--file", target,
		"--no-owner",
		"--no-privileges",
		db.DatabaseName,
	}
}

func (s *Scheduler) dumpEnv() map[string]string {
	return map[string]string{
		"PGPASSWORD": s.env.DB.UserPassword,
		"PGSSLMODE":  s.env.DB.SSLMode,
	}
}

// prune drops the oldest dumps once the directory holds more than MaxKeep of
// them. Timestamped names sort chronologically.
func (s *Scheduler) prune(dir string) error {
	maxKeep := s.env.Backup.MaxKeep

	if maxKeep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read backup directory: %w", err)
	}

	var dumps []string

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() || !strings.HasPrefix(name, dumpPrefix) || !strings.HasSuffix(name, dumpSuffix) {
			continue
		}

		dumps = append(dumps, name)
	}

	if len(dumps) <= maxKeep {
		return nil
	}

	sort.Strings(dumps)

	var errs []error

	for _, name := range dumps[:len(dumps)-maxKeep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			errs = append(errs, err)

			continue
		}

		s.logger.Info("pruned old backup", "file", name)
	}

	return errors.Join(errs...)
}

func flattenEnv(extraEnv map[string]string) []string {
	if len(extraEnv) == 0 {
		return nil
	}

	values := make([]string, 0, len(extraEnv))

	for key, value := range extraEnv {
		values = append(values, key+"="+value)
	}

	return values
}
