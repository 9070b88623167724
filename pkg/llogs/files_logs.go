package llogs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

// FilesLogs routes the default slog logger into a dated file under the
// configured logs directory.
type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
	env    *env.Environment
}

func MakeFilesLogs(environment *env.Environment) (Driver, error) {
	manager := FilesLogs{env: environment}
	manager.path = manager.DefaultPath()

	if err := os.MkdirAll(filepath.Dir(manager.path), 0755); err != nil {
		return FilesLogs{}, fmt.Errorf("llogs: create log directory: %w", err)
	}

	file, err := os.OpenFile(manager.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return FilesLogs{}, err
	}

	logger := slog.New(slog.NewTextHandler(file, nil))
	slog.SetDefault(logger)

	manager.file = file
	manager.logger = logger

	return manager, nil
}

func (manager FilesLogs) DefaultPath() string {
	logs := manager.env.Logs

	return fmt.Sprintf(logs.Dir, time.Now().UTC().Format(logs.DateFormat))
}

func (manager FilesLogs) Close() bool {
	if err := manager.file.Close(); err != nil {
		manager.logger.Error("error closing log file: " + err.Error())

		return false
	}

	return true
}
