package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects where log records go.
type Options struct {
	// Dir receives a timestamped log file. Empty disables file logging.
	Dir   string
	Level slog.Level
	// Journal additionally sends records to the systemd journal.
	Journal bool
}

// Logger is a slog.Logger together with the file it writes to.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New builds a logger fanning out to every configured destination. With no
// destination the logger discards everything.
func New(opts Options) (*Logger, error) {
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	var (
		handlers []slog.Handler
		file     *os.File
	)

	if opts.Dir != "" {
		f, err := openLogFile(opts.Dir, time.Now())
		if err != nil {
			return nil, err
		}
		file = f
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	if opts.Journal {
		h, err := slogjournal.NewHandler(&slogjournal.Options{Level: level})
		if err != nil {
			if file != nil {
				file.Close()
			}
			return nil, fmt.Errorf("failed to open systemd journal: %w", err)
		}
		handlers = append(handlers, h)
	}

	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(io.Discard, nil))
	}

	return &Logger{
		Logger: slog.New(slogmulti.Fanout(handlers...)),
		file:   file,
	}, nil
}

// Path returns the log file path, or "" when not logging to a file.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// openLogFile creates dir and opens gocalc_<timestamp>.log inside it for appending.
func openLogFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("gocalc_%s.log", now.Format("2006-01-02_15-04-05")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
