package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger логгер с форматированием в стиле printf поверх go-kit/log (logfmt)
type Logger struct {
	base   kitlog.Logger
	closer io.Closer
	once   sync.Once
}

// New создает логгер. Пустой file пишет в stderr.
// lvl: debug, info, warn, error (по умолчанию info)
func New(file, lvl string) (*Logger, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)

	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", file, err)
		}
		out = f
		closer = f
	}

	return NewWithWriter(out, lvl, closer), nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, lvl string, closer io.Closer) *Logger {
	base := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	base = level.NewFilter(base, levelOption(lvl))
	base = kitlog.With(base, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.Caller(4))

	return &Logger{base: base, closer: closer}
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// With возвращает логгер с дополнительными полями
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{base: kitlog.With(l.base, keyvals...)}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	_ = level.Debug(l.base).Log("msg", fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	_ = level.Info(l.base).Log("msg", fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	_ = level.Warn(l.base).Log("msg", fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	_ = level.Error(l.base).Log("msg", fmt.Sprintf(format, v...))
}

// Fatal пишет ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.Error(format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() {
	l.once.Do(func() {
		if l.closer != nil {
			_ = l.closer.Close()
		}
	})
}
