package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ============================================================
// Application Logger
// ============================================================

// New возвращает логгер сервиса: консольный вывод в development,
// JSON в остальных окружениях.
func New(env, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}
	return NewWithWriter(w, level)
}

func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Component помечает записи именем подсистемы.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Since: длительность в миллисекундах для полей логов.
func Since(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
