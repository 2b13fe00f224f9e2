package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger del panel.
type Config struct {
	Env   string // development usa consola legible; cualquier otro valor, JSON
	Level string // trace, debug, info, warn, error
}

// Logger envoltorio de zerolog para inyectarlo por las capas sin depender del
// logger global.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger estructurado del servicio. En development escribe en
// consola legible con timestamp corto; en el resto de entornos emite JSON por
// stdout para el colector de logs.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Las librerías que usan el logger global de zerolog escriben aquí mismo.
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos (por ejemplo el componente).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno cuando se necesita la API completa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
