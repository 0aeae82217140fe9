package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger del planificador.
type Config struct {
	Env   string // development imprime consola legible; cualquier otro, JSON
	Level string // trace, debug, info, warn, error
}

// Logger envuelve zerolog para inyectarlo en los casos de uso y las capas
// de infraestructura con una sola superficie.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger estructurado de la API. Fuera de development la salida
// es JSON por línea, apta para agregadores.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Las librerías que escriben por el logger global de zerolog salen
	// por el mismo destino.
	log.Logger = zl

	return &Logger{zl: zl}
}

var levels = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// parseLevel cae a info ante un nivel desconocido o vacío.
func parseLevel(s string) zerolog.Level {
	if level, ok := levels[s]; ok {
		return level
	}
	return zerolog.InfoLevel
}

// Eventos delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With arma un sublogger con campos fijos, típicamente país y módulo.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno cuando hace falta la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
