package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZerologLogger implementa Logger sobre o zerolog
type ZerologLogger struct {
	log zerolog.Logger
}

// Options define como o logger é construído
type Options struct {
	Level      string
	Production bool
	Output     io.Writer
}

// NewLogger cria uma nova instância de Logger.
// Em produção a saída é JSON; fora dela, console legível.
func NewLogger(opts Options) *ZerologLogger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if !opts.Production {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	return &ZerologLogger{
		log: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

// Zerolog expõe o logger subjacente para middlewares que escrevem eventos próprios
func (l *ZerologLogger) Zerolog() *zerolog.Logger {
	return &l.log
}

// Info registra uma mensagem de informação
func (l *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Info(), keysAndValues).Msg(msg)
}

// Error registra uma mensagem de erro
func (l *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error(), keysAndValues).Msg(msg)
}

// Debug registra uma mensagem de debug
func (l *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

// Warn registra uma mensagem de aviso
func (l *ZerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Warn(), keysAndValues).Msg(msg)
}

// withFields converte pares chave/valor em campos do evento.
// Um valor do tipo error vira .Err; chave sem valor é registrada como "!BADKEY".
func withFields(ev *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		if i+1 >= len(keysAndValues) {
			ev = ev.Interface("!BADKEY", keysAndValues[i])
			break
		}
		val := keysAndValues[i+1]
		if err, isErr := val.(error); isErr {
			if key == "error" {
				ev = ev.Err(err)
			} else {
				ev = ev.AnErr(key, err)
			}
			continue
		}
		ev = ev.Interface(key, val)
	}
	return ev
}

// Nop retorna um logger que descarta tudo, útil em testes
func Nop() *ZerologLogger {
	return &ZerologLogger{log: zerolog.Nop()}
}
