package app

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var MemoryLog = newBuffer(16)

func GetLogger(module string) zerolog.Logger {
	if s, ok := modules[module]; ok {
		lvl, err := zerolog.ParseLevel(s)
		if err == nil {
			return Logger.Level(lvl)
		}
		Logger.Warn().Err(err).Caller().Send()
	}

	return Logger
}

// initLogger support:
// - output: empty (only to memory), stderr, stdout
// - format: empty (autodetect color support), color, json, text
// - time:   empty (disable timestamp), UNIXMS, UNIXMICRO, UNIXNANO
// - level:  disabled, trace, debug, info, warn, error...
// - any other key is a module name with its own level, `export: debug`
func initLogger() {
	var cfg struct {
		Mod map[string]string `yaml:"log"`
	}

	cfg.Mod = modules // defaults

	LoadConfig(&cfg)

	Logger = NewLogger(modules)

	// library packages log with global logger
	log.Logger = Logger
}

func NewLogger(cfg map[string]string) zerolog.Logger {
	var writer io.Writer

	switch cfg["output"] {
	case "stderr":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	}

	timeFormat := cfg["time"]

	if writer != nil {
		if format := cfg["format"]; format != "json" {
			console := &zerolog.ConsoleWriter{Out: writer}

			switch format {
			case "text":
				console.NoColor = true
			case "color":
				console.NoColor = false
			default:
				// go-isatty - dependency for go-colorable - dependency for ConsoleWriter
				console.NoColor = !isatty.IsTerminal(writer.(*os.File).Fd())
			}

			if timeFormat != "" {
				console.TimeFormat = "15:04:05.000"
			} else {
				console.PartsOrder = []string{
					zerolog.LevelFieldName,
					zerolog.CallerFieldName,
					zerolog.MessageFieldName,
				}
			}

			writer = console
		}

		writer = zerolog.MultiLevelWriter(writer, MemoryLog)
	} else {
		writer = MemoryLog
	}

	lvl, _ := zerolog.ParseLevel(cfg["level"])
	logger := zerolog.New(writer).Level(lvl)

	if timeFormat != "" {
		zerolog.TimeFieldFormat = timeFormat
		logger = logger.With().Timestamp().Logger()
	}

	return logger
}

var Logger zerolog.Logger

// modules log levels
var modules = map[string]string{
	"format": "",
	"level":  "info",
	"output": "stdout",
	"time":   zerolog.TimeFormatUnixMs,
}

const chunkSize = 1 << 16

// logBuffer - keeps last chunks of log output, oldest chunk is dropped
// when limit is reached. Safe for concurrent use.
type logBuffer struct {
	mu     sync.Mutex
	chunks [][]byte
	limit  int
}

func newBuffer(limit int) *logBuffer {
	return &logBuffer{limit: limit}
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	last := len(b.chunks) - 1
	if last < 0 || len(b.chunks[last])+len(p) > chunkSize {
		var chunk []byte
		if len(b.chunks) == b.limit {
			// reuse memory of the oldest chunk
			chunk = b.chunks[0][:0]
			b.chunks = append(b.chunks[:0], b.chunks[1:]...)
		} else {
			chunk = make([]byte, 0, chunkSize)
		}
		b.chunks = append(b.chunks, chunk)
		last = len(b.chunks) - 1
	}

	b.chunks[last] = append(b.chunks[last], p...)
	return len(p), nil
}

func (b *logBuffer) WriteTo(w io.Writer) (n int64, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, chunk := range b.chunks {
		var nn int
		nn, err = w.Write(chunk)
		n += int64(nn)
		if err != nil {
			return
		}
	}
	return
}

func (b *logBuffer) Reset() {
	b.mu.Lock()
	b.chunks = nil
	b.mu.Unlock()
}
