package platform

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger routes the global logger to w in console format. Output on
// stdout is reserved for results, so callers pass stderr. Writes are
// serialized since inputs load concurrently.
func InitLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w)})
	return log.Logger
}
