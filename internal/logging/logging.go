// Package logging builds the logfmt logger shared by the commands.
package logging

import (
	"io"
	"strings"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New returns a logfmt logger on w filtered at lvl (debug, info, warn or
// error; anything else means warn).
func New(w io.Writer, lvl string) gokitlog.Logger {
	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	logger = gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)
	return level.NewFilter(logger, option(lvl))
}

// Nop discards everything.
func Nop() gokitlog.Logger { return gokitlog.NewNopLogger() }

func option(lvl string) level.Option {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "error":
		return level.AllowError()
	default:
		return level.AllowWarn()
	}
}
