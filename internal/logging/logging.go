// Package logging sets up the context-carried logger used across the CLI.
package logging

import (
	"context"
	"io"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	xlogrus "github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
)

// DefaultLevel is used when no --log-level is given.
const DefaultLevel = logger.LevelWarning

// New returns a logrus-backed logger writing to w.
func New(w io.Writer, level logger.Level) logger.Logger {
	ll := xlogrus.DefaultLogrusLogger()
	ll.SetOutput(w)
	return xlogrus.New(ll).WithLevel(level)
}

// Install makes l the default logger and attaches it to ctx.
func Install(ctx context.Context, l logger.Logger) context.Context {
	logger.Default = func() logger.Logger {
		return l
	}
	return logger.CtxWithLogger(ctx, l)
}

// Flush flushes any buffered log entries carried by ctx.
func Flush(ctx context.Context) {
	belt.Flush(ctx)
}
