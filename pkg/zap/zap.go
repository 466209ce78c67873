/*

Package `zap` wraps Zap logging.

Zap has a convenient structured logging api of `Levelw(msg, kv ...)`
functions, which we usually use.  The constructors take a `verbose` flag
that lowers the log level to debug, so that callers can toggle debug
logging from a command line flag without touching the Zap config
themselves.

*/
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// We use the convenience sugared logger `Levelw(msg, kv...)` functions.
type Logger = zap.SugaredLogger

func NewProduction(verbose bool) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func NewDevelopment(verbose bool) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
