// Package telemetry is the one place proplog builds a *zap.Logger. The
// core packages (domain, expr, formula, parser, truthtable, cnf,
// tseitin, dimacs) stay logging-free and communicate only through
// return values and errors; only cmd/proplog, and the optional
// WithLogger tracing hooks on tseitin and dimacs, ever touch a logger,
// and they all get it from here rather than constructing their own.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger: development encoding (human-readable,
// colorized level names, stack traces on Warn+) when verbose is true,
// production JSON encoding at Info level otherwise. Either way logging
// calls that fail to construct their logger fall back to zap.NewNop so
// a telemetry misconfiguration never takes down the CLI demo.
func New(verbose bool) *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
