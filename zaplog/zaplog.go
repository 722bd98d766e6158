// Package zaplog adapts go.uber.org/zap to the ambient log.Sink contract
// (log/log.go), so the bench/cmd layer can choose a structured,
// high-throughput logger instead of the default stdlib-backed sink
// without touching anything that depends on log.Logger.
package zaplog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skipor/gostl/log"
)

// Sink implements log.Sink on top of a *zap.Logger.
type Sink struct {
	z *zap.Logger
}

var _ log.Sink = (*Sink)(nil)

// New wraps z as a log.Sink. The logger should already have any desired
// output/encoding configured (e.g. via zap.NewProduction()); New only
// adds the extra caller-skip frames needed so reported call sites point
// at the log.Logger caller, not this adapter.
func New(z *zap.Logger) *Sink {
	return &Sink{z: z.WithOptions(zap.AddCallerSkip(1))}
}

// Output implements log.Sink, mapping log.Level to the matching zap
// level and emitting msg with the given caller-skip depth.
func (s *Sink) Output(callDepth int, l log.Level, msg string) {
	z := s.z.WithOptions(zap.AddCallerSkip(callDepth))
	switch l {
	case log.DebugLevel:
		z.Debug(msg)
	case log.InfoLevel:
		z.Info(msg)
	case log.WarnLevel:
		z.Warn(msg)
	case log.ErrorLevel:
		z.Error(msg)
	case log.FatalLevel:
		z.Fatal(msg)
	default:
		z.Info(msg)
	}
}

// NewDevelopment builds a Sink backed by zap's human-readable development
// encoder; cmd/gostl-bench uses it when its config sets use_zap.
func NewDevelopment() (*Sink, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return New(z), nil
}
