package cli

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap-backed logr.Logger writing to w. The solver's
// per-generation records are logged at V(1), which zapr maps to debug.
func newLogger(level, format string, w io.Writer) (logr.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	var enc zapcore.Encoder
	if format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	z := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))

	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}
