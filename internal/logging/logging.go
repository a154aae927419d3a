// Package logging builds the zap logger used across the engine, with
// optional lumberjack file rotation.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sunstat/sunstat/internal/config"
)

// New constructs a logger from cfg. Unknown levels fall back to info;
// unknown outputs fall back to console.
func New(cfg config.LogConfig) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var syncer zapcore.WriteSyncer
	switch cfg.Output {
	case "file":
		syncer = fileSyncer(cfg)
	case "both":
		syncer = zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stderr), fileSyncer(cfg))
	default:
		syncer = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), syncer, level)
	return zap.New(core)
}

// fileSyncer returns a rotating file writer. lumberjack creates the file
// and any missing parent directory on first write.
func fileSyncer(cfg config.LogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	})
}
