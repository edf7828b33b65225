// Package logging builds the application zap logger: console output plus a
// daily log file so operators can tail history without a log shipper.
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogDir = "SENDIKA_LOG_DIR"

	defaultLogDirPerm  = 0o755
	defaultLogFilePerm = 0o644
)

// ResolveDir picks the log directory: env override first, then ./logs.
func ResolveDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvLogDir)); dir != "" {
		return dir
	}
	return filepath.Join(".", "logs")
}

// New builds the process logger. Development mode uses a colored console
// encoder; production emits JSON. Both tee into a date-stamped file, and a
// file-open failure degrades to console-only logging.
func New(dev bool) (*zap.Logger, error) {
	var consoleEncoder zapcore.Encoder
	level := zap.InfoLevel
	if dev {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encCfg)
		level = zap.DebugLevel
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if file, err := openDailyFile(time.Now()); err == nil {
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.Lock(file), zap.InfoLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func openDailyFile(now time.Time) (*os.File, error) {
	dir := ResolveDir()
	if err := os.MkdirAll(dir, defaultLogDirPerm); err != nil {
		return nil, err
	}
	name := "sendika_" + now.Format("2006-01-02") + ".log"
	return os.OpenFile(filepath.Join(dir, name),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, defaultLogFilePerm)
}
