// Package logger expõe um logger estilo printf (Info/Warn/Error/Fatal)
// por cima do zap. A fachada mantém as interfaces Logger declaradas em cada
// pacote consumidor pequenas e fáceis de mockar em teste.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger embrulha um *zap.SugaredLogger com API printf
type Logger struct {
	sugar *zap.SugaredLogger
}

// New cria um logger que escreve no arquivo informado (e em stdout).
// level aceita debug|info|warn|error.
func New(file, level string) (*Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: build zap: %w", err)
	}

	return &Logger{sugar: zl.Sugar()}, nil
}

// Info registra uma mensagem informativa
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn registra um aviso
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error registra um erro
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal registra um erro fatal e encerra o processo
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close descarrega buffers pendentes
func (l *Logger) Close() {
	// Sync falha em stdout em alguns SOs; o erro é irrelevante no shutdown
	_ = l.sugar.Sync()
}
