package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	output  string
	service string
}

// Option меняет настройки логгера
type Option func(*options)

// WithStderr направляет журнал в stderr, stdout остается для вывода команд
func WithStderr() Option {
	return func(o *options) { o.output = "stderr" }
}

// WithService задает имя сервиса в поле service
func WithService(name string) Option {
	return func(o *options) { o.service = name }
}

// New создает логгер сервиса: JSON в production, цветной консольный вывод для debug.
// Неизвестный уровень трактуется как info.
func New(level string, opts ...Option) (*zap.Logger, error) {
	o := options{output: "stdout", service: "oereb-service"}
	for _, opt := range opts {
		opt(&o)
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{o.output},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]interface{}{"service": o.service},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if zapLevel == zapcore.DebugLevel {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}
