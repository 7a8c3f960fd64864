package logger

import (
	"fmt"

	"minigrep/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ProvideLogger собирает zap.Logger по настройкам запуска.
// Логи никогда не пишутся в stdout: там только результаты поиска.
func ProvideLogger(settings *config.Settings) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q: %v", config.ErrConfig, settings.LogLevel, err)
	}

	var logger *zap.Logger
	switch settings.Env {
	case "prod":
		// файл логов с ротацией
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   settings.LogFile,
			MaxSize:    10, // мегабайты
			MaxBackups: 3,
			MaxAge:     28, // дни
		})

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			writer,
			level,
		)
		logger = zap.New(core)

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		zapCfg.OutputPaths = []string{"stderr"}
		zapCfg.ErrorOutputPaths = []string{"stderr"}
		logger, err = zapCfg.Build()
		if err != nil {
			return nil, err
		}
	}

	return logger.With(zap.String("run_id", uuid.NewString())), nil
}
