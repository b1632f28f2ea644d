package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	// LOGGER_MODE=dev включает человекочитаемый вывод (по умолчанию production).
	var (
		localLogger *zap.Logger
		err         error
	)
	if os.Getenv("LOGGER_MODE") == "dev" {
		localLogger, err = zap.NewDevelopment()
	} else {
		localLogger, err = zap.NewProduction()
	}

	if err != nil {
		log.Fatalf("Error intializing logger: %v", err)
	}

	logger = localLogger
}

func Fatal(msg string, keysAndValues ...any) {
	logger.Sugar().Fatalw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	logger.Sugar().Errorw(msg, keysAndValues...)
}

func Warning(msg string, keysAndValues ...any) {
	logger.Sugar().Warnw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	logger.Sugar().Infow(msg, keysAndValues...)
}

func Debug(msg string, keysAndValue ...any) {
	logger.Sugar().Debugw(msg, keysAndValue...)
}
