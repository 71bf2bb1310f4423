package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger: human-readable in development,
// JSON in anything else.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
