// README: Structured logger setup.
package infra

import "go.uber.org/zap"

// NewLogger returns a production zap logger tagged with the service name,
// or a no-op logger if construction fails.
func NewLogger(service string) *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger.With(zap.String("service", service))
}
