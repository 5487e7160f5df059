package logger

import "go.uber.org/zap"

// New builds the process-wide logger. Development gets the console
// encoder, everything else the JSON production config.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
