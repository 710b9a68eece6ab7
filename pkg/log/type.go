package log

import "go.uber.org/zap"

// ZapConfig holds the configuration for the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug, production
	Encoding     string // console, json
	ColorEnabled bool
}

// zapImpl implements Logger on top of a zap.SugaredLogger.
type zapImpl struct {
	sugar *zap.SugaredLogger
}
