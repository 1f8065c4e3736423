package brew

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuildLogEvent describes a single build attempt.
type BuildLogEvent struct {
	Request     Request
	ReceiptID   string
	Description string
	Cost        decimal.Decimal
	Duration    time.Duration
	Err         error
	HookErr     error
}

// BuildLogger records build events.
type BuildLogger interface {
	LogBuild(BuildLogEvent)
}

// BuildLoggerFunc adapts a function to BuildLogger.
type BuildLoggerFunc func(BuildLogEvent)

// LogBuild implements BuildLogger.
func (f BuildLoggerFunc) LogBuild(event BuildLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopBuildLogger struct{}

func (noopBuildLogger) LogBuild(BuildLogEvent) {}

// WithBuildLogger attaches a logger to the builder.
func WithBuildLogger(logger BuildLogger) Option {
	return func(cfg *builderConfig) {
		if logger == nil {
			cfg.logger = noopBuildLogger{}
			return
		}
		cfg.logger = logger
	}
}
