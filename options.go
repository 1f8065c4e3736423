package brew

import (
	"github.com/goliatone/go-brew/pkg/activity"
	"github.com/goliatone/go-brew/rules"
)

// Option configures a Builder.
type Option func(*builderConfig)

type builderConfig struct {
	grouping  bool
	logger    BuildLogger
	hooks     activity.Hooks
	channel   string
	rules     []string
	evaluator rules.Evaluator
	cache     rules.ProgramCache
	functions *rules.FunctionRegistry
}

func applyOptions(opts []Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg *builderConfig) buildLogger() BuildLogger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return noopBuildLogger{}
}

// ruleEvaluator returns the configured evaluator, installing an expr evaluator
// when none was set.
func (cfg *builderConfig) ruleEvaluator() rules.Evaluator {
	if cfg.evaluator != nil {
		return cfg.evaluator
	}
	var exprOpts []rules.ExprEvaluatorOption
	if cfg.cache != nil {
		exprOpts = append(exprOpts, rules.ExprWithProgramCache(cfg.cache))
	}
	if cfg.functions != nil {
		exprOpts = append(exprOpts, rules.ExprWithFunctionRegistry(cfg.functions))
	}
	cfg.evaluator = rules.NewExprEvaluator(exprOpts...)
	return cfg.evaluator
}

// WithGrouping wraps every built chain in a Grouped description.
func WithGrouping(enabled bool) Option {
	return func(cfg *builderConfig) {
		cfg.grouping = enabled
	}
}

// WithActivityHooks attaches hooks notified after each build. Nil hooks are
// dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := hooks.Clone()
	return func(cfg *builderConfig) {
		cfg.hooks = normalized
	}
}

// WithActivityChannel overrides the channel stamped on emitted events.
func WithActivityChannel(channel string) Option {
	return func(cfg *builderConfig) {
		cfg.channel = channel
	}
}

// WithRule appends an order rule. Rules must evaluate to a bool; a false
// result rejects the order.
func WithRule(expr string) Option {
	return func(cfg *builderConfig) {
		cfg.rules = append(cfg.rules, expr)
	}
}

// WithRules appends several order rules, evaluated in order.
func WithRules(exprs ...string) Option {
	return func(cfg *builderConfig) {
		cfg.rules = append(cfg.rules, exprs...)
	}
}

// WithEvaluator sets the engine used for order rules. The default is expr.
func WithEvaluator(e rules.Evaluator) Option {
	return func(cfg *builderConfig) {
		cfg.evaluator = e
	}
}

// WithProgramCache caches compiled rules for the default evaluator.
func WithProgramCache(cache rules.ProgramCache) Option {
	return func(cfg *builderConfig) {
		cfg.cache = cache
	}
}

// WithFunctionRegistry exposes helpers to rules run by the default evaluator.
func WithFunctionRegistry(registry *rules.FunctionRegistry) Option {
	return func(cfg *builderConfig) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}
