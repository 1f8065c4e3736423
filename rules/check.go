package rules

import (
	"fmt"
	"strings"
)

// Check evaluates expr and requires a boolean result. A nil evaluator falls
// back to expr-lang.
func Check(evaluator Evaluator, ctx RuleContext, expr string) (bool, error) {
	if evaluator == nil {
		evaluator = NewExprEvaluator()
	}
	value, err := evaluator.Evaluate(ctx, expr)
	if err != nil {
		return false, err
	}
	ok, isBool := value.(bool)
	if !isBool {
		return false, wrapEvaluationError(EngineName(evaluator), expr, fmt.Errorf("%w: got %T", ErrNotBoolean, value))
	}
	return ok, nil
}

// EngineName returns a short label for the evaluator implementation.
func EngineName(e Evaluator) string {
	switch e.(type) {
	case nil:
		return "unknown"
	case *exprEvaluator:
		return engineExpr
	case *celEvaluator:
		return engineCEL
	default:
		if name, ok := e.(interface{ Engine() string }); ok {
			return name.Engine()
		}
		return "custom"
	}
}

// NewEvaluator returns the evaluator for a named engine: "expr" (or empty),
// "cel" or "js". The js engine requires the js_eval build tag.
func NewEvaluator(engine string, cache ProgramCache, registry *FunctionRegistry) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", engineExpr:
		return NewExprEvaluator(ExprWithProgramCache(cache), ExprWithFunctionRegistry(registry)), nil
	case engineCEL:
		return NewCELEvaluator(CELWithProgramCache(cache), CELWithFunctionRegistry(registry)), nil
	case engineJS:
		evaluator := NewJSEvaluator(JSWithProgramCache(cache), JSWithFunctionRegistry(registry))
		if evaluator == nil {
			return nil, fmt.Errorf("rules: js engine requires the js_eval build tag")
		}
		return evaluator, nil
	default:
		return nil, fmt.Errorf("rules: unknown engine %q", engine)
	}
}
