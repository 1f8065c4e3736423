package rules

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func orderSnapshot() map[string]any {
	return map[string]any{
		"base":       "espresso",
		"size":       "venti",
		"condiments": []string{"mocha", "whip"},
		"layers":     int64(2),
		"cents":      int64(249),
	}
}

var evaluatorFactories = []struct {
	name string
	new  func(cache ProgramCache, registry *FunctionRegistry) Evaluator
}{
	{
		name: "expr",
		new: func(cache ProgramCache, registry *FunctionRegistry) Evaluator {
			opts := []ExprEvaluatorOption{ExprWithFunctionRegistry(registry)}
			if cache != nil {
				opts = append(opts, ExprWithProgramCache(cache))
			}
			return NewExprEvaluator(opts...)
		},
	},
	{
		name: "cel",
		new: func(cache ProgramCache, registry *FunctionRegistry) Evaluator {
			opts := []CELEvaluatorOption{CELWithFunctionRegistry(registry)}
			if cache != nil {
				opts = append(opts, CELWithProgramCache(cache))
			}
			return NewCELEvaluator(opts...)
		},
	},
	{
		name: "js",
		new: func(cache ProgramCache, registry *FunctionRegistry) Evaluator {
			opts := []JSEvaluatorOption{JSWithFunctionRegistry(registry)}
			if cache != nil {
				opts = append(opts, JSWithProgramCache(cache))
			}
			return NewJSEvaluator(opts...)
		},
	},
}

func TestCheckAcrossEvaluators(t *testing.T) {
	cases := []struct {
		name string
		rule string
		want bool
	}{
		{"price cap", "cents < 300", true},
		{"layer cap", "layers > 2", false},
		{"base match", `base == "espresso"`, true},
		{"combined", `cents >= 200 && base != "decaf"`, true},
	}
	for _, factory := range evaluatorFactories {
		factory := factory
		t.Run(factory.name, func(t *testing.T) {
			evaluator := factory.new(nil, nil)
			if evaluator == nil {
				t.Skip("engine not compiled in")
			}
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					got, err := Check(evaluator, RuleContext{Snapshot: orderSnapshot()}, tc.rule)
					if err != nil {
						t.Fatalf("check: %v", err)
					}
					if got != tc.want {
						t.Fatalf("expected %v, got %v", tc.want, got)
					}
				})
			}
		})
	}
}

func TestEvaluatorProgramCache(t *testing.T) {
	for _, factory := range evaluatorFactories {
		factory := factory
		t.Run(factory.name, func(t *testing.T) {
			cache := &countingCache{MemoryCache: NewMemoryCache()}
			evaluator := factory.new(cache, nil)
			if evaluator == nil {
				t.Skip("engine not compiled in")
			}
			for i := 0; i < 3; i++ {
				if _, err := evaluator.Evaluate(RuleContext{Snapshot: orderSnapshot()}, "cents < 300"); err != nil {
					t.Fatalf("iteration %d: %v", i, err)
				}
			}
			if cache.misses != 1 || cache.hits != 2 {
				t.Fatalf("expected 1 miss and 2 hits, got %d/%d", cache.misses, cache.hits)
			}
			if cache.Len() != 1 {
				t.Fatalf("expected one program cached, got %d", cache.Len())
			}
		})
	}
}

func TestCompiledRuleReuse(t *testing.T) {
	for _, factory := range evaluatorFactories {
		factory := factory
		t.Run(factory.name, func(t *testing.T) {
			evaluator := factory.new(nil, nil)
			if evaluator == nil {
				t.Skip("engine not compiled in")
			}
			rule, err := evaluator.Compile("cents > 100")
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			for cents, want := range map[int64]bool{50: false, 150: true} {
				snapshot := orderSnapshot()
				snapshot["cents"] = cents
				value, err := rule.Evaluate(RuleContext{Snapshot: snapshot})
				if err != nil {
					t.Fatalf("evaluate: %v", err)
				}
				if value != want {
					t.Fatalf("cents=%d: expected %v, got %v", cents, want, value)
				}
			}
		})
	}
}

func TestCustomFunctionsAcrossEvaluators(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("hasPrefix", func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("hasPrefix expects 2 args")
		}
		s, _ := args[0].(string)
		prefix, _ := args[1].(string)
		return strings.HasPrefix(s, prefix), nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, factory := range evaluatorFactories {
		factory := factory
		t.Run(factory.name, func(t *testing.T) {
			evaluator := factory.new(nil, registry)
			if evaluator == nil {
				t.Skip("engine not compiled in")
			}
			for _, rule := range []string{`hasPrefix(base, "esp")`, `call("hasPrefix", base, "esp")`} {
				got, err := Check(evaluator, RuleContext{Snapshot: orderSnapshot()}, rule)
				if err != nil {
					t.Fatalf("%s: %v", rule, err)
				}
				if !got {
					t.Fatalf("%s: expected true", rule)
				}
			}
		})
	}
}

func TestCheckRejectsNonBoolean(t *testing.T) {
	_, err := Check(nil, RuleContext{Snapshot: orderSnapshot()}, "cents + 1")
	if !errors.Is(err, ErrNotBoolean) {
		t.Fatalf("expected ErrNotBoolean, got %v", err)
	}
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) || evalErr.Engine != "expr" || evalErr.Expr != "cents + 1" {
		t.Fatalf("expected evaluation metadata, got %+v", evalErr)
	}
}

func TestEmptyExpressionRejected(t *testing.T) {
	for _, factory := range evaluatorFactories {
		factory := factory
		t.Run(factory.name, func(t *testing.T) {
			evaluator := factory.new(nil, nil)
			if evaluator == nil {
				t.Skip("engine not compiled in")
			}
			if _, err := evaluator.Evaluate(RuleContext{}, ""); !errors.Is(err, ErrEmptyExpression) {
				t.Fatalf("expected ErrEmptyExpression from Evaluate, got %v", err)
			}
			if _, err := evaluator.Compile(""); !errors.Is(err, ErrEmptyExpression) {
				t.Fatalf("expected ErrEmptyExpression from Compile, got %v", err)
			}
		})
	}
}

func TestSyntaxErrorsCarryMetadata(t *testing.T) {
	_, err := NewExprEvaluator().Evaluate(RuleContext{}, "cents <")
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %T", err)
	}
	if evalErr.Engine != "expr" || evalErr.Expr != "cents <" {
		t.Fatalf("unexpected metadata %+v", evalErr)
	}
	if !strings.HasPrefix(err.Error(), "rules: expr evaluator") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapEvaluationErrorAugmentsExisting(t *testing.T) {
	base := errors.New("compile failure")
	existing := &EvaluationError{Engine: "cel", Err: base}

	err := wrapEvaluationError("expr", "cents > 1", existing)
	if !errors.Is(err, base) {
		t.Fatalf("expected base error to unwrap")
	}
	if existing.Engine != "cel" {
		t.Fatalf("existing engine should not be overwritten, got %q", existing.Engine)
	}
	if existing.Expr != "cents > 1" {
		t.Fatalf("expression should be filled, got %q", existing.Expr)
	}
	if wrapEvaluationError("expr", "x", nil) != nil {
		t.Fatalf("nil error should stay nil")
	}
}

func TestFunctionRegistry(t *testing.T) {
	registry := NewFunctionRegistry()
	fn := func(args ...any) (any, error) { return len(args), nil }
	if err := registry.Register("Count", fn); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("count", fn); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register("", fn); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if err := registry.Register("nilfn", nil); err == nil {
		t.Fatalf("expected nil function to fail")
	}
	got, err := registry.Call("COUNT", 1, 2, 3)
	if err != nil || got != 3 {
		t.Fatalf("expected 3, got %v (%v)", got, err)
	}
	if _, err := registry.Call("missing"); err == nil {
		t.Fatalf("expected missing function error")
	}

	clone := registry.Clone()
	if err := clone.Register("other", fn); err != nil {
		t.Fatalf("register on clone: %v", err)
	}
	if names := registry.Names(); len(names) != 1 || names[0] != "Count" {
		t.Fatalf("expected original untouched, got %v", names)
	}

	var nilRegistry *FunctionRegistry
	if nilRegistry.Names() != nil || nilRegistry.Clone() != nil {
		t.Fatalf("expected nil-safe registry")
	}
}

func TestNewEvaluatorByName(t *testing.T) {
	for _, engine := range []string{"", "expr", "cel"} {
		evaluator, err := NewEvaluator(engine, nil, nil)
		if err != nil || evaluator == nil {
			t.Fatalf("engine %q: %v", engine, err)
		}
	}
	if got := EngineName(NewCELEvaluator()); got != "cel" {
		t.Fatalf("expected cel, got %q", got)
	}
	if _, err := NewEvaluator("lua", nil, nil); err == nil {
		t.Fatalf("expected unknown engine error")
	}
	if JSAvailable() {
		if _, err := NewEvaluator("js", nil, nil); err != nil {
			t.Fatalf("js: %v", err)
		}
	} else if _, err := NewEvaluator("js", nil, nil); err == nil {
		t.Fatalf("expected js to require the build tag")
	}
}

type countingCache struct {
	*MemoryCache
	hits   int
	misses int
}

func (c *countingCache) Get(key string) (any, bool) {
	value, ok := c.MemoryCache.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}
