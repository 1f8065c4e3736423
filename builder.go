package brew

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-brew/pkg/activity"
	"github.com/goliatone/go-brew/rules"
)

// Request names a beverage declaratively. Condiments are applied in order, so
// the first one is innermost.
type Request struct {
	Base       string   `json:"base" yaml:"base"`
	Size       string   `json:"size" yaml:"size"`
	Condiments []string `json:"condiments" yaml:"condiments"`
}

// Build assembles the chain for req. Base and condiment names must be on the
// menu; an unknown size is served Small. On error no chain is returned.
func Build(req Request) (Layer, error) {
	kind, ok := LookupDrink(req.Base)
	if !ok {
		return nil, &UnknownBaseError{Name: req.Base}
	}
	drink := NewDrink(kind)
	drink.SetSize(ParseSize(req.Size))

	var chain Layer = drink
	for i, name := range req.Condiments {
		condiment, ok := LookupCondiment(name)
		if !ok {
			return nil, &UnknownCondimentError{Name: name, Position: i}
		}
		chain = Wrap(chain, condiment)
	}
	return chain, nil
}

// Builder assembles beverages and applies the configured grouping, order rules
// and activity hooks.
type Builder struct {
	cfg     builderConfig
	emitter *activity.Emitter
}

// NewBuilder constructs a Builder.
func NewBuilder(opts ...Option) *Builder {
	cfg := applyOptions(opts)
	if len(cfg.rules) > 0 {
		cfg.ruleEvaluator()
	}
	return &Builder{
		cfg:     cfg,
		emitter: activity.NewEmitter(cfg.hooks, cfg.channel),
	}
}

// Build assembles req without a caller context.
func (b *Builder) Build(req Request) (Beverage, error) {
	return b.BuildContext(context.Background(), req)
}

// BuildContext assembles req. ctx is handed to activity hooks only.
func (b *Builder) BuildContext(ctx context.Context, req Request) (Beverage, error) {
	start := time.Now()
	beverage, receipt, err := b.assemble(ctx, req)
	event := BuildLogEvent{
		Request:  req,
		Duration: time.Since(start),
		Err:      err,
	}
	if receipt != nil {
		event.ReceiptID = receipt.ID
		event.Description = receipt.Description
		event.Cost = receipt.Cost
		event.HookErr = b.emit(ctx, *receipt, err)
	}
	b.cfg.buildLogger().LogBuild(event)
	if err != nil {
		return nil, err
	}
	return beverage, nil
}

// Receipt assembles req and snapshots the result.
func (b *Builder) Receipt(ctx context.Context, req Request) (Receipt, error) {
	beverage, err := b.BuildContext(ctx, req)
	if err != nil {
		return Receipt{}, err
	}
	return NewReceipt(beverage), nil
}

func (b *Builder) assemble(_ context.Context, req Request) (Beverage, *Receipt, error) {
	chain, err := Build(req)
	if err != nil {
		return nil, nil, err
	}

	var beverage Beverage = chain
	if b.cfg.grouping {
		beverage = Group(chain)
	}
	if len(b.cfg.rules) == 0 && !b.emitter.Enabled() {
		return beverage, nil, nil
	}

	receipt := NewReceipt(beverage)
	if err := b.checkRules(receipt); err != nil {
		return nil, &receipt, err
	}
	return beverage, &receipt, nil
}

func (b *Builder) checkRules(receipt Receipt) error {
	if len(b.cfg.rules) == 0 {
		return nil
	}
	evaluator := b.cfg.ruleEvaluator()
	ctx := rules.RuleContext{Snapshot: receipt.Snapshot()}
	for _, rule := range b.cfg.rules {
		ok, err := rules.Check(evaluator, ctx, rule)
		if err != nil {
			return &RuleError{Rule: rule, Engine: rules.EngineName(evaluator), Err: err}
		}
		if !ok {
			return &RuleError{Rule: rule, Engine: rules.EngineName(evaluator), Err: ErrRuleRejected}
		}
	}
	return nil
}

func (b *Builder) emit(ctx context.Context, receipt Receipt, buildErr error) error {
	if !b.emitter.Enabled() {
		return nil
	}
	input := activity.BeverageEventInput{
		ID:          receipt.ID,
		Base:        receipt.Base.Key(),
		Size:        receipt.Size.Menu(),
		Condiments:  receipt.CondimentKeys(),
		Description: receipt.Description,
		Cost:        receipt.Cost.StringFixed(2),
	}
	if buildErr == nil {
		return b.emitter.Emit(ctx, activity.BuildBuiltEvent(input))
	}
	var ruleErr *RuleError
	if errors.As(buildErr, &ruleErr) && errors.Is(buildErr, ErrRuleRejected) {
		input.Rule = ruleErr.Rule
		return b.emitter.Emit(ctx, activity.BuildRejectedEvent(input))
	}
	return nil
}
