package brew

import "github.com/shopspring/decimal"

// Beverage is anything that can be priced and described. The set of
// implementations is closed: *Drink, *Condiment and *Grouped.
type Beverage interface {
	Cost() decimal.Decimal
	Description() string
	Size() Size
	SetSize(Size)

	beverage()
}

// Layer is a Beverage that can still be wrapped by a condiment or grouped.
// A grouped chain is not a Layer, so grouping is always the outermost step.
type Layer interface {
	Beverage

	layer()
}

// Drink is the base of every chain and the only place a size is stored.
type Drink struct {
	kind DrinkKind
	size Size
}

// NewDrink creates a Small drink of the given kind.
func NewDrink(kind DrinkKind) *Drink {
	return &Drink{kind: kind, size: Small}
}

// Kind returns the drink kind.
func (d *Drink) Kind() DrinkKind { return d.kind }

// Cost returns the base price of the drink.
func (d *Drink) Cost() decimal.Decimal { return d.kind.Price() }

// Description returns the drink's display name.
func (d *Drink) Description() string { return d.kind.Name() }

// Size returns the current size.
func (d *Drink) Size() Size { return d.size }

// SetSize stores size. Every wrapper around d observes the change.
func (d *Drink) SetSize(size Size) { d.size = size }

func (*Drink) beverage() {}
func (*Drink) layer()    {}

// Condiment wraps exactly one inner layer and adds a surcharge and label.
// It keeps no size of its own.
type Condiment struct {
	kind  CondimentKind
	inner Layer
}

// Wrap returns a new condiment layer owning inner.
func Wrap(inner Layer, kind CondimentKind) *Condiment {
	return &Condiment{kind: kind, inner: inner}
}

// Kind returns the condiment kind.
func (c *Condiment) Kind() CondimentKind { return c.kind }

// Inner returns the wrapped layer.
func (c *Condiment) Inner() Layer { return c.inner }

// Cost adds the surcharge for the inner item's current size.
func (c *Condiment) Cost() decimal.Decimal {
	return c.inner.Cost().Add(c.kind.Surcharge(c.inner.Size()))
}

// Description appends the condiment label to the inner description.
func (c *Condiment) Description() string {
	return c.inner.Description() + ", " + c.kind.Label()
}

// Size delegates to the inner layer.
func (c *Condiment) Size() Size { return c.inner.Size() }

// SetSize delegates to the inner layer.
func (c *Condiment) SetSize(size Size) { c.inner.SetSize(size) }

func (*Condiment) beverage() {}
func (*Condiment) layer()    {}

// Grouped renders a chain's description with repeated condiments collapsed.
// Cost and size are untouched.
type Grouped struct {
	inner Layer
}

// Group wraps a finished chain for display.
func Group(inner Layer) *Grouped {
	return &Grouped{inner: inner}
}

// Inner returns the grouped chain.
func (g *Grouped) Inner() Layer { return g.inner }

// Cost delegates to the grouped chain.
func (g *Grouped) Cost() decimal.Decimal { return g.inner.Cost() }

// Description returns the grouped rendering of the chain's description.
func (g *Grouped) Description() string {
	return GroupDescription(g.inner.Description())
}

// Size delegates to the grouped chain.
func (g *Grouped) Size() Size { return g.inner.Size() }

// SetSize delegates to the grouped chain.
func (g *Grouped) SetSize(size Size) { g.inner.SetSize(size) }

func (*Grouped) beverage() {}
