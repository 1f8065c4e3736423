package brew

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt is a point-in-time snapshot of a beverage. It does not follow later
// size changes on the chain it was taken from.
type Receipt struct {
	ID          string
	Base        DrinkKind
	Size        Size
	Condiments  []CondimentKind
	Description string
	Cost        decimal.Decimal
	Grouped     bool
}

// NewReceipt snapshots b under a fresh id.
func NewReceipt(b Beverage) Receipt {
	receipt := Receipt{
		ID:         uuid.NewString(),
		Condiments: Condiments(b),
		Grouped:    IsGrouped(b),
	}
	if drink := Base(b); drink != nil {
		receipt.Base = drink.Kind()
	}
	if b != nil {
		receipt.Size = b.Size()
		receipt.Description = b.Description()
		receipt.Cost = b.Cost()
	}
	return receipt
}

// Cents returns the cost in whole cents.
func (r Receipt) Cents() int64 {
	return r.Cost.Shift(2).Round(0).IntPart()
}

// CondimentKeys returns the request keys of the condiments, innermost first.
func (r Receipt) CondimentKeys() []string {
	keys := make([]string, 0, len(r.Condiments))
	for _, kind := range r.Condiments {
		keys = append(keys, kind.Key())
	}
	return keys
}

// Snapshot exposes the receipt to order rules.
func (r Receipt) Snapshot() map[string]any {
	return map[string]any{
		"id":          r.ID,
		"base":        r.Base.Key(),
		"size":        r.Size.Menu(),
		"condiments":  r.CondimentKeys(),
		"layers":      int64(len(r.Condiments)),
		"cents":       r.Cents(),
		"cost":        r.Cost.StringFixed(2),
		"description": r.Description,
		"grouped":     r.Grouped,
	}
}

func (r Receipt) String() string {
	return r.Description + " " + FormatMoney(r.Cost)
}
