package brew

import "github.com/shopspring/decimal"

// PriceTable maps a size to a surcharge.
type PriceTable map[Size]decimal.Decimal

// Surcharge returns the amount charged for size. A size missing from the
// table is charged at the Medium rate; a table without a Medium entry charges
// nothing.
func (t PriceTable) Surcharge(size Size) decimal.Decimal {
	if amount, ok := t[size]; ok {
		return amount
	}
	if amount, ok := t[Medium]; ok {
		return amount
	}
	return decimal.Zero
}

// Clone returns a copy of the table that can be mutated freely.
func (t PriceTable) Clone() PriceTable {
	if t == nil {
		return nil
	}
	out := make(PriceTable, len(t))
	for size, amount := range t {
		out[size] = amount
	}
	return out
}

func tiered(small, medium, large string) PriceTable {
	return PriceTable{
		Small:  decimal.RequireFromString(small),
		Medium: decimal.RequireFromString(medium),
		Large:  decimal.RequireFromString(large),
	}
}

// FormatMoney renders amount with two decimals and a dollar sign.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
