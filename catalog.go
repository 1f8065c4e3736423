package brew

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DrinkKind identifies a base drink on the menu.
type DrinkKind uint8

const (
	HouseBlend DrinkKind = iota
	DarkRoast
	Decaf
	Espresso
)

type drinkEntry struct {
	key   string
	name  string
	price decimal.Decimal
}

var drinkCatalog = [...]drinkEntry{
	HouseBlend: {key: "houseblend", name: "House Blend Coffee", price: decimal.RequireFromString("0.89")},
	DarkRoast:  {key: "darkroast", name: "Dark Roast Coffee", price: decimal.RequireFromString("0.99")},
	Decaf:      {key: "decaf", name: "Decaf Coffee", price: decimal.RequireFromString("1.05")},
	Espresso:   {key: "espresso", name: "Espresso", price: decimal.RequireFromString("1.99")},
}

// DrinkKinds returns every base drink in catalog order.
func DrinkKinds() []DrinkKind {
	return []DrinkKind{HouseBlend, DarkRoast, Decaf, Espresso}
}

// LookupDrink resolves a drink key case-insensitively.
func LookupDrink(name string) (DrinkKind, bool) {
	key := normalizeKey(name)
	for kind, entry := range drinkCatalog {
		if entry.key == key {
			return DrinkKind(kind), true
		}
	}
	return 0, false
}

func (k DrinkKind) valid() bool {
	return int(k) < len(drinkCatalog)
}

// Key returns the request key for the drink.
func (k DrinkKind) Key() string {
	if !k.valid() {
		return ""
	}
	return drinkCatalog[k].key
}

// Name returns the display name used in descriptions.
func (k DrinkKind) Name() string {
	if !k.valid() {
		return "Unknown Beverage"
	}
	return drinkCatalog[k].name
}

// Price returns the base price. Size never changes it.
func (k DrinkKind) Price() decimal.Decimal {
	if !k.valid() {
		return decimal.Zero
	}
	return drinkCatalog[k].price
}

func (k DrinkKind) String() string {
	if !k.valid() {
		return "DrinkKind(" + strconv.Itoa(int(k)) + ")"
	}
	return drinkCatalog[k].name
}

// CondimentKind identifies a condiment layer.
type CondimentKind uint8

const (
	Milk CondimentKind = iota
	Mocha
	Soy
	Whip
	Caramel
)

type condimentEntry struct {
	key    string
	label  string
	prices PriceTable
}

var condimentCatalog = [...]condimentEntry{
	Milk:    {key: "milk", label: "Milk", prices: tiered("0.10", "0.15", "0.20")},
	Mocha:   {key: "mocha", label: "Mocha", prices: tiered("0.20", "0.25", "0.30")},
	Soy:     {key: "soy", label: "Soy", prices: tiered("0.10", "0.15", "0.20")},
	Whip:    {key: "whip", label: "Whip", prices: tiered("0.10", "0.15", "0.20")},
	Caramel: {key: "caramel", label: "Caramel", prices: tiered("0.20", "0.25", "0.30")},
}

// CondimentKinds returns every condiment in catalog order.
func CondimentKinds() []CondimentKind {
	return []CondimentKind{Milk, Mocha, Soy, Whip, Caramel}
}

// LookupCondiment resolves a condiment key case-insensitively.
func LookupCondiment(name string) (CondimentKind, bool) {
	key := normalizeKey(name)
	for kind, entry := range condimentCatalog {
		if entry.key == key {
			return CondimentKind(kind), true
		}
	}
	return 0, false
}

func (k CondimentKind) valid() bool {
	return int(k) < len(condimentCatalog)
}

// Key returns the request key for the condiment.
func (k CondimentKind) Key() string {
	if !k.valid() {
		return ""
	}
	return condimentCatalog[k].key
}

// Label returns the text appended to descriptions.
func (k CondimentKind) Label() string {
	if !k.valid() {
		return "Unknown Condiment"
	}
	return condimentCatalog[k].label
}

// Prices returns a copy of the condiment's surcharge table.
func (k CondimentKind) Prices() PriceTable {
	if !k.valid() {
		return PriceTable{}
	}
	return condimentCatalog[k].prices.Clone()
}

// Surcharge returns the condiment's charge for size.
func (k CondimentKind) Surcharge(size Size) decimal.Decimal {
	if !k.valid() {
		return decimal.Zero
	}
	return condimentCatalog[k].prices.Surcharge(size)
}

func (k CondimentKind) String() string {
	if !k.valid() {
		return "CondimentKind(" + strconv.Itoa(int(k)) + ")"
	}
	return condimentCatalog[k].label
}
