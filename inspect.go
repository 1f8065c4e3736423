package brew

// Base returns the drink at the bottom of b, or nil for a nil beverage.
func Base(b Beverage) *Drink {
	for b != nil {
		switch v := b.(type) {
		case *Drink:
			return v
		case *Condiment:
			b = v.inner
		case *Grouped:
			b = v.inner
		default:
			return nil
		}
	}
	return nil
}

// Condiments returns the condiment kinds of b, innermost first, which is the
// order they were applied in.
func Condiments(b Beverage) []CondimentKind {
	var outermostFirst []CondimentKind
	for b != nil {
		switch v := b.(type) {
		case *Condiment:
			outermostFirst = append(outermostFirst, v.kind)
			b = v.inner
		case *Grouped:
			b = v.inner
		default:
			b = nil
		}
	}
	kinds := make([]CondimentKind, len(outermostFirst))
	for i, kind := range outermostFirst {
		kinds[len(kinds)-1-i] = kind
	}
	return kinds
}

// Contains reports whether b has at least one layer of kind.
func Contains(b Beverage, kind CondimentKind) bool {
	for _, k := range Condiments(b) {
		if k == kind {
			return true
		}
	}
	return false
}

// Depth returns the number of condiment layers in b.
func Depth(b Beverage) int {
	return len(Condiments(b))
}

// IsGrouped reports whether b is a grouped chain.
func IsGrouped(b Beverage) bool {
	_, ok := b.(*Grouped)
	return ok
}
