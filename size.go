package brew

import (
	"strconv"
	"strings"
)

// Size classifies a beverage for surcharge lookup.
type Size uint8

const (
	// Small is the default size of every drink ("tall" on the menu).
	Small Size = iota
	// Medium is served as "grande".
	Medium
	// Large is served as "venti".
	Large
)

var sizeNames = [...]string{
	Small:  "Small",
	Medium: "Medium",
	Large:  "Large",
}

var sizeMenuNames = [...]string{
	Small:  "tall",
	Medium: "grande",
	Large:  "venti",
}

var sizesByMenuName = map[string]Size{
	"tall":   Small,
	"grande": Medium,
	"venti":  Large,
}

// Sizes returns every size in menu order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// Valid reports whether s is one of the declared sizes.
func (s Size) Valid() bool {
	return s <= Large
}

func (s Size) String() string {
	if !s.Valid() {
		return "Size(" + strconv.Itoa(int(s)) + ")"
	}
	return sizeNames[s]
}

// Menu returns the name the size is ordered by.
func (s Size) Menu() string {
	if !s.Valid() {
		return ""
	}
	return sizeMenuNames[s]
}

// LookupSize resolves a menu name case-insensitively.
func LookupSize(name string) (Size, bool) {
	size, ok := sizesByMenuName[normalizeKey(name)]
	return size, ok
}

// ParseSize resolves a menu name, falling back to Small for anything
// unrecognised. Unknown sizes never fail a request.
func ParseSize(name string) Size {
	if size, ok := LookupSize(name); ok {
		return size
	}
	return Small
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

