package brew

import "testing"

func TestParseSize(t *testing.T) {
	cases := map[string]Size{
		"tall":    Small,
		"Grande":  Medium,
		" VENTI ": Large,
		"":        Small,
		"short":   Small,
	}
	for name, want := range cases {
		if got := ParseSize(name); got != want {
			t.Fatalf("ParseSize(%q): expected %v, got %v", name, want, got)
		}
	}
	if _, ok := LookupSize("short"); ok {
		t.Fatalf("expected short to be unknown")
	}
}

func TestSizeNames(t *testing.T) {
	if Medium.String() != "Medium" || Medium.Menu() != "grande" {
		t.Fatalf("unexpected names %q/%q", Medium.String(), Medium.Menu())
	}
	if Size(7).Valid() || Size(7).Menu() != "" || Size(7).String() != "Size(7)" {
		t.Fatalf("unexpected invalid size rendering %q", Size(7).String())
	}
}

func TestLookupCatalog(t *testing.T) {
	for _, kind := range DrinkKinds() {
		got, ok := LookupDrink(kind.Key())
		if !ok || got != kind {
			t.Fatalf("expected %v for key %q, got %v", kind, kind.Key(), got)
		}
	}
	for _, kind := range CondimentKinds() {
		got, ok := LookupCondiment(kind.Key())
		if !ok || got != kind {
			t.Fatalf("expected %v for key %q, got %v", kind, kind.Key(), got)
		}
	}
	if _, ok := LookupDrink("latte"); ok {
		t.Fatalf("expected latte to be unknown")
	}
	if _, ok := LookupCondiment("sugar"); ok {
		t.Fatalf("expected sugar to be unknown")
	}
	if got, _ := LookupCondiment("CARAMEL"); got != Caramel {
		t.Fatalf("expected case-insensitive lookup, got %v", got)
	}
}

func TestCatalogLabels(t *testing.T) {
	labels := map[CondimentKind]string{Milk: "Milk", Mocha: "Mocha", Soy: "Soy", Whip: "Whip", Caramel: "Caramel"}
	for kind, label := range labels {
		if kind.Label() != label {
			t.Fatalf("expected label %q, got %q", label, kind.Label())
		}
	}
	if CondimentKind(42).Label() != "Unknown Condiment" || DrinkKind(42).Name() != "Unknown Beverage" {
		t.Fatalf("unexpected out of range names")
	}
	if !DrinkKind(42).Price().IsZero() || !CondimentKind(42).Surcharge(Small).IsZero() {
		t.Fatalf("expected zero prices out of range")
	}
}

func TestReceiptSnapshot(t *testing.T) {
	chain, err := Build(Request{Base: "darkroast", Size: "venti", Condiments: []string{"soy", "mocha"}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	receipt := NewReceipt(chain)
	chain.SetSize(Small)

	if receipt.Size != Large {
		t.Fatalf("expected receipt to keep Large, got %v", receipt.Size)
	}
	snapshot := receipt.Snapshot()
	if snapshot["base"] != "darkroast" || snapshot["size"] != "venti" {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
	if snapshot["cents"] != int64(149) || snapshot["cost"] != "1.49" || snapshot["layers"] != int64(2) {
		t.Fatalf("unexpected money fields %+v", snapshot)
	}
	keys, ok := snapshot["condiments"].([]string)
	if !ok || len(keys) != 2 || keys[0] != "soy" || keys[1] != "mocha" {
		t.Fatalf("unexpected condiments %v", snapshot["condiments"])
	}
	if receipt.ID == "" || NewReceipt(chain).ID == receipt.ID {
		t.Fatalf("expected unique receipt ids")
	}
	if FormatMoney(receipt.Cost) != "$1.49" {
		t.Fatalf("unexpected money format %q", FormatMoney(receipt.Cost))
	}
}
