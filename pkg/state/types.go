package state

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	brew "github.com/goliatone/go-brew"
)

var ErrETagMismatch = errors.New("state: etag mismatch")

var ErrMissingID = errors.New("state: receipt id is required")

// Meta is storage-owned metadata used for audit and concurrency control.
type Meta struct {
	ETag      string            `json:"etag,omitempty"`
	UpdatedAt time.Time         `json:"updated_at,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Store loads and saves one receipt at a time.
type Store interface {
	Load(ctx context.Context, id string) (receipt brew.Receipt, meta Meta, ok bool, err error)
	Save(ctx context.Context, receipt brew.Receipt, meta Meta) (Meta, error)
	List(ctx context.Context) ([]brew.Receipt, error)
}

// Totals summarises a set of receipts.
type Totals struct {
	Orders int
	Cost   decimal.Decimal
	ByBase map[brew.DrinkKind]int
}

// Tally sums every receipt held by store.
func Tally(ctx context.Context, store Store) (Totals, error) {
	receipts, err := store.List(ctx)
	if err != nil {
		return Totals{}, err
	}
	totals := Totals{Cost: decimal.Zero, ByBase: map[brew.DrinkKind]int{}}
	for _, receipt := range receipts {
		totals.Orders++
		totals.Cost = totals.Cost.Add(receipt.Cost)
		totals.ByBase[receipt.Base]++
	}
	return totals, nil
}
