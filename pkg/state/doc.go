// Package state keeps priced receipts behind a small Store contract.
//
// A Store only loads and saves single receipts keyed by receipt id. Writers
// that pass the ETag they last observed get optimistic concurrency: a stale
// ETag fails with ErrETagMismatch and leaves the stored receipt untouched.
// Tally folds a set of receipts into order totals.
package state
