package state

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	brew "github.com/goliatone/go-brew"
)

// MemoryStore is an in-memory Store. ETags are per-store revision numbers.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]memoryRecord
	revision uint64
	now      func() time.Time
}

type memoryRecord struct {
	receipt brew.Receipt
	meta    Meta
	seq     uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]memoryRecord{}, now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context, id string) (brew.Receipt, Meta, bool, error) {
	if id == "" {
		return brew.Receipt{}, Meta{}, false, ErrMissingID
	}
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return brew.Receipt{}, Meta{}, false, nil
	}
	return cloneReceipt(record.receipt), cloneMeta(record.meta), true, nil
}

// Save stores receipt. A non-empty meta.ETag must match the stored one.
func (s *MemoryStore) Save(_ context.Context, receipt brew.Receipt, meta Meta) (Meta, error) {
	if receipt.ID == "" {
		return Meta{}, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[receipt.ID]
	if meta.ETag != "" && (!ok || existing.meta.ETag != meta.ETag) {
		return Meta{}, ErrETagMismatch
	}

	s.revision++
	stored := cloneMeta(meta)
	stored.ETag = strconv.FormatUint(s.revision, 10)
	stored.UpdatedAt = s.now()

	seq := s.revision
	if ok {
		seq = existing.seq
	}
	s.records[receipt.ID] = memoryRecord{receipt: cloneReceipt(receipt), meta: stored, seq: seq}
	return cloneMeta(stored), nil
}

// List returns receipts in first-save order.
func (s *MemoryStore) List(_ context.Context) ([]brew.Receipt, error) {
	s.mu.RLock()
	records := make([]memoryRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })
	out := make([]brew.Receipt, 0, len(records))
	for _, record := range records {
		out = append(out, cloneReceipt(record.receipt))
	}
	return out, nil
}

func cloneReceipt(receipt brew.Receipt) brew.Receipt {
	out := receipt
	if receipt.Condiments != nil {
		out.Condiments = append([]brew.CondimentKind(nil), receipt.Condiments...)
	}
	return out
}

func cloneMeta(meta Meta) Meta {
	out := meta
	if meta.Extra == nil {
		return out
	}
	out.Extra = make(map[string]string, len(meta.Extra))
	for k, v := range meta.Extra {
		out.Extra[k] = v
	}
	return out
}
