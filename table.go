package wordprobe

import (
	"errors"
	"math/big"
)

var (
	ErrCapacityTooSmall = errors.New("wordprobe: capacity must be at least 2")
	ErrTableFull        = errors.New("wordprobe: table is full")
	ErrNotFound         = errors.New("wordprobe: key was never inserted")
	ErrNoDifferentKey   = errors.New("wordprobe: no different key on this stride cycle")
)

type slot struct {
	key      string
	occupied bool
}

// Table is a fixed-capacity open-addressing table mapping string keys to slot
// positions. Collisions are resolved by unit-stride linear probing; a second
// hash-derived quantity, the step, drives only the FindDifferent walk. The
// table never grows and a placed key is never relocated or removed, so slot
// assignments stay stable for the lifetime of the table. Not safe for
// concurrent use.
type Table struct {
	slots []slot

	// key<->slot kept in lock-step for O(1) lookups in both directions.
	keyIndex map[string]int
	indexKey map[int]string

	capacity *big.Int
	stride   *big.Int // capacity-1, the modulus for step derivation

	hashFunc HashFunc
}

type Option func(t *Table)

// WithHashFunc overrides the default SHA-256 digest.
func WithHashFunc(f HashFunc) Option {
	return func(t *Table) {
		t.hashFunc = f
	}
}

// New returns an empty table with the given number of slots. Capacity must be
// at least 2: step derivation takes a remainder modulo capacity-1.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity < 2 {
		return nil, ErrCapacityTooSmall
	}

	t := &Table{
		slots:    make([]slot, capacity),
		keyIndex: make(map[string]int),
		indexKey: make(map[int]string),
		capacity: big.NewInt(int64(capacity)),
		stride:   big.NewInt(int64(capacity - 1)),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = defaultHashFunc
	}

	return t, nil
}

// PrimaryIndex returns the first candidate slot for key: its digest modulo
// the table capacity. Pure function of the key text and capacity.
func (t *Table) PrimaryIndex(key string) int {
	idx, _ := t.derive(key)
	return idx
}

// Step returns key's stride in [1, capacity-1], derived from the digest's
// higher bits. It is consumed only by FindDifferent; insertion always probes
// with unit stride.
func (t *Table) Step(key string) int {
	_, step := t.derive(key)
	return step
}

func (t *Table) derive(key string) (idx, step int) {
	var q, r, s big.Int

	q.DivMod(t.hashFunc(key), t.capacity, &r)
	s.Mod(&q, t.stride)

	return int(r.Int64()), 1 + int(s.Int64())
}

// Put inserts key, scanning consecutive slots from the key's primary index
// until an empty one is found. Inserting a key that is already present is a
// no-op. Returns ErrTableFull once a full cyclic scan finds no empty slot;
// the table is unchanged in that case.
func (t *Table) Put(key string) error {
	if _, ok := t.keyIndex[key]; ok {
		return nil
	}

	origin, _ := t.derive(key)
	n := len(t.slots)

	for probe := range n {
		idx := (origin + probe) % n
		if t.slots[idx].occupied {
			continue
		}

		t.slots[idx] = slot{key: key, occupied: true}
		t.keyIndex[key] = idx
		t.indexKey[idx] = key

		return nil
	}

	return ErrTableFull
}

// PutAll inserts every key in order, stopping at the first error. Duplicates
// within keys collapse silently via Put's idempotence.
func (t *Table) PutAll(keys []string) error {
	for _, key := range keys {
		if err := t.Put(key); err != nil {
			return err
		}
	}

	return nil
}

// SlotOf returns the slot key was placed in, or false if it was never
// inserted.
func (t *Table) SlotOf(key string) (int, bool) {
	idx, ok := t.keyIndex[key]
	return idx, ok
}

// KeyAt returns the key occupying the given slot. An empty or out-of-range
// slot is a plain miss, not an error.
func (t *Table) KeyAt(slot int) (string, bool) {
	key, ok := t.indexKey[slot]
	return key, ok
}

// Match is a successful FindDifferent result: some other occupied slot and
// the key it holds.
type Match struct {
	Key  string
	Slot int
}

// FindDifferent strides through the table from key's primary index using
// key's step, wrapping modulo capacity, and returns the first occupied slot
// holding a key other than key itself. Returns ErrNotFound if key was never
// inserted (no probing is performed) and ErrNoDifferentKey once the walk
// arrives back at its starting slot empty-handed.
//
// The walk visits only the slots on key's stride cycle. When the step shares
// a factor with the capacity that cycle is a strict subset of the table, so
// ErrNoDifferentKey does not mean the table holds no other key — only that
// none is reachable on this cycle. Either way the walk closes within
// capacity hops.
func (t *Table) FindDifferent(key string) (Match, error) {
	if _, ok := t.keyIndex[key]; !ok {
		return Match{}, ErrNotFound
	}

	origin, step := t.derive(key)
	n := len(t.slots)
	start := (origin + step) % n

	for cursor := start; ; {
		if s := t.slots[cursor]; s.occupied && s.key != key {
			return Match{Key: s.key, Slot: cursor}, nil
		}

		cursor = (cursor + step) % n
		if cursor == start {
			return Match{}, ErrNoDifferentKey
		}
	}
}

// Len returns the number of occupied slots.
func (t *Table) Len() int {
	return len(t.keyIndex)
}

// Cap returns the total number of slots.
func (t *Table) Cap() int {
	return len(t.slots)
}

func (t *Table) Stats() Stats {
	return Stats{
		Size:     len(t.keyIndex),
		Capacity: len(t.slots),
		Free:     len(t.slots) - len(t.keyIndex),
	}
}
