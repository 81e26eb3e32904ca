package store

import (
	"bytes"

	"github.com/google/btree"
)

// freeListSize is the number of btree nodes kept for reuse between the
// layers of one cache stack.
const freeListSize = btree.DefaultFreeListSize

// BTreeCacheable gives any KVStore a btree backed CacheWrap.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a layer whose changes reach the store only on Write.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns a non persistent store, used by tests and by the command
// line client when no home directory is configured.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// BTreeCacheWrap keeps pending changes in an ordered tree on top of a read
// only parent. Every change is also queued on batch, which is flushed on
// Write.
type BTreeCacheWrap struct {
	pending *btree.BTree
	free    *btree.FreeList
	parent  ReadOnlyKVStore
	batch   Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap layers a cache over parent. All changes must go through
// batch, which is why parent is only read. Pass free to share node
// allocations with other layers, or nil to create a new list.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(freeListSize)
	}
	return BTreeCacheWrap{
		pending: btree.NewWithFreeList(2, free),
		free:    free,
		parent:  parent,
		batch:   batch,
	}
}

// CacheWrap stacks another layer on top of this one. Every contract
// operation runs inside such a layer so that a failure leaves no trace.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a batch that applies its operations to this layer.
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes all pending changes to the parent and empties the layer.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all pending changes. Writing afterwards is a no-op.
func (b BTreeCacheWrap) Discard() {
	b.pending.Clear(true)
	if d, ok := b.batch.(discarder); ok {
		d.discard()
	}
}

// discarder is implemented by batches that can drop queued operations.
type discarder interface {
	discard()
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.pending.ReplaceOrInsert(entry{key: key, value: value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	b.pending.ReplaceOrInsert(entry{key: key, deleted: true})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := b.lookup(key); ok {
		return e.value, nil
	}
	return b.parent.Get(key)
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e, ok := b.lookup(key); ok {
		return !e.deleted, nil
	}
	return b.parent.Has(key)
}

// lookup returns the pending entry for key, if this layer holds one.
// A deleted entry has no value.
func (b BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	item := b.pending.Get(entry{key: key})
	if item == nil {
		return entry{}, false
	}
	return item.(entry), true
}

// Iterator walks [start, end) in ascending order, merging this layer with
// the parent.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	p, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newItemIter(ascendBtree(b.pending, start, end), p, false), nil
}

// ReverseIterator walks [start, end) in descending order, merging this layer
// with the parent.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	p, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	return newItemIter(descendBtree(b.pending, start, end), p, true), nil
}

// entry is a pending change. A deleted entry shadows the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, itemKey(than)) < 0
}

// upperBound sorts right after the entry with the same key. Descending walks
// use it to turn an inclusive pivot into an exclusive one and back.
type upperBound []byte

var _ btree.Item = upperBound(nil)

func (u upperBound) Less(than btree.Item) bool {
	return bytes.Compare(u, itemKey(than)) <= 0
}

func itemKey(item btree.Item) []byte {
	switch i := item.(type) {
	case entry:
		return i.key
	case upperBound:
		return i
	}
	panic("unknown btree item")
}
