package store

import (
	"testing"
)

func makeMemStore() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestBTreeCacheGetSet(t *testing.T) {
	NewTestSuite(makeMemStore).GetSet(t)
}

func TestBTreeCacheConflicts(t *testing.T) {
	NewTestSuite(makeMemStore).CacheConflicts(t)
}

func TestBTreeCacheIteration(t *testing.T) {
	NewTestSuite(makeMemStore).Iteration(t)
}

func TestBTreeCacheRollback(t *testing.T) {
	NewTestSuite(makeMemStore).Rollback(t)
}

func TestBTreeCacheableOverEmptyStore(t *testing.T) {
	// nothing is ever stored below the cache layer
	devnull := BTreeCacheable{EmptyKVStore{}}
	NewTestSuite(func() (CacheableKVStore, func()) {
		return devnull.CacheWrap(), func() {}
	}).GetSet(t)
}
