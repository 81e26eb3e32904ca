package store

import (
	"testing"

	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest/assert"
)

// TestSliceIterator makes sure the basic slice iterator works.
func TestSliceIterator(t *testing.T) {
	const size = 10

	ks := randKeys(size, 8)
	vs := randKeys(size, 40)

	models := make([]Model, size)
	for i := 0; i < size; i++ {
		models[i] = Pair(ks[i], vs[i])
	}

	iter := NewSliceIterator(models)
	for i := 0; i < size; i++ {
		key, value, err := iter.Next()
		assert.Nil(t, err)
		assert.Equal(t, ks[i], key)
		assert.Equal(t, vs[i], value)
	}
	if _, _, err := iter.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want ErrIteratorDone, got %+v", err)
	}

	it := NewSliceIterator(models)
	it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("released iterator must be done, got %+v", err)
	}
}

func TestNonAtomicBatch(t *testing.T) {
	db := MemStore()
	b := db.NewBatch()
	assert.Nil(t, b.Set([]byte("a"), []byte("A")))
	assert.Nil(t, b.Set([]byte("b"), []byte("B")))
	assert.Nil(t, b.Delete([]byte("a")))

	// nothing is visible before the write
	has, err := db.Has([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	assert.Nil(t, b.Write())
	has, err = db.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
	got, err := db.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("B"), got)
}

func TestCacheIteratorReleaseRaceCondition(t *testing.T) {
	db := MemStore()
	assert.Nil(t, db.Set([]byte("a"), []byte("A")))
	cache := db.CacheWrap()

	it, err := cache.Iterator([]byte("a"), []byte("z"))
	if err != nil {
		t.Fatalf("cannot create iterator: %s", err)
	}
	// Release must be a synchronous operation.
	it.Release()
	assert.Nil(t, db.Delete([]byte("a")))
}
