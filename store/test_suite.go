package store

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest/assert"
)

// TestSuite runs the same set of checks against any CacheableKVStore. Both
// the in-memory btree store and the iavl adapter use it.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a function releasing it.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet checks that changes made in a cache layer are only visible in the
// parent after Write.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	owner, wallet := []byte("owner"), []byte("alice")
	s.AssertGetHas(t, base, owner, nil, false)
	assert.Nil(t, base.Set(owner, wallet))
	s.AssertGetHas(t, base, owner, wallet, true)

	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, owner, wallet, true)

	escrow, amount := []byte("escrow"), []byte("7")
	assert.Nil(t, cache.Set(escrow, amount))
	s.AssertGetHas(t, cache, escrow, amount, true)
	s.AssertGetHas(t, base, escrow, nil, false)

	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, owner, wallet, true)
	s.AssertGetHas(t, base, escrow, amount, true)

	dropped := base.CacheWrap()
	assert.Nil(t, dropped.Set([]byte("event"), []byte("deposit")))
	dropped.Discard()
	s.AssertGetHas(t, base, []byte("event"), nil, false)

	removal := base.CacheWrap()
	assert.Nil(t, removal.Delete(owner))
	s.AssertGetHas(t, removal, owner, nil, false)
	s.AssertGetHas(t, base, owner, wallet, true)
	assert.Nil(t, removal.Write())
	s.AssertGetHas(t, base, owner, nil, false)
	s.AssertGetHas(t, base, escrow, amount, true)
}

// CacheConflicts checks that a cache layer can overwrite and delete values
// held by its parent.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	ks := randKeys(4, 16)
	vs := randKeys(4, 40)

	cases := map[string]struct {
		parentOps []Op
		childOps  []Op
		// Key is queried, Value is expected. A nil value means missing.
		parentWant []Model
		childWant  []Model
	}{
		"overwrite one, delete another, add a third": {
			parentOps:  []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			childOps:   []Op{SetOp(ks[1], vs[0]), SetOp(ks[3], vs[3]), DelOp(ks[2])},
			parentWant: []Model{Pair(ks[1], vs[1]), Pair(ks[2], vs[2]), Pair(ks[3], nil)},
			childWant:  []Model{Pair(ks[1], vs[0]), Pair(ks[2], nil), Pair(ks[3], vs[3])},
		},
		"delete then set again": {
			parentOps:  []Op{SetOp(ks[0], vs[0])},
			childOps:   []Op{DelOp(ks[0]), SetOp(ks[0], vs[1])},
			parentWant: []Model{Pair(ks[0], vs[0])},
			childWant:  []Model{Pair(ks[0], vs[1])},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			for _, op := range tc.parentOps {
				assert.Nil(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				assert.Nil(t, op.Apply(child))
			}

			for _, q := range tc.parentWant {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
			for _, q := range tc.childWant {
				s.AssertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			assert.Nil(t, child.Write())
			for _, q := range tc.childWant {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
		})
	}
}

// Iteration checks that a cache layer lists its own entries merged with the
// parent ones, child values shadowing parent values and deletes hiding
// them. Bucket listings are built on this.
func (s *TestSuite) Iteration(t *testing.T) {
	key := func(i int) []byte { return []byte(fmt.Sprintf("escrow:%02d", i)) }

	base, cleanup := s.makeBase()
	defer cleanup()
	for i := 0; i < 6; i++ {
		assert.Nil(t, base.Set(key(i), []byte("parent")))
	}
	assert.Nil(t, base.Set([]byte("other"), []byte("x")))

	child := base.CacheWrap()
	assert.Nil(t, child.Set(key(1), []byte("child")))
	assert.Nil(t, child.Delete(key(2)))
	assert.Nil(t, child.Set(key(7), []byte("child")))
	assert.Nil(t, child.Delete(key(5)))

	want := []Model{
		Pair(key(0), []byte("parent")),
		Pair(key(1), []byte("child")),
		Pair(key(3), []byte("parent")),
		Pair(key(4), []byte("parent")),
		Pair(key(7), []byte("child")),
	}

	it, err := child.Iterator([]byte("escrow:"), []byte("escrow;"))
	assert.Nil(t, err)
	assertIterates(t, it, want)

	it, err = child.Iterator(key(1), key(4))
	assert.Nil(t, err)
	assertIterates(t, it, want[1:3])

	it, err = child.ReverseIterator([]byte("escrow:"), []byte("escrow;"))
	assert.Nil(t, err)
	assertIterates(t, it, []Model{want[4], want[3], want[2], want[1], want[0]})
}

// Rollback checks that a discarded cache leaves no trace in its parent, even
// after more writes were done on top of it. This is what every contract
// operation relies on when it fails half way.
func (s *TestSuite) Rollback(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("balance"), []byte("100")
	assert.Nil(t, base.Set(k, v))

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set(k, []byte("0")))
	nested := cache.CacheWrap()
	assert.Nil(t, nested.Set([]byte("event"), []byte("withdrawal")))
	assert.Nil(t, nested.Write())
	s.AssertGetHas(t, cache, []byte("event"), []byte("withdrawal"), true)
	cache.Discard()

	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, []byte("event"), nil, false)

	// a discarded cache must not write anything even if asked to
	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, k, v, true)
}

// AssertGetHas checks that Get and Has agree on the state of key.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func assertIterates(t testing.TB, it Iterator, want []Model) {
	t.Helper()
	defer it.Release()
	for i, w := range want {
		key, value, err := it.Next()
		if err != nil {
			t.Fatalf("entry %d: %+v", i, err)
		}
		assert.Equal(t, string(w.Key), string(key))
		assert.Equal(t, w.Value, value)
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want ErrIteratorDone, got %+v", err)
	}
}

//nolint
func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = make([]byte, size)
		rand.Read(res[i])
	}
	return res
}
