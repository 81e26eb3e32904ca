package remittest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/store"
	"github.com/iov-one/remit/store/iavl"
)

// MemStore returns an in-memory store, ready to be used by a contract.
func MemStore() remit.CacheableKVStore {
	return store.MemStore()
}

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the command line client is using.
func CommitKVStore(t testing.TB) (db iavl.CommitStore, cleanup func()) {
	t.Helper()
	dbpath, err := ioutil.TempDir("", "remittest-")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}

	db = iavl.NewCommitStore(dbpath, "db")
	if err := db.LoadLatestVersion(); err != nil {
		t.Fatalf("cannot load store: %s", err)
	}
	return db, func() {
		db.Close()
		os.RemoveAll(dbpath)
	}
}
