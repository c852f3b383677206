package weavetest

import (
	"os"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/store/leveldb"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the production instance is using.
func CommitKVStore(t testing.TB) (db xswap.CommitKVStore, cleanup func()) {
	t.Helper()
	dbpath, err := os.MkdirTemp("", "xswap")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	s, err := leveldb.Open(dbpath)
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot open store: %s", err)
	}
	return s, func() {
		s.Close()
		os.RemoveAll(dbpath)
	}
}
