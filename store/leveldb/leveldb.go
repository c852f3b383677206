/*
Package leveldb persists the state of the swap core in a goleveldb
database. All writes go through a cache wrap; committing the wrap writes a
single leveldb batch, so an operation is either fully stored or not at all.
*/
package leveldb

import (
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/store"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// CommitStore is a store.CommitKVStore backed by leveldb.
type CommitStore struct {
	db *leveldb.DB
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// Open opens or creates the database in the given directory.
func Open(dir string) (*CommitStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %q: %s", dir, err)
	}
	return &CommitStore{db: db}, nil
}

// OpenInMemory returns a store that lives only as long as the process.
func OpenInMemory() (*CommitStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open memory storage: %s", err)
	}
	return &CommitStore{db: db}, nil
}

// Get returns nil if the key does not exist.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	val, err := s.db.Get(key, nil)
	if err == ldberrors.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return val, nil
}

// Has checks if a key exists.
func (s *CommitStore) Has(key []byte) (bool, error) {
	ok, err := s.db.Has(key, nil)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// Iterator over [start, end) in ascending order.
func (s *CommitStore) Iterator(start, end []byte) (store.Iterator, error) {
	it := s.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)
	return &levelIterator{it: it}, nil
}

// ReverseIterator over [start, end) in descending order.
func (s *CommitStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	it := s.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)
	return &levelIterator{it: it, reverse: true}, nil
}

// CacheWrap returns a scratch pad whose Write commits one leveldb batch.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, &batch{db: s.db, b: new(leveldb.Batch)}, nil)
}

// Close releases the database files.
func (s *CommitStore) Close() error {
	return s.db.Close()
}

// batch is an atomic leveldb write.
type batch struct {
	db *leveldb.DB
	b  *leveldb.Batch
}

var _ store.Batch = (*batch)(nil)

func (b *batch) Set(key, value []byte) error {
	b.b.Put(key, value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.b.Delete(key)
	return nil
}

func (b *batch) Write() error {
	defer b.b.Reset()
	if err := b.db.Write(b.b, nil); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (b *batch) Reset() {
	b.b.Reset()
}

type levelIterator struct {
	it      iterator.Iterator
	reverse bool
	started bool
}

func (l *levelIterator) Next() ([]byte, []byte, error) {
	var ok bool
	switch {
	case !l.started && l.reverse:
		ok = l.it.Last()
	case !l.started:
		ok = l.it.First()
	case l.reverse:
		ok = l.it.Prev()
	default:
		ok = l.it.Next()
	}
	l.started = true
	if !ok {
		if err := l.it.Error(); err != nil {
			return nil, nil, errors.Wrap(errors.ErrDatabase, err.Error())
		}
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "leveldb")
	}
	// The iterator reuses its buffers.
	key := append([]byte(nil), l.it.Key()...)
	value := append([]byte(nil), l.it.Value()...)
	return key, value, nil
}

func (l *levelIterator) Release() {
	l.it.Release()
}
