/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets. Each bucket
contains only one type of record, addressed by its primary key.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket to store data
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One loads the record stored under key into dest. ErrNotFound is returned
// if there is none.
func (b Bucket) One(db xswap.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot get")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "%s %X: %s", b.name, key, err)
	}
	return nil
}

// Has returns true if a record is stored under key.
func (b Bucket) Has(db xswap.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot check")
	}
	return ok, nil
}

// Create saves the record only if the key is not used yet. Otherwise
// ErrDuplicate is returned and the stored record is untouched.
func (b Bucket) Create(db xswap.KVStore, key []byte, m Model) error {
	switch ok, err := b.Has(db, key); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrDuplicate, "%s %X", b.name, key)
	}
	return b.Put(db, key, m)
}

// Put validates and saves the record, overwriting any previous value.
func (b Bucket) Put(db xswap.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal")
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot set")
	}
	return nil
}

// Delete removes the record stored under key. ErrNotFound is returned if
// there is none.
func (b Bucket) Delete(db xswap.KVStore, key []byte) error {
	switch ok, err := b.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	if err := db.Delete(b.DBKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete")
	}
	return nil
}

// Iterate calls fn with every key (without the bucket prefix) and raw value
// stored in the bucket, in ascending key order. Iteration stops at the first
// error returned by fn.
func (b Bucket) Iterate(db xswap.ReadOnlyKVStore, fn func(key, value []byte) error) error {
	start := b.DBKey(nil)
	end := append([]byte(b.name), ':'+1)
	it, err := db.Iterator(start, end)
	if err != nil {
		return errors.Wrap(err, "cannot iterate")
	}
	defer it.Release()

	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(key[len(start):], value); err != nil {
			return err
		}
	}
}
