package store

import (
	"fmt"
	"testing"

	"github.com/iov-one/xswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	k, v := []byte("posted"), []byte("swap")
	assertGet(t, base, k, nil)
	require.NoError(t, base.Set(k, v))
	assertGet(t, base, k, v)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assertGet(t, cache, k, v)

	// writing more data is only visible in the cache
	k2, v2 := []byte("locked"), []byte("swap")
	require.NoError(t, cache.Set(k2, v2))
	assertGet(t, cache, k2, v2)
	assertGet(t, base, k2, nil)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assertGet(t, base, k, v)
	assertGet(t, base, k2, v2)

	// we can discard one
	k3, v3 := []byte("balance"), []byte("100")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()
	assertGet(t, base, k3, nil)

	// and commit another
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	assertGet(t, base, k, nil)
	assertGet(t, base, k2, v2)
	assertGet(t, base, k3, nil)
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	parent := MemStore()
	require.NoError(t, parent.Set([]byte("a"), []byte("1")))
	require.NoError(t, parent.Set([]byte("b"), []byte("2")))

	child := parent.CacheWrap()
	require.NoError(t, child.Set([]byte("a"), []byte("11")))
	require.NoError(t, child.Set([]byte("c"), []byte("7")))
	require.NoError(t, child.Delete([]byte("b")))

	// the parent is unaffected
	assertGet(t, parent, []byte("a"), []byte("1"))
	assertGet(t, parent, []byte("b"), []byte("2"))
	assertGet(t, parent, []byte("c"), nil)

	// the child shows changes
	assertGet(t, child, []byte("a"), []byte("11"))
	assertGet(t, child, []byte("b"), nil)
	assertGet(t, child, []byte("c"), []byte("7"))

	require.NoError(t, child.Write())
	assertGet(t, parent, []byte("a"), []byte("11"))
	assertGet(t, parent, []byte("b"), nil)
	assertGet(t, parent, []byte("c"), []byte("7"))
}

func TestBTreeCacheIterator(t *testing.T) {
	parent := MemStore()
	for i := 0; i < 10; i++ {
		require.NoError(t, parent.Set(key(i), []byte{byte(i)}))
	}
	child := parent.CacheWrap()
	require.NoError(t, child.Delete(key(2)))
	require.NoError(t, child.Delete(key(3)))
	require.NoError(t, child.Set(key(4), []byte("four")))
	require.NoError(t, child.Set(key(12), []byte("twelve")))

	want := []Model{
		{key(0), []byte{0}},
		{key(1), []byte{1}},
		{key(4), []byte("four")},
		{key(5), []byte{5}},
		{key(6), []byte{6}},
		{key(7), []byte{7}},
		{key(8), []byte{8}},
		{key(9), []byte{9}},
		{key(12), []byte("twelve")},
	}

	it, err := child.Iterator(nil, nil)
	require.NoError(t, err)
	verifyIterator(t, want, it)

	it, err = child.Iterator(key(1), key(6))
	require.NoError(t, err)
	verifyIterator(t, want[1:4], it)

	it, err = child.ReverseIterator(nil, nil)
	require.NoError(t, err)
	verifyIterator(t, reverse(want), it)

	it, err = child.ReverseIterator(key(3), key(9))
	require.NoError(t, err)
	verifyIterator(t, reverse(want[2:7]), it)
}

func TestSliceIterator(t *testing.T) {
	models := []Model{
		{key(1), []byte("a")},
		{key(2), []byte("b")},
	}
	verifyIterator(t, models, NewSliceIterator(models))
}

func TestNonAtomicBatchReset(t *testing.T) {
	base := MemStore()
	b := NewNonAtomicBatch(base)
	require.NoError(t, b.Set([]byte("k"), []byte("v")))
	require.NoError(t, b.Delete([]byte("x")))
	assert.Len(t, b.ShowOps(), 2)
	b.Reset()
	require.NoError(t, b.Write())
	assertGet(t, base, []byte("k"), nil)
}

func key(i int) []byte {
	return []byte(fmt.Sprintf("key-%03d", i))
}

func assertGet(t *testing.T, db ReadOnlyKVStore, k, want []byte) {
	t.Helper()
	got, err := db.Get(k)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	has, err := db.Has(k)
	require.NoError(t, err)
	assert.Equal(t, want != nil, has)
}

func verifyIterator(t *testing.T, models []Model, iter Iterator) {
	t.Helper()
	defer iter.Release()
	for i := 0; i < len(models); i++ {
		k, v, err := iter.Next()
		require.NoError(t, err, "%d", i)
		assert.Equal(t, models[i].Key, k, "%d", i)
		assert.Equal(t, models[i].Value, v, "%d", i)
	}
	_, _, err := iter.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
}

// reverse returns a copy of the slice with elements in reverse order
func reverse(models []Model) []Model {
	max := len(models)
	res := make([]Model, max)
	for i := 0; i < max; i++ {
		res[i] = models[max-1-i]
	}
	return res
}
