package store

import (
	"bytes"

	"github.com/iov-one/xswap/errors"
)

// cacheIterator merges the items written to a cache wrap with the
// iterator of the store below it. Cached items shadow parent entries with
// the same key and deleted items hide them.
type cacheIterator struct {
	items []keyer
	idx   int

	parent     Iterator
	peekKey    []byte
	peekValue  []byte
	hasPeek    bool
	parentDone bool

	descending bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []keyer, parent Iterator, descending bool) *cacheIterator {
	return &cacheIterator{
		items:      items,
		parent:     parent,
		descending: descending,
	}
}

// Next returns the next visible key value pair or ErrIteratorDone.
func (c *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if err := c.peekParent(); err != nil {
			return nil, nil, err
		}

		var ours keyer
		if c.idx < len(c.items) {
			ours = c.items[c.idx]
		}

		switch {
		case ours == nil && !c.hasPeek:
			return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache")
		case ours == nil:
			return c.takeParent()
		case !c.hasPeek:
			c.idx++
			if item, ok := ours.(setItem); ok {
				return item.Key(), item.value, nil
			}
			continue
		}

		cmp := bytes.Compare(ours.Key(), c.peekKey)
		if c.descending {
			cmp = -cmp
		}
		if cmp > 0 {
			return c.takeParent()
		}
		if cmp == 0 {
			// The cached item overrides the parent entry.
			c.hasPeek = false
		}
		c.idx++
		if item, ok := ours.(setItem); ok {
			return item.Key(), item.value, nil
		}
	}
}

func (c *cacheIterator) peekParent() error {
	if c.hasPeek || c.parentDone {
		return nil
	}
	k, v, err := c.parent.Next()
	if err != nil {
		if errors.ErrIteratorDone.Is(err) {
			c.parentDone = true
			return nil
		}
		return err
	}
	c.peekKey, c.peekValue, c.hasPeek = k, v, true
	return nil
}

func (c *cacheIterator) takeParent() ([]byte, []byte, error) {
	c.hasPeek = false
	return c.peekKey, c.peekValue, nil
}

// Release releases the parent iterator and drops the cached snapshot.
func (c *cacheIterator) Release() {
	c.parent.Release()
	c.items = nil
}
