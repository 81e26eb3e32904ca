package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/remit/errors"
)

///////////////////////////////////////////////////////
// From Items to Iterator

// ascendBtree collects all cached items within the range in ascending order.
//
// Items are copied out of the tree right away, so that releasing an iterator
// never races with writes to the cache.
func ascendBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	var items []btree.Item
	insert := func(item btree.Item) bool {
		items = append(items, item)
		return true
	}

	if start == nil && end == nil {
		bt.Ascend(insert)
	} else if start == nil { // end != nil
		bt.AscendLessThan(entry{key: end}, insert)
	} else if end == nil { // start != nil
		bt.AscendGreaterOrEqual(entry{key: start}, insert)
	} else { // both != nil
		bt.AscendRange(entry{key: start}, entry{key: end}, insert)
	}
	return items
}

// descendBtree collects all cached items within the range in descending
// order. Start is inclusive and end is exclusive, just like for ascendBtree.
func descendBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	var items []btree.Item
	insert := func(item btree.Item) bool {
		items = append(items, item)
		return true
	}

	if start == nil && end == nil {
		bt.Descend(insert)
	} else if start == nil { // end != nil
		bt.DescendLessOrEqual(upperBound(end), insert)
	} else if end == nil { // start != nil
		bt.DescendGreaterThan(upperBound(start), insert)
	} else { // both != nil
		bt.DescendRange(upperBound(end), upperBound(start), insert)
	}
	return items
}

// itemIter combines the items cached in a btree with the content of the
// parent store, taking into consideration overwrites and deletes.
type itemIter struct {
	items   []btree.Item
	reverse bool

	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent Iterator
	// the next parent entry, read ahead to compare keys
	pKey, pValue []byte
	pDone        bool
	pLoaded      bool
}

var _ Iterator = (*itemIter)(nil)

func newItemIter(items []btree.Item, parent Iterator, reverse bool) *itemIter {
	return &itemIter{
		items:   items,
		reverse: reverse,
		parent:  parent,
	}
}

// Next returns the next entry of the combined view and moves the cursor.
func (i *itemIter) Next() (key, value []byte, err error) {
	for {
		if err := i.loadParent(); err != nil {
			return nil, nil, err
		}

		switch i.firstKey() {
		case none:
			return nil, nil, errors.Wrap(errors.ErrIteratorDone, "btree iterator")
		case parent:
			key, value := i.pKey, i.pValue
			i.pLoaded = false
			return key, value, nil
		case both:
			// our value shadows the parent one
			i.pLoaded = false
			fallthrough
		case us:
			e := i.items[0].(entry)
			i.items = i.items[1:]
			if !e.deleted {
				return e.key, e.value, nil
			}
		}
	}
}

// Release releases the Iterator.
func (i *itemIter) Release() {
	i.items = nil
	if i.parent != nil {
		i.parent.Release()
	}
}

// loadParent reads ahead the next parent entry if not already done.
func (i *itemIter) loadParent() error {
	if i.pLoaded || i.pDone {
		return nil
	}
	if i.parent == nil {
		i.pDone = true
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.pKey, i.pValue, i.pLoaded = key, value, true
		return nil
	case errors.ErrIteratorDone.Is(err):
		i.pDone = true
		return nil
	default:
		return err
	}
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

// firstKey selects the iterator with the lowest key is any
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if !i.pLoaded {
		if len(i.items) == 0 {
			return none
		}
		return us
	} else if len(i.items) == 0 {
		return parent
	}

	// both are valid... compare keys....
	cmp := bytes.Compare(i.pKey, itemKey(i.items[0]))
	if i.reverse {
		cmp = -cmp
	}
	if cmp < 0 {
		return parent
	} else if cmp > 0 {
		return us
	}
	return both
}
