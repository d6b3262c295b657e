// Package index provides for attribute descriptor indexes implemented on
// btrees.
package index

import (
	"github.com/chetna1726/attribute-type-casting/internal/iterator"
	. "github.com/chetna1726/attribute-type-casting/internal/types"
	"github.com/google/btree"
)

// Index is a sorted set of attribute descriptors, where the basis for
// uniqueness is the ident. An index will replace the extant descriptor if a
// new one is inserted for the same ident.
//
// Index instances are safe for concurrent reads, not for concurrent writes,
// including cloning.
type Index interface {
	// Find returns the descriptor with the given ident, if any is present in
	// the indexed set.
	Find(ident Ident) (attr Attr, extant bool)
	// Insert ensures the given descriptor is the one present for its ident,
	// returning true if it replaced an extant descriptor.
	Insert(attr Attr) (extant bool)
	// Clone returns a copy of the index. Both instances are hereafter safe
	// to change without affecting the other.
	Clone() (clone Index)
	// Select returns an ascending iterator over the descriptors.
	Select() (iter *iterator.Iterator[Attr])
	// Len returns the number of descriptors in the indexed set.
	Len() (n int)
}

type btreeIndex struct {
	tree *btree.BTreeG[Attr]
}

var _ Index = &btreeIndex{}

func lessAttr(a1 Attr, a2 Attr) bool {
	return a1.Ident < a2.Ident
}

// NewBTreeIndex returns a btree index of the given degree that sorts its set
// of descriptors by ident.
func NewBTreeIndex(degree int) (idx Index) {
	idx = &btreeIndex{tree: btree.NewG(degree, btree.LessFunc[Attr](lessAttr))}
	return
}

func (idx *btreeIndex) Find(ident Ident) (attr Attr, extant bool) {
	attr, extant = idx.tree.Get(Attr{Ident: ident})
	return
}

func (idx *btreeIndex) Insert(attr Attr) (extant bool) {
	_, extant = idx.tree.ReplaceOrInsert(attr)
	return
}

func (idx *btreeIndex) Clone() (clone Index) {
	clone = &btreeIndex{tree: idx.tree.Clone()}
	return
}

type selection struct {
	idx *btreeIndex
}

func (sel *selection) Each(accept iterator.Accept[Attr]) {
	sel.idx.tree.Ascend(func(attr Attr) bool {
		return accept(attr)
	})
}

func (idx *btreeIndex) Select() (iter *iterator.Iterator[Attr]) {
	iter = iterator.BuildIterator[Attr](&selection{idx})
	return
}

func (idx *btreeIndex) Len() (n int) {
	n = idx.tree.Len()
	return
}
