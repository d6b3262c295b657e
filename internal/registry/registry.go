// Package registry contains the primary attribute registry implementation.
package registry

import (
	"sync"

	"github.com/chetna1726/attribute-type-casting/internal/casting"
	"github.com/chetna1726/attribute-type-casting/internal/index"
	"github.com/chetna1726/attribute-type-casting/internal/iterator"
	. "github.com/chetna1726/attribute-type-casting/internal/types"
)

// Registry is a mapping of attribute idents to their descriptors. Registries
// are safe for concurrent use: registrations serialize on a write lock and
// apply to a clone swapped in whole, so snapshots already read never change.
type Registry struct {
	lock sync.RWMutex
	idx  index.Index
}

// NewRegistry returns an empty registry backed by a btree of the given
// degree.
func NewRegistry(degree int) (reg *Registry) {
	reg = &Registry{idx: index.NewBTreeIndex(degree)}
	return
}

// Register records the given attribute declarations, resolving symbolic type
// names against the casting table. A declaration for an extant ident
// replaces its descriptor: the last registration wins. Either all of the
// declarations register or, on the first invalid one, none do.
//
// Registration applies instantly: records constructed afterwards see it,
// records constructed before do not.
func (reg *Registry) Register(attrs ...Attr) (err error) {
	resolved := make([]Attr, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Ident == "" {
			err = NewError("registry.invalidIdent", "attr", attr)
			return
		}
		if attr.Type == nil {
			if attr.TypeName == "" {
				err = NewError("registry.untypedAttr", "ident", attr.Ident)
				return
			}
			attr.Type, err = casting.Lookup(attr.TypeName)
			if err != nil {
				return
			}
		}
		if attr.Default != nil {
			switch attr.Default.(type) {
			case Literal:
			case Producer:
			default:
				err = NewError("registry.invalidDefault", "ident", attr.Ident, "default", attr.Default)
				return
			}
		}
		resolved = append(resolved, attr)
	}
	reg.lock.Lock()
	defer reg.lock.Unlock()
	idx := reg.idx.Clone()
	for _, attr := range resolved {
		idx.Insert(attr)
	}
	reg.idx = idx
	return
}

// Read returns a snapshot of the current registrations.
func (reg *Registry) Read() (snapshot *Snapshot) {
	reg.lock.RLock()
	defer reg.lock.RUnlock()
	snapshot = &Snapshot{idx: reg.idx}
	return
}

// Snapshot is an immutable set of attribute descriptors. Snapshots are safe
// for concurrent use.
type Snapshot struct {
	idx index.Index
}

// Lookup resolves the descriptor registered for the ident.
func (snapshot *Snapshot) Lookup(ident Ident) (attr Attr, err error) {
	attr, extant := snapshot.idx.Find(ident)
	if !extant {
		err = NewError(ErrUnknownAttribute.Code, "ident", ident)
	}
	return
}

// Select returns an ascending iterator over the descriptors.
func (snapshot *Snapshot) Select() (iter *iterator.Iterator[Attr]) {
	iter = snapshot.idx.Select()
	return
}

// Len returns the number of registered attributes.
func (snapshot *Snapshot) Len() (n int) {
	n = snapshot.idx.Len()
	return
}
