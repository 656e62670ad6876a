package searchtree

import (
	"cmp"

	g "github.com/anacrolix/generics"
)

// Entry is the key-value pair stored at each node. Keys order the tree,
// values are payload.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

type node[K cmp.Ordered, V any] struct {
	entry Entry[K, V]
	left  *node[K, V]
	right *node[K, V]
}

// Tree is an ordered map over K's standard Go ordering. The zero value is an
// empty tree ready to use. Not safe for concurrent use, the caller
// synchronizes.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// NewWith returns a tree holding just the given entry at the root.
func NewWith[K cmp.Ordered, V any](key K, value V) *Tree[K, V] {
	return &Tree[K, V]{
		root: &node[K, V]{entry: Entry[K, V]{key, value}},
		size: 1,
	}
}

func (me *Tree[K, V]) Len() int {
	return me.size
}

func (me *Tree[K, V]) Empty() bool {
	return me.size == 0
}

// Root returns the entry at the root, or None if the tree is empty. Which
// key sits at the root depends on insertion and erase history.
func (me *Tree[K, V]) Root() (_ g.Option[Entry[K, V]]) {
	if me.root == nil {
		return
	}
	return g.Some(me.root.entry)
}

// Min returns the entry with the smallest key, or None if the tree is empty.
func (me *Tree[K, V]) Min() (_ g.Option[Entry[K, V]]) {
	if me.root == nil {
		return
	}
	return g.Some(minNode(me.root).entry)
}

// Max returns the entry with the largest key, or None if the tree is empty.
func (me *Tree[K, V]) Max() (_ g.Option[Entry[K, V]]) {
	if me.root == nil {
		return
	}
	n := me.root
	for n.right != nil {
		n = n.right
	}
	return g.Some(n.entry)
}

// The minimum is the furthest left descendant. Callers guarantee n is not
// nil.
func minNode[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (me *Tree[K, V]) find(key K) *node[K, V] {
	n := me.root
	for n != nil {
		switch {
		case key < n.entry.Key:
			n = n.left
		case key > n.entry.Key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func (me *Tree[K, V]) Contains(key K) bool {
	return me.find(key) != nil
}

// Find returns a pointer to the value stored under key, through which the
// value may be mutated in place. None if the key is absent.
func (me *Tree[K, V]) Find(key K) (_ g.Option[*V]) {
	n := me.find(key)
	if n == nil {
		return
	}
	return g.Some(&n.entry.Value)
}

// Insert adds a new entry, descending left for smaller keys and right for
// larger until an empty slot is reached. If the key is already present
// nothing happens: no node is created and the existing value is NOT
// replaced. Use Find to update a value in place. Returns whether a node was
// created.
func (me *Tree[K, V]) Insert(key K, value V) (inserted bool) {
	me.root = me.insert(me.root, key, value, &inserted)
	return
}

func (me *Tree[K, V]) insert(n *node[K, V], key K, value V, inserted *bool) *node[K, V] {
	if n == nil {
		me.size++
		*inserted = true
		return &node[K, V]{entry: Entry[K, V]{key, value}}
	}
	switch {
	case key < n.entry.Key:
		n.left = me.insert(n.left, key, value, inserted)
	case key > n.entry.Key:
		n.right = me.insert(n.right, key, value, inserted)
	}
	return n
}

// Erase removes the entry for key if present. A node with two children isn't
// unlinked itself: its entry is overwritten with the in-order successor's
// (the minimum of the right subtree), and the successor's node is erased
// from the right subtree instead. The successor has no left child so that
// inner erase bottoms out in the splice cases.
func (me *Tree[K, V]) Erase(key K) (erased bool) {
	me.root = me.erase(me.root, key, &erased)
	return
}

func (me *Tree[K, V]) erase(n *node[K, V], key K, erased *bool) *node[K, V] {
	if n == nil {
		return nil
	}
	switch {
	case key < n.entry.Key:
		n.left = me.erase(n.left, key, erased)
	case key > n.entry.Key:
		n.right = me.erase(n.right, key, erased)
	case n.left != nil && n.right != nil:
		n.entry = minNode(n.right).entry
		n.right = me.erase(n.right, n.entry.Key, erased)
	default:
		child := n.left
		if child == nil {
			child = n.right
		}
		n.left = nil
		n.right = nil
		me.size--
		*erased = true
		return child
	}
	return n
}

// Clear releases every node, children before parents, leaving the tree
// empty. Fine to call on an already empty tree.
func (me *Tree[K, V]) Clear() {
	clearNode(me.root)
	me.root = nil
	me.size = 0
}

func clearNode[K cmp.Ordered, V any](n *node[K, V]) {
	if n == nil {
		return
	}
	clearNode(n.left)
	clearNode(n.right)
	n.left = nil
	n.right = nil
}

// Clone returns a deep copy. The copy owns all its nodes, mutating either
// tree never affects the other.
func (me *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root: cloneNode(me.root),
		size: me.size,
	}
}

func cloneNode[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	return &node[K, V]{
		entry: n.entry,
		left:  cloneNode(n.left),
		right: cloneNode(n.right),
	}
}

// CopyFrom replaces me's contents with a deep copy of other's. Copying a
// tree from itself is a no-op.
func (me *Tree[K, V]) CopyFrom(other *Tree[K, V]) {
	if me == other {
		return
	}
	me.Clear()
	me.root = cloneNode(other.root)
	me.size = other.size
}

// MoveFrom replaces me's contents with other's, leaving other empty and
// reusable. No nodes are copied. Moving a tree from itself is a no-op.
func (me *Tree[K, V]) MoveFrom(other *Tree[K, V]) {
	if me == other {
		return
	}
	me.Clear()
	me.root = other.root
	me.size = other.size
	other.root = nil
	other.size = 0
}
