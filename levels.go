package searchtree

import (
	"cmp"
	"fmt"
	"io"
	"iter"
)

// Levels enumerates entries grouped by depth: the root's level first, then
// each deeper level left to right. Empty levels don't occur and an empty
// tree yields nothing. The yielded slice is reused between levels, copy it
// if it needs to outlive the iteration.
func (me *Tree[K, V]) Levels() iter.Seq[[]Entry[K, V]] {
	return func(yield func([]Entry[K, V]) bool) {
		if me.root == nil {
			return
		}
		// A nil node queued after the last node of each level marks the
		// boundary with the next.
		q := []*node[K, V]{me.root, nil}
		var level []Entry[K, V]
		for {
			curr := q[0]
			q = q[1:]
			if curr == nil {
				if !yield(level) {
					return
				}
				level = level[:0]
				if len(q) == 0 {
					return
				}
				q = append(q, nil)
				continue
			}
			level = append(level, curr.entry)
			if curr.left != nil {
				q = append(q, curr.left)
			}
			if curr.right != nil {
				q = append(q, curr.right)
			}
		}
	}
}

// WriteLevels writes the level-by-level diagnostic view to w: one line per
// level, each entry's value followed by a space. Nothing is written for an
// empty tree.
func (me *Tree[K, V]) WriteLevels(w io.Writer) (err error) {
	for level := range me.Levels() {
		for _, e := range level {
			_, err = fmt.Fprintf(w, "%v ", e.Value)
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintln(w)
		if err != nil {
			return
		}
	}
	return
}

// Iter enumerates entries in ascending key order.
func (me *Tree[K, V]) Iter() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		inorder(me.root, yield)
	}
}

func inorder[K cmp.Ordered, V any](n *node[K, V], yield func(Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.entry) && inorder(n.right, yield)
}
