/*
Package searchtree implements an ordered key-value map as a plain binary
search tree.

Simple example:

	t := searchtree.New[int, string]()
	t.Insert(5, "five")
	t.Insert(3, "three")
	v := t.Find(3)
	if v.Ok {
		log.Print(*v.Value)
	}
	t.WriteLevels(os.Stdout)

No rebalancing is done: tree height, and with it the cost and recursion
depth of every operation, depends entirely on insertion order. Sorted input
degrades the tree to a linked list. Callers that can't control insertion
order probably want a B-tree instead.
*/
package searchtree
