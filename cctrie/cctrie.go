// Package cctrie implements the LZW dictionary as a prefix tree keyed one
// byte per edge.
//
// Nodes live in a single slice and refer to each other by index, so the tree
// is never walked recursively. A node keeps its children in a sibling list
// until it has denseAt of them, then in a shared 256-slot table. Every node
// except the root stores a code; the root stands for the empty sequence and is
// never looked up. A sequence can only be inserted under an existing prefix.
package cctrie

// denseAt is the number of children at which a node switches from a sibling
// list to a 256-slot table.
const denseAt = 16

// Node .
type Node uint32

// Root is the node of the empty sequence.
const Root Node = 0

// node is kept small: a 24-bit dictionary holds 16M of them.
type node struct {
	code  uint32
	first Node   // head of the child list, Root when empty
	next  Node   // next sibling in the parent's list
	dense uint32 // 1 + index into Trie.tables, 0 while the node is sparse
	b     byte   // label of the edge from the parent
	kids  uint8  // children in the list
}

// Trie .
type Trie struct {
	nodes  []node
	tables []*[256]Node
}

// New returns an empty trie holding only the root.
func New() *Trie {
	return &Trie{
		nodes:  []node{{dense: 1}},
		tables: []*[256]Node{new([256]Node)},
	}
}

// Grow reserves room for n more sequences.
func (t *Trie) Grow(n int) {
	if n > cap(t.nodes)-len(t.nodes) {
		nodes := make([]node, len(t.nodes), len(t.nodes)+n)
		copy(nodes, t.nodes)
		t.nodes = nodes
	}
}

// Cap returns the number of sequences the trie can hold before it reallocates.
func (t *Trie) Cap() int {
	return cap(t.nodes) - 1
}

// Len returns the number of sequences stored.
func (t *Trie) Len() int {
	return len(t.nodes) - 1
}

// Child follows the edge labelled b out of n.
func (t *Trie) Child(n Node, b byte) (Node, bool) {
	nd := &t.nodes[n]
	if nd.dense != 0 {
		c := t.tables[nd.dense-1][b]
		return c, c != Root
	}
	for c := nd.first; c != Root; c = t.nodes[c].next {
		if t.nodes[c].b == b {
			return c, true
		}
	}
	return Root, false
}

// Code returns the code stored at n. The root has none.
func (t *Trie) Code(n Node) uint32 {
	return t.nodes[n].code
}

// Extend inserts the sequence of n followed by b under code. It fails if that
// sequence is already present.
func (t *Trie) Extend(n Node, b byte, code uint32) (Node, bool) {
	if _, ok := t.Child(n, b); ok {
		return Root, false
	}

	c := Node(len(t.nodes))
	t.nodes = append(t.nodes, node{code: code, b: b})

	nd := &t.nodes[n]
	if nd.dense != 0 {
		t.tables[nd.dense-1][b] = c
		return c, true
	}
	if nd.kids >= denseAt {
		table := new([256]Node)
		for k := nd.first; k != Root; k = t.nodes[k].next {
			table[t.nodes[k].b] = k
		}
		table[b] = c
		t.tables = append(t.tables, table)
		nd.dense = uint32(len(t.tables))
		return c, true
	}
	t.nodes[c].next = nd.first
	nd.first = c
	nd.kids++
	return c, true
}

// Find walks seq from the root and returns the node it ends at.
func (t *Trie) Find(seq []byte) (Node, bool) {
	if len(seq) == 0 {
		return Root, false
	}
	n := Root
	for _, b := range seq {
		c, ok := t.Child(n, b)
		if !ok {
			return Root, false
		}
		n = c
	}
	return n, true
}

// Insert stores seq under code. It returns false when seq is empty, when its
// prefix (all but the last byte) is absent, or when seq is already present.
func (t *Trie) Insert(seq []byte, code uint32) bool {
	if len(seq) == 0 {
		return false
	}
	parent := Root
	if len(seq) > 1 {
		p, ok := t.Find(seq[:len(seq)-1])
		if !ok {
			return false
		}
		parent = p
	}
	_, ok := t.Extend(parent, seq[len(seq)-1], code)
	return ok
}

// Lookup returns the code stored for seq.
func (t *Trie) Lookup(seq []byte) (uint32, bool) {
	n, ok := t.Find(seq)
	if !ok {
		return 0, false
	}
	return t.nodes[n].code, true
}

// Contains .
func (t *Trie) Contains(seq []byte) bool {
	_, ok := t.Find(seq)
	return ok
}
