// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"container/heap"

	"github.com/dsnet/hufftext/internal/errors"
)

// Node is a single node of a Tree. A leaf has Left and Right set to -1.
// An internal node refers to its children by their index in the tree.
type Node struct {
	Symbol rune  // Only valid for leaves
	Weight int64 // Symbol count, or the sum of the children's weights
	Left   int
	Right  int
}

// IsLeaf reports whether n is a leaf.
func (n Node) IsLeaf() bool { return n.Left < 0 }

// Tree is a Huffman tree stored as an arena of nodes addressed by index.
//
// The leaves occupy the first indexes in ascending symbol order. Every
// internal node is appended after both of its children, so the root is
// always the last node.
type Tree struct {
	nodes []Node
}

// BuildTree builds the Huffman tree for the given frequencies.
//
// The two lightest candidates are merged repeatedly; the first one removed
// becomes the left child. Candidates of equal weight are ordered by their
// index in the tree: leaves by ascending symbol, then merged nodes in the
// order they were created. This is the order a stable sort produces when
// each merged node is appended to the end of the candidate list.
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	if len(freqs) == 0 {
		return nil, errorf(errors.EmptyInput, "no symbols to encode")
	}

	syms := freqs.Symbols()
	t := &Tree{nodes: make([]Node, 0, 2*len(syms)-1)}
	cl := &candidateList{t: t}
	for _, s := range syms {
		if freqs[s] <= 0 {
			return nil, errorf(errors.Internal, "count %d is not positive", freqs[s]).For(s)
		}
		cl.idx = append(cl.idx, len(t.nodes))
		t.nodes = append(t.nodes, Node{Symbol: s, Weight: int64(freqs[s]), Left: -1, Right: -1})
	}
	heap.Init(cl)

	for cl.Len() > 1 {
		left := heap.Pop(cl).(int)
		right := heap.Pop(cl).(int)
		t.nodes = append(t.nodes, Node{
			Weight: t.nodes[left].Weight + t.nodes[right].Weight,
			Left:   left,
			Right:  right,
		})
		heap.Push(cl, len(t.nodes)-1)
	}
	log.Debugf("built tree of %d nodes over %d symbols", len(t.nodes), len(syms))
	return t, nil
}

// Root reports the index of the root node.
func (t *Tree) Root() int { return len(t.nodes) - 1 }

// Len reports the number of leaves.
func (t *Tree) Len() int { return (len(t.nodes) + 1) / 2 }

// Weight reports the weight of the root, which is the total symbol count.
func (t *Tree) Weight() int64 { return t.nodes[t.Root()].Weight }

// Node returns the node at index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Nodes returns a copy of every node in the tree.
func (t *Tree) Nodes() []Node { return append([]Node(nil), t.nodes...) }

// candidateList is a min-heap of node indexes, ordered by weight and then
// by index.
type candidateList struct {
	t   *Tree
	idx []int
}

func (cl *candidateList) Len() int { return len(cl.idx) }

func (cl *candidateList) Less(i, j int) bool {
	a, b := cl.idx[i], cl.idx[j]
	wa, wb := cl.t.nodes[a].Weight, cl.t.nodes[b].Weight
	return wa < wb || (wa == wb && a < b)
}

func (cl *candidateList) Swap(i, j int) { cl.idx[i], cl.idx[j] = cl.idx[j], cl.idx[i] }

func (cl *candidateList) Push(x interface{}) { cl.idx = append(cl.idx, x.(int)) }

func (cl *candidateList) Pop() interface{} {
	n := len(cl.idx)
	i := cl.idx[n-1]
	cl.idx = cl.idx[:n-1]
	return i
}
