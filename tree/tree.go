package tree

import "github.com/gscearl/go-dgtile/geom"

// MaxChildren is the branching factor ceiling: 2^dim children per refined
// node, so 8 in 3D and 4 in 2D. Unused slots stay nil.
const MaxChildren = 8

// Point locates a node in the refinement hierarchy: IJK indexes the uniform
// grid of blocks at the given Depth.
type Point struct {
	Depth int
	IJK   geom.Vec3i
}

// Node is one node of the adaptive tree. A node with no children is a leaf
// and corresponds to one block of the mesh.
type Node struct {
	Pt       Point
	Children [MaxChildren]*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	for _, c := range n.Children {
		if c != nil {
			return false
		}
	}
	return true
}

// Refine populates the node's 2^dim child slots one depth lower. Child slot
// c holds the child whose ijk offset is (c&1, c>>1&1, c>>2&1).
func (n *Node) Refine(dim int) {
	for c := 0; c < 1<<uint(dim); c++ {
		off := geom.Vec3i{c & 1, c >> 1 & 1, c >> 2 & 1}
		n.Children[c] = &Node{Pt: Point{
			Depth: n.Pt.Depth + 1,
			IJK:   n.Pt.IJK.Scale(2).Add(off),
		}}
	}
}

// Tree is the adaptive hierarchy: a base grid point, the dimensionality,
// and the root node.
type Tree struct {
	Base Point
	Dim  int
	Root *Node
}

// CollectLeaves gathers the tree's leaves by depth first descent in child
// slot order. The returned order is the canonical leaf order: every array
// derived from the leaves must index them identically, so consumers collect
// once and never re-traverse.
func CollectLeaves(t *Tree) []*Node {
	var leaves []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			leaves = append(leaves, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return leaves
}
