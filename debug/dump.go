// Package debug renders human-readable and DOT-graph dumps of a bvh.BVH.
// It is an external collaborator, not part of the core library: it only
// ever reads the bvh package's public traversal API and is never imported
// by bvh itself.
package debug

import (
	"fmt"
	"io"

	"github.com/jazwinn/go-bvh/bvh"
)

// DumpInfo writes a readable summary of b's overall shape followed by a
// per-node breakdown, in level order.
func DumpInfo(w io.Writer, b *bvh.BVH) {
	fmt.Fprintf(w, "GENERAL INFO:\n%20s %d\n%20s %d\n\n", "Depth:", b.Depth(), "Size:", b.Size())
	b.TraverseLevelOrder(func(n *bvh.Node) {
		DumpNodeInfo(w, n)
	})
}

// DumpNodeInfo writes a readable summary of a single node: its bounding
// volume, and either its object count (leaf) or its two children's
// depth/size (internal). A nil node is a no-op.
func DumpNodeInfo(w io.Writer, n *bvh.Node) {
	if n == nil {
		return
	}

	bv := n.BV
	fmt.Fprintf(w, "NODE [%p]\n%20s %v\n%20s %f\n%20s %f\n", n, "BV:", bv, "Volume:", bv.Volume(), "Surface area:", bv.SurfaceArea())

	if n.IsLeaf() {
		fmt.Fprintf(w, "%20s NONE\n%20s %d\n\n", "Children:", "Objects count:", n.ObjectCount())
		return
	}

	fmt.Fprintf(w, "%20s\n", "Children:")
	for _, child := range n.Children {
		fmt.Fprintf(w, "%25s [%p]\n%30s %d\n%30s %d\n", "NODE", child, "Depth:", child.Depth(), "Size:", child.Size())
	}
	fmt.Fprintln(w)
}

// DumpGraph writes a Graphviz DOT script describing b's tree shape: one
// node per BVH node labeled with its bounding volume/surface area/volume
// (plus object count for leaves), and one edge per parent-child link.
func DumpGraph(w io.Writer, b *bvh.BVH) {
	fmt.Fprintln(w, "digraph bvh {")
	fmt.Fprintln(w, "\tnode[group=\"\", shape=none, style=\"rounded,filled\", fontcolor=\"#101010\"]")

	ids := map[*bvh.Node]int{}
	nextID := 0
	b.TraverseLevelOrder(func(n *bvh.Node) {
		ids[n] = nextID

		bv := n.BV
		label := fmt.Sprintf("[%.02f,%.02f,%.02f]\\n[%.02f,%.02f,%.02f]\\nSA: %.02f\\nVOL: %.02f",
			bv.Min[0], bv.Min[1], bv.Min[2], bv.Max[0], bv.Max[1], bv.Max[2], bv.SurfaceArea(), bv.Volume())
		if n.IsLeaf() {
			label += fmt.Sprintf("\\n%d objects", n.ObjectCount())
		}
		fmt.Fprintf(w, "\tNODE%d[label=\"%s\"];\n", nextID, label)
		nextID++
	})

	b.TraverseLevelOrder(func(n *bvh.Node) {
		if n.IsLeaf() {
			return
		}
		id := ids[n]
		fmt.Fprintf(w, "\tNODE%d -> NODE%d;\n", id, ids[n.Children[0]])
		fmt.Fprintf(w, "\tNODE%d -> NODE%d;\n", id, ids[n.Children[1]])
	})

	fmt.Fprintln(w, "}")
}
