// Package bvh implements a bounding volume hierarchy over axis-aligned
// bounding boxes: the intrusive leaf-object list, the median-split
// top-down builder, the cheapest-descent incremental inserter, and the
// frustum/ray query engines.
package bvh

import (
	"sort"
	"time"

	"github.com/jazwinn/go-bvh/log"
)

var builderLogger = log.New("bvh")

// BVH is a binary tree of AABBs, parameterized over an opaque Handle type
// the caller supplies. It borrows handles; it never owns them.
type BVH struct {
	root        *Node
	objectCount uint
}

// New returns an empty BVH.
func New() *BVH {
	return &BVH{}
}

// Empty reports whether the tree holds no nodes.
func (b *BVH) Empty() bool {
	return b.root == nil
}

// Size returns the total number of nodes in the tree, 0 when empty.
func (b *BVH) Size() int {
	if b.root == nil {
		return 0
	}
	return b.root.Size()
}

// Depth returns the tree's maximum depth, -1 when empty, 0 for a
// single-node root.
func (b *BVH) Depth() int {
	if b.root == nil {
		return -1
	}
	return b.root.Depth()
}

// ObjectCount returns the cached total object count.
func (b *BVH) ObjectCount() uint {
	return b.objectCount
}

// Root returns the tree's root node, or nil when empty.
func (b *BVH) Root() *Node {
	return b.root
}

// Clear detaches every object's Hook fields and drops the root, returning
// the tree to empty. Every object's Prev/Next/Owner is nil before Clear
// returns; an empty tree has no objects to detach and returns at once.
func (b *BVH) Clear() {
	if b.root == nil {
		return
	}

	b.root.TraverseLevelOrderObjects(func(h Handle) {
		hook := h.Hook()
		hook.Prev, hook.Next, hook.Owner = nil, nil, nil
	})

	b.root = nil
	b.objectCount = 0
}

// TraverseLevelOrder visits every node in level order; a no-op on an empty
// tree.
func (b *BVH) TraverseLevelOrder(fn func(*Node)) {
	if b.root == nil {
		return
	}
	b.root.TraverseLevelOrder(fn)
}

// TraverseLevelOrderObjects visits every object in level order; a no-op on
// an empty tree.
func (b *BVH) TraverseLevelOrderObjects(fn func(Handle)) {
	if b.root == nil {
		return
	}
	b.root.TraverseLevelOrderObjects(fn)
}

// BuildTopDown recursively partitions objects into a median-split tree,
// replacing whatever tree b previously held.
func (b *BVH) BuildTopDown(objects []Handle, cfg BuildConfig) {
	start := time.Now()
	nodesBefore := b.Size()

	b.buildTopDown(objects, cfg, nil, 0)

	builderLogger.Debugf("top-down build: %d objects, depth %d, %d nodes, %s\n",
		len(objects), b.Depth(), b.Size()-nodesBefore, time.Since(start))
}

// buildTopDown is the recursive worker behind BuildTopDown. depth is the
// current recursion depth from the working root (see SPEC_FULL §4.2 on why
// this, rather than a Depth() read on the finished subtree, is the
// correct stop-condition input).
func (b *BVH) buildTopDown(objects []Handle, cfg BuildConfig, parent *Node, depth int) *Node {
	if len(objects) == 0 {
		return nil
	}

	box := objects[0].AABB()
	for _, obj := range objects[1:] {
		box = box.Union(obj.AABB())
	}
	node := &Node{BV: box}

	if parent == nil {
		b.root = node
		b.objectCount = uint(len(objects))
	} else {
		switch {
		case parent.Children[0] == nil:
			parent.Children[0] = node
		case parent.Children[1] == nil:
			parent.Children[1] = node
		default:
			panic("bvh: attached a third child to an internal node during top-down build")
		}
	}

	if uint(len(objects)) <= cfg.MinObjects || node.BV.Volume() <= cfg.MinVolume || uint(depth) >= cfg.MaxDepth {
		for _, obj := range objects {
			node.AddObject(obj)
		}
		return node
	}

	axis := node.BV.LongestAxis()
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].AABB().Center()[axis] < objects[j].AABB().Center()[axis]
	})

	// When every object's center coincides no split can separate them, so
	// the node is kept as a leaf rather than recursing on identical halves.
	degenerate := true
	center := objects[0].AABB().Center()
	for _, obj := range objects[1:] {
		if obj.AABB().Center() != center {
			degenerate = false
			break
		}
	}

	mid := len(objects) / 2
	left, right := objects[:mid], objects[mid:]
	if degenerate || len(left) == 0 || len(right) == 0 {
		for _, obj := range objects {
			node.AddObject(obj)
		}
		return node
	}

	b.buildTopDown(left, cfg, node, depth+1)
	b.buildTopDown(right, cfg, node, depth+1)
	return node
}
