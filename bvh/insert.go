package bvh

import (
	"container/heap"

	"github.com/jazwinn/go-bvh/types"
)

// insertEpsilon is the tolerance used when deciding whether a candidate
// node's rootToNewParentCost is "not worse" than the current best one
// found along the descent.
const insertEpsilon = 1e-3

// nodeCost is the per-candidate bookkeeping the incremental inserter
// carries through its priority-queue descent.
type nodeCost struct {
	node  *Node
	level uint

	newAABB   types.AABB
	newVolume float32
	delta     float32 // newVolume - node.BV.Volume(), >= 0

	rootToNodeCost      float32 // enlargement accumulated down to and including node
	rootToNewParentCost float32 // cost of stopping here and wrapping node with the new object
}

func newNodeCost(node *Node, obj Handle, costAccumulated float32, level uint) *nodeCost {
	newAABB := node.BV.Union(obj.AABB())
	newVolume := newAABB.Volume()
	delta := newVolume - node.BV.Volume()
	return &nodeCost{
		node:                node,
		level:               level,
		newAABB:             newAABB,
		newVolume:           newVolume,
		delta:               delta,
		rootToNodeCost:      costAccumulated + delta,
		rootToNewParentCost: newVolume + costAccumulated,
	}
}

// nodeCostQueue is a container/heap priority queue ordered by breadth
// first (lower level has priority), then by larger enlargement (delta)
// among candidates at the same level. This reproduces the reference
// comparator's intentional depth-balancing rather than a pure cost order.
type nodeCostQueue []*nodeCost

func (q nodeCostQueue) Len() int { return len(q) }
func (q nodeCostQueue) Less(i, j int) bool {
	if q[i].level != q[j].level {
		return q[i].level < q[j].level
	}
	return q[i].delta > q[j].delta
}
func (q nodeCostQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeCostQueue) Push(x any)   { *q = append(*q, x.(*nodeCost)) }
func (q *nodeCostQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// InsertAll inserts every object in objects via Insert, in order.
func (b *BVH) InsertAll(objects []Handle, cfg BuildConfig) {
	for _, obj := range objects {
		b.Insert(obj, cfg)
	}
}

// Insert adds a single object to the tree using a best-first descent
// guided by a surface-volume enlargement cost, either extending the
// cheapest leaf in place or wrapping the cheapest visited node with a
// freshly allocated parent. Insert never rebalances; tree quality depends
// on input order.
func (b *BVH) Insert(obj Handle, cfg BuildConfig) {
	b.objectCount++

	if b.root == nil {
		b.root = &Node{BV: obj.AABB()}
		b.root.AddObject(obj)
		return
	}

	queue := &nodeCostQueue{newNodeCost(b.root, obj, 0, 0)}
	heap.Init(queue)

	var path []*nodeCost
	bestIndex := 0
	var leaf *nodeCost

	for queue.Len() > 0 {
		nc := heap.Pop(queue).(*nodeCost)
		path = append(path, nc)
		idx := len(path) - 1

		if nc.rootToNewParentCost <= path[bestIndex].rootToNewParentCost+insertEpsilon {
			bestIndex = idx
		}

		if nc.node.IsLeaf() {
			leaf = nc
			break
		}

		heap.Push(queue, newNodeCost(nc.node.Children[0], obj, nc.rootToNodeCost, nc.level+1))
		heap.Push(queue, newNodeCost(nc.node.Children[1], obj, nc.rootToNodeCost, nc.level+1))
	}

	extendInPlace := false
	if leaf != nil && leaf.rootToNodeCost < path[bestIndex].rootToNewParentCost {
		switch {
		case uint(leaf.node.ObjectCount()) < cfg.MinObjects || leaf.level >= cfg.MaxDepth:
			extendInPlace = true
		case leaf.newAABB.Volume() >= cfg.MinVolume && leaf.delta > 0:
			bestIndex = len(path) - 1
		default:
			extendInPlace = true
		}
	}

	if extendInPlace {
		for _, nc := range path {
			nc.node.BV = nc.newAABB
		}
		leaf.node.AddObject(obj)
		return
	}

	best := path[bestIndex]

	if best.node == b.root {
		newRoot := &Node{BV: best.newAABB}
		newRoot.Children[0] = best.node
		newRoot.Children[1] = &Node{BV: obj.AABB()}
		newRoot.Children[1].AddObject(obj)
		b.root = newRoot
		return
	}

	for i := 0; i < bestIndex; i++ {
		path[i].node.BV = path[i].newAABB
	}

	var parent *Node
	childIdx := 0
	for _, nc := range path[:bestIndex] {
		if nc.node.Children[0] == best.node {
			parent = nc.node
			break
		}
		if nc.node.Children[1] == best.node {
			parent, childIdx = nc.node, 1
			break
		}
	}

	newParent := &Node{BV: best.newAABB}
	newParent.Children[childIdx] = best.node
	newParent.Children[childIdx^1] = &Node{BV: obj.AABB()}
	newParent.Children[childIdx^1].AddObject(obj)
	parent.Children[childIdx] = newParent
}
