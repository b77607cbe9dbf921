package bvh

import (
	"math"

	"github.com/jazwinn/go-bvh/types"
)

// QueryDebug casts r against the tree and reports the closest hit by ray
// parameter. allHits and testedNodes are cleared on entry and then
// populated by the descent; they must not alias each other or any slice
// still being read by the caller.
//
// When closestOnly is false, allHits collects every object the ray
// intersects, in traversal order. When true, the descent additionally
// skips the farther child of a node whenever the nearer child's hit
// already can't be beaten, and allHits is collapsed to just the closest
// id once the descent finishes.
//
// Every node whose AABB is tested is appended to testedNodes, including
// the root.
func (b *BVH) QueryDebug(r types.Ray, closestOnly bool, allHits *[]uint32, testedNodes *[]*Node) (uint32, bool) {
	*allHits = (*allHits)[:0]
	*testedNodes = (*testedNodes)[:0]

	if b.root == nil {
		return 0, false
	}

	*testedNodes = append(*testedNodes, b.root)
	if r.Intersect(b.root.BV) < 0 {
		return 0, false
	}

	var closestID uint32
	closestT := float32(math.MaxFloat32)
	found := false

	var descend func(node *Node) float32
	descend = func(node *Node) float32 {
		if node.IsLeaf() {
			shortest := float32(-1)
			for h := node.First; h != nil; h = h.Hook().Next {
				t := r.Intersect(h.AABB())
				if t < 0 {
					continue
				}
				if !closestOnly {
					*allHits = append(*allHits, h.ID())
				}
				if shortest < 0 || t < shortest {
					shortest = t
				}
				if t < closestT {
					closestT = t
					closestID = h.ID()
					found = true
				}
			}
			return shortest
		}

		t0, t1 := float32(-1), float32(-1)
		if node.Children[0] != nil {
			*testedNodes = append(*testedNodes, node.Children[0])
			t0 = r.Intersect(node.Children[0].BV)
		}
		if node.Children[1] != nil {
			*testedNodes = append(*testedNodes, node.Children[1])
			t1 = r.Intersect(node.Children[1].BV)
		}

		switch {
		case t0 < 0 && t1 < 0:
			return -1
		case t0 >= 0 && t1 >= 0:
			if t0 < t1 {
				time := descend(node.Children[0])
				if !closestOnly || time < 0 || time > t1 {
					time = minF32(descend(node.Children[1]), time)
				}
				return time
			}
			time := descend(node.Children[1])
			if !closestOnly || time < 0 || time > t0 {
				time = minF32(descend(node.Children[0]), time)
			}
			return time
		case t0 >= 0:
			return descend(node.Children[0])
		default:
			return descend(node.Children[1])
		}
	}

	descend(b.root)

	if !found {
		return 0, false
	}

	if closestOnly {
		*allHits = append((*allHits)[:0], closestID)
	}

	return closestID, true
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
