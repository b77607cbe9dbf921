package bvh

import "github.com/jazwinn/go-bvh/types"

// Query returns the identifiers of every object whose volume is not
// completely outside f, via an iterative stack-based descent: a subtree
// classified OUTSIDE is skipped entirely, one classified INSIDE is
// accepted wholesale (every object id under it is emitted without further
// per-object classification), and one classified INTERSECTING recurses
// into its children, or tests each owned object individually at a leaf.
func (b *BVH) Query(f types.Frustum) []uint32 {
	var ids []uint32
	if b.root == nil {
		return ids
	}

	stack := []*Node{b.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.Classify(node.BV) {
		case types.Outside:
			continue
		case types.Inside:
			node.TraverseLevelOrderObjects(func(h Handle) {
				ids = append(ids, h.ID())
			})
		default: // Intersecting
			if node.IsLeaf() {
				for h := node.First; h != nil; h = h.Hook().Next {
					if f.Classify(h.AABB()) != types.Outside {
						ids = append(ids, h.ID())
					}
				}
				continue
			}
			stack = append(stack, node.Children[0], node.Children[1])
		}
	}

	return ids
}
