package bvh

import "github.com/jazwinn/go-bvh/types"

// Node is a binary tree node. Internal nodes carry exactly two non-nil
// children and own zero objects; leaves carry no children and own one or
// more objects threaded through First/Last via each handle's Hook.
type Node struct {
	BV       types.AABB
	Children [2]*Node

	First Handle
	Last  Handle
}

// IsLeaf reports whether n is a leaf. Children[0] is always populated
// before Children[1], so testing it alone is enough.
func (n *Node) IsLeaf() bool {
	return n.Children[0] == nil
}

// AddObject adds h to n's object list, relinking it out of any previous
// owner first.
//
// The previous owner's First/Last are kept consistent when the removed
// handle was its head or tail -- the original reference implementation
// this package is grounded on skips that bookkeeping, which silently
// corrupts invariant 5 (traversal from First/Last no longer reaches every
// owned object) whenever a mid-list relink happens; this is fixed here.
func (n *Node) AddObject(h Handle) {
	hook := h.Hook()
	if hook.Owner == n {
		return
	}

	if hook.Owner != nil {
		old := hook.Owner
		prev, next := hook.Prev, hook.Next

		if prev != nil {
			prev.Hook().Next = next
		} else {
			old.First = next
		}
		if next != nil {
			next.Hook().Prev = prev
		} else {
			old.Last = prev
		}

		hook.Prev, hook.Next = nil, nil
	}

	hook.Prev = n.Last
	hook.Next = nil
	hook.Owner = n

	if n.Last != nil {
		n.Last.Hook().Next = h
	}
	n.Last = h
	if n.First == nil {
		n.First = h
	}
}

// Depth returns the length of the longest path from n to a descendant
// leaf; 0 for a leaf.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	d0, d1 := n.Children[0].Depth(), n.Children[1].Depth()
	if d0 > d1 {
		return 1 + d0
	}
	return 1 + d1
}

// Size returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Size() int {
	if n.IsLeaf() {
		return 1
	}
	return 1 + n.Children[0].Size() + n.Children[1].Size()
}

// ObjectCount returns the number of objects owned directly by n (0 for an
// internal node, >0 for a leaf).
func (n *Node) ObjectCount() int {
	count := 0
	for h := n.First; h != nil; h = h.Hook().Next {
		count++
	}
	return count
}

// TraverseLevelOrder visits n and every descendant node in level order,
// applying fn to each.
func (n *Node) TraverseLevelOrder(fn func(*Node)) {
	queue := []*Node{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.Children[0] != nil {
			queue = append(queue, node.Children[0])
		}
		if node.Children[1] != nil {
			queue = append(queue, node.Children[1])
		}

		fn(node)
	}
}

// TraverseLevelOrderObjects visits every object reachable from n in level
// order, applying fn to each. The next link is captured before fn runs so
// fn may safely relink the current object (e.g. during Clear).
func (n *Node) TraverseLevelOrderObjects(fn func(Handle)) {
	queue := []*Node{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.Children[0] != nil {
			queue = append(queue, node.Children[0])
		}
		if node.Children[1] != nil {
			queue = append(queue, node.Children[1])
		}

		if !node.IsLeaf() {
			continue
		}

		for h := node.First; h != nil; {
			next := h.Hook().Next
			fn(h)
			h = next
		}
	}
}
