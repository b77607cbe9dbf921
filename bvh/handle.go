package bvh

import "github.com/jazwinn/go-bvh/types"

// Handle is implemented by user-supplied object types that want to be
// tracked by a BVH. The BVH reads AABB() and ID() but never writes them;
// it only ever mutates the fields inside the Hook a Handle exposes.
type Handle interface {
	// AABB returns the object's current world-space bounding volume.
	AABB() types.AABB
	// ID returns the object's identifier, reported back by queries.
	ID() uint32
	// Hook returns a pointer to the intrusive link fields the BVH uses
	// to thread this object through its owning leaf's object list.
	Hook() *Hook
}

// Hook carries the intrusive doubly-linked-list fields a Handle's owning
// type must embed. Compose Hook into your object type and implement
// Hook() to return a pointer to it:
//
//	type SceneObject struct {
//	    bv   types.AABB
//	    id   uint32
//	    link bvh.Hook
//	}
//
//	func (o *SceneObject) AABB() types.AABB { return o.bv }
//	func (o *SceneObject) ID() uint32        { return o.id }
//	func (o *SceneObject) Hook() *bvh.Hook   { return &o.link }
//
// Once an object has been added to a BVH, user code should not write to
// its Hook directly.
type Hook struct {
	Prev  Handle
	Next  Handle
	Owner *Node
}
