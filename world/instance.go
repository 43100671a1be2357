package world

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ObjectKind is the kind of object an Instance represents.
type ObjectKind uint8

const (
	ObjectTree ObjectKind = iota
	ObjectWheat
	ObjectSheep
)

// ObjectKinds returns all object kinds in the order they are placed.
func ObjectKinds() []ObjectKind {
	return []ObjectKind{ObjectTree, ObjectWheat, ObjectSheep}
}

// String ...
func (k ObjectKind) String() string {
	switch k {
	case ObjectTree:
		return "tree"
	case ObjectWheat:
		return "wheat"
	case ObjectSheep:
		return "sheep"
	}
	return "unknown"
}

// Instance is a single placed object: the model transform of one instanced
// mesh draw.
type Instance struct {
	Kind      ObjectKind
	Transform mgl64.Mat4
}

// NewInstance composes the transform of an object at pos, rotated yaw radians
// around the y axis and scaled uniformly by scale.
func NewInstance(kind ObjectKind, pos mgl64.Vec3, yaw, scale float64) Instance {
	m := mgl64.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(mgl64.HomogRotate3DY(yaw)).
		Mul4(mgl64.Scale3D(scale, scale, scale))
	return Instance{Kind: kind, Transform: m}
}

// Position returns the translation of the instance.
func (i Instance) Position() mgl64.Vec3 {
	return i.Transform.Col(3).Vec3()
}
