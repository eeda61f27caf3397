package prelude

import "math"

// Entity identifies an object living in the world.
type Entity struct {
	Index      uint32
	Generation uint32
}

func (Entity) LADCore() {}

// ToBits packs the entity into a single integer, generation in the high bits.
func (e Entity) ToBits() uint64 {
	return uint64(e.Generation)<<32 | uint64(e.Index)
}

// Vec3 is a three dimensional vector.
type Vec3 struct {
	X float32 `lad:"x"`
	Y float32 `lad:"y"`
	Z float32 `lad:"z"`
}

func (Vec3) LADSignificant() {}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the euclidean length of the vector.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Name is a human readable label attached to an entity.
type Name struct {
	Value string
}

// Visibility controls whether an entity is drawn.
type Visibility uint8

const (
	VisibilityInherited Visibility = iota
	VisibilityHidden
	VisibilityVisible
)

// Transform places an entity in space.
type Transform struct {
	Translation Vec3       `lad:"translation"`
	Rotation    [4]float32 `lad:"rotation"`
	Scale       Vec3       `lad:"scale"`
}

// Image is pixel data owned by the host.
type Image struct {
	Width  uint32
	Height uint32
}

// Mesh is geometry owned by the host. It is never registered, so handles to
// it only survive when unregistered types are kept.
type Mesh struct {
	Vertices []Vec3
}

// Handle is a reference counted handle to an asset of type T.
type Handle[T any] struct {
	ID uint64
}

// Shape is a primitive collider: a sphere, a cuboid or a point.
type Shape interface {
	Volume() float32
}
