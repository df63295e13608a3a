package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/sectorphys/internal/geometry"
)

// Transform is an entity's placement in the level.
// Position is the centre of the collider footprint at floor level.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64 // radians, rendering only
}

// Velocity is movement speed in map units per second
type Velocity struct {
	Velocity mgl64.Vec3
}

// BoxCollider describes the actor's collision volume:
// square in XY (half extent Radius), Height tall, anchored at the feet.
type BoxCollider struct {
	Radius float64
	Height float64
}

// BBox returns the collider box relative to the entity position
func (c BoxCollider) BBox() geometry.AABB3 {
	return geometry.FromRadiusHeight(c.Radius, c.Height)
}

// Name is a debug label
type Name struct {
	Value string
}
