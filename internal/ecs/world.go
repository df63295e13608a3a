package ecs

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Transform   map[EntityID]Transform
	Velocity    map[EntityID]Velocity
	BoxCollider map[EntityID]BoxCollider
	Name        map[EntityID]Name

	// Tags
	IsPlayer map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is "nil"
		Transform:   make(map[EntityID]Transform),
		Velocity:    make(map[EntityID]Velocity),
		BoxCollider: make(map[EntityID]BoxCollider),
		Name:        make(map[EntityID]Name),
		IsPlayer:    make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// CreateActor creates an entity that takes part in movement
func (w *World) CreateActor(name string, position mgl64.Vec3, yaw float64, collider BoxCollider) EntityID {
	id := w.NewEntity()

	w.Transform[id] = Transform{Position: position, Yaw: yaw}
	w.Velocity[id] = Velocity{}
	w.BoxCollider[id] = collider
	w.Name[id] = Name{Value: name}

	return id
}

// CreatePlayer creates the player actor
func (w *World) CreatePlayer(position mgl64.Vec3, yaw float64, collider BoxCollider) EntityID {
	id := w.CreateActor("player", position, yaw, collider)
	w.IsPlayer[id] = struct{}{}
	w.PlayerID = id
	return id
}

// Movers returns, in ascending ID order, every entity that has a
// Transform, a Velocity and a BoxCollider.
func (w *World) Movers() []EntityID {
	ids := make([]EntityID, 0, len(w.BoxCollider))
	for id := range w.BoxCollider {
		if _, ok := w.Transform[id]; !ok {
			continue
		}
		if _, ok := w.Velocity[id]; !ok {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SetVelocity replaces an entity's velocity
func (w *World) SetVelocity(id EntityID, v mgl64.Vec3) {
	w.Velocity[id] = Velocity{Velocity: v}
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() mgl64.Vec3 {
	return w.Transform[w.PlayerID].Position
}
