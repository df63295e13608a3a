package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/ecs"
	"github.com/younwookim/sectorphys/internal/geometry"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// slideEpsilon is the along-surface speed below which a slid velocity counts as head-on
const slideEpsilon = 1e-6

// MoveResult describes what happened during a horizontal step
type MoveResult int

const (
	MoveNone    MoveResult = iota // no horizontal velocity
	MoveClear                     // full displacement applied
	MoveSlid                      // hit something, slid along it
	MoveStopped                   // hit something and could not slide
)

// String returns the string representation of the move result
func (r MoveResult) String() string {
	switch r {
	case MoveNone:
		return "None"
	case MoveClear:
		return "Clear"
	case MoveSlid:
		return "Slid"
	case MoveStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// ActorState is the part of an actor the resolver reads and writes
type ActorState struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// StepReport is the outcome of resolving one actor for one tick
type StepReport struct {
	Result  MoveResult
	Contact *Intersect // first contact of the horizontal step, if any
}

// PhysicsSystem moves actors through the level and resolves wall, floor and
// ceiling contact. It must run after door/light updates and before anything
// reads transforms for the tick.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	logger *zap.Logger
}

// NewPhysicsSystem creates a new physics system. A nil logger disables logging.
func NewPhysicsSystem(cfg *config.PhysicsConfig, logger *zap.Logger) *PhysicsSystem {
	if cfg == nil {
		cfg = config.DefaultPhysics()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhysicsSystem{
		config: cfg,
		logger: logger,
	}
}

// Update advances every mover in the world by dt seconds against the given
// map instance. Panics if there is no active map instance.
func (s *PhysicsSystem) Update(world *ecs.World, mi *level.MapInstance, dt float64) {
	if mi == nil {
		panic("physics: no active map instance")
	}

	ids := world.Movers()
	states := make([]ActorState, len(ids))
	reports := make([]StepReport, len(ids))

	resolve := func(i int) {
		id := ids[i]
		box := world.BoxCollider[id].BBox()
		state := ActorState{
			Position: world.Transform[id].Position,
			Velocity: world.Velocity[id].Velocity,
		}
		reports[i] = s.Step(mi, box, &state, dt)
		states[i] = state
	}

	if workers := s.config.Physics.Workers; workers > 1 && len(ids) > 1 {
		// Component maps are only read here; writes happen below in ID order
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range ids {
			i := i
			g.Go(func() error {
				resolve(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range ids {
			resolve(i)
		}
	}

	for i, id := range ids {
		tr := world.Transform[id]
		tr.Position = states[i].Position
		world.Transform[id] = tr
		world.Velocity[id] = ecs.Velocity{Velocity: states[i].Velocity}

		s.logStep(mi, id, reports[i])
	}
}

// Step resolves one actor for one tick: horizontal movement first, then the
// vertical clamp, which sees the position the horizontal step produced.
func (s *PhysicsSystem) Step(mi *level.MapInstance, box geometry.AABB3, state *ActorState, dt float64) StepReport {
	result, contact := s.moveXY(mi, box, &state.Position, &state.Velocity, dt)
	s.moveZ(mi, box, &state.Position, &state.Velocity, dt)
	return StepReport{Result: result, Contact: contact}
}

// moveXY applies one tick of horizontal movement with a single slide.
func (s *PhysicsSystem) moveXY(mi *level.MapInstance, box geometry.AABB3, position, velocity *mgl64.Vec3, dt float64) (MoveResult, *Intersect) {
	if velocity[0] == 0 && velocity[1] == 0 {
		return MoveNone, nil
	}

	step := horizontalStep(*position, *velocity, dt)
	hit := Trace(step, box, mi)
	if hit == nil {
		*position = position.Add(step.Dir)
		return MoveClear, nil
	}

	// Move up to the contact, keeping a small gap along the contact normal
	contact := position.Add(step.Dir.Mul(hit.Fraction)).Add(hit.Normal.Mul(s.config.Physics.ContactSkin))

	// Push back against the collision
	slid := velocity.Sub(hit.Normal.Mul(velocity.Dot(hit.Normal) * s.config.Physics.SlideOvershoot))
	// Vertical speed never counts as sliding along a wall
	along := slid.Vec2().Sub(hit.Normal.Vec2().Mul(slid.Dot(hit.Normal)))
	if along.Len() <= slideEpsilon {
		*position = contact
		*velocity = mgl64.Vec3{0, 0, velocity[2]}
		return MoveStopped, hit
	}

	// Try another move with what is left of the tick
	slide := horizontalStep(contact, slid, dt*(1-hit.Fraction))
	if Trace(slide, box, mi) != nil {
		*position = contact
		*velocity = mgl64.Vec3{}
		return MoveStopped, hit
	}

	*position = contact.Add(slide.Dir)
	*velocity = slid
	return MoveSlid, hit
}

// moveZ integrates vertical velocity and clamps the actor between the floor
// and ceiling of the sector under its current XY position.
func (s *PhysicsSystem) moveZ(mi *level.MapInstance, box geometry.AABB3, position, velocity *mgl64.Vec3, dt float64) {
	if velocity[2] == 0 {
		return
	}

	sector := mi.Sector(mi.Map.SectorAt(position.Vec2()))
	floor := sector.FloorHeight - box.Min[2]
	ceiling := sector.CeilingHeight - box.Max[2]

	position[2] += velocity[2] * dt

	if position[2] <= floor {
		position[2] = floor
		if velocity[2] < 0 {
			velocity[2] = 0
		}
	} else if position[2] >= ceiling {
		position[2] = ceiling
		if velocity[2] > 0 {
			velocity[2] = 0
		}
	}
}

// horizontalStep builds the displacement segment for a move, vertical component forced to zero
func horizontalStep(origin, velocity mgl64.Vec3, dt float64) geometry.Line3 {
	dir := velocity.Mul(dt)
	dir[2] = 0
	return geometry.NewLine3(origin, dir)
}

func (s *PhysicsSystem) logStep(mi *level.MapInstance, id ecs.EntityID, report StepReport) {
	if report.Contact == nil {
		return
	}
	if ce := s.logger.Check(zap.DebugLevel, "actor contact"); ce != nil {
		ce.Write(
			zap.Uint64("entity", uint64(id)),
			zap.Stringer("result", report.Result),
			zap.Int("linedef", report.Contact.Linedef),
			zap.Float64("fraction", report.Contact.Fraction),
			zap.Stringer("map", mi.ID),
		)
	}
}
