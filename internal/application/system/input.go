package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/sectorphys/internal/ecs"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
)

// InputSystem turns key state into actor velocity
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool // +Y on the map
	Down  bool // -Y on the map
	Rise  bool
	Sink  bool
	Use   bool // just pressed
	Pause bool // just pressed
	Map   bool // just pressed
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Rise:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Sink:  ebiten.IsKeyPressed(ebiten.KeyC),
		Use:   inpututil.IsKeyJustPressed(ebiten.KeyE),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Map:   inpututil.IsKeyJustPressed(ebiten.KeyM),
	}
}

// Velocity returns the velocity requested by the input.
// Diagonal movement is normalized so it is not faster than straight movement.
func (s *InputSystem) Velocity(input InputState) mgl64.Vec3 {
	var dir mgl64.Vec2
	if input.Left {
		dir[0]--
	}
	if input.Right {
		dir[0]++
	}
	if input.Up {
		dir[1]++
	}
	if input.Down {
		dir[1]--
	}
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(s.config.Actor.MoveSpeed / l)
	}

	var vz float64
	if input.Rise {
		vz += s.config.Actor.VerticalSpeed
	}
	if input.Sink {
		vz -= s.config.Actor.VerticalSpeed
	}

	return mgl64.Vec3{dir[0], dir[1], vz}
}

// UpdateActor applies the input to an actor's velocity and facing
func (s *InputSystem) UpdateActor(world *ecs.World, id ecs.EntityID, input InputState) {
	v := s.Velocity(input)
	world.SetVelocity(id, v)

	if v[0] != 0 || v[1] != 0 {
		tr := world.Transform[id]
		tr.Yaw = math.Atan2(v[1], v[0])
		world.Transform[id] = tr
	}
}
