package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display"`
	Physics PhysicsSettings `json:"physics"`
	Actor   ActorConfig     `json:"actor"`
	Door    DoorConfig      `json:"door"`
	Strobe  StrobeConfig    `json:"strobe"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale"`
	Framerate    int     `json:"framerate"`
	Zoom         float64 `json:"zoom"` // screen pixels per map unit
}

type PhysicsSettings struct {
	// SlideOvershoot scales the velocity component removed along a contact
	// normal. Slightly above 1 so the slid velocity points away from the wall.
	SlideOvershoot float64 `json:"slideOvershoot"`
	// ContactSkin is the distance (map units) kept between the actor and the
	// surface it stopped against.
	ContactSkin float64 `json:"contactSkin"`
	// Workers > 1 resolves actors concurrently. Results are identical to serial.
	Workers int `json:"workers"`
}

type ActorConfig struct {
	Radius        float64 `json:"radius"`
	Height        float64 `json:"height"`
	MoveSpeed     float64 `json:"moveSpeed"`     // units/sec
	VerticalSpeed float64 `json:"verticalSpeed"` // units/sec
}

type DoorConfig struct {
	Tag string `json:"tag"` // sectors with this tag are toggled by the use key
}

// StrobeConfig drives flickering lights. A tagged sector stays at its
// template light for OnTicks, then drops to its darkest neighbour for OffTicks.
type StrobeConfig struct {
	Tag      string `json:"tag"`
	OnTicks  int    `json:"onTicks"`
	OffTicks int    `json:"offTicks"`
}

// DefaultPhysics returns the engine defaults used when no file is loaded
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    35,
			Zoom:         0.75,
		},
		Physics: PhysicsSettings{
			SlideOvershoot: 1.01,
			ContactSkin:    0.001,
			Workers:        1,
		},
		Actor: ActorConfig{
			Radius:        16,
			Height:        56,
			MoveSpeed:     200,
			VerticalSpeed: 150,
		},
		Door:   DoorConfig{Tag: "door"},
		Strobe: StrobeConfig{Tag: "strobe", OnTicks: 35, OffTicks: 10},
	}
}
