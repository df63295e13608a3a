package replay

import "github.com/go-gl/mathgl/mgl64"

// Version is written into every recording
const Version = "1.0"

// TickInput records the commands applied to the player at a single tick
type TickInput struct {
	T    int     `json:"t"`              // Tick number
	VX   float64 `json:"vx,omitempty"`   // Requested velocity
	VY   float64 `json:"vy,omitempty"`
	VZ   float64 `json:"vz,omitempty"`
	Door bool    `json:"door,omitempty"` // Door toggle pressed
}

// Velocity returns the requested velocity as a vector
func (t TickInput) Velocity() mgl64.Vec3 {
	return mgl64.Vec3{t.VX, t.VY, t.VZ}
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string      `json:"version"`
	Level     string      `json:"level"`
	DT        float64     `json:"dt"`
	Spawn     mgl64.Vec3  `json:"spawn"`
	StartTime string      `json:"startTime"`
	Ticks     []TickInput `json:"ticks"`
	Checksum  string      `json:"checksum,omitempty"` // hex xxhash of every tick's actor state
}
