package system

import (
	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SectorCommand is a change to dynamic sector state requested during a tick
type SectorCommand interface {
	apply(mi *level.MapInstance)
}

// SetFloorCommand moves a sector floor
type SetFloorCommand struct {
	Sector int
	Height float64
}

func (c SetFloorCommand) apply(mi *level.MapInstance) { mi.SetFloorHeight(c.Sector, c.Height) }

// SetCeilingCommand moves a sector ceiling
type SetCeilingCommand struct {
	Sector int
	Height float64
}

func (c SetCeilingCommand) apply(mi *level.MapInstance) { mi.SetCeilingHeight(c.Sector, c.Height) }

// SetLightCommand changes a sector light level
type SetLightCommand struct {
	Sector int
	Level  float64
}

func (c SetLightCommand) apply(mi *level.MapInstance) { mi.SetLightLevel(c.Sector, c.Level) }

// ResetSectorCommand restores a sector to its template values
type ResetSectorCommand struct {
	Sector int
}

func (c ResetSectorCommand) apply(mi *level.MapInstance) { mi.ResetSector(c.Sector) }

// EnvironmentSystem queues sector commands and commits them at the start of a
// tick. Commit must run before PhysicsSystem.Update so physics sees the
// heights of the current tick.
type EnvironmentSystem struct {
	pending []SectorCommand
	logger  *zap.Logger
}

// NewEnvironmentSystem creates a new environment system. A nil logger disables logging.
func NewEnvironmentSystem(logger *zap.Logger) *EnvironmentSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnvironmentSystem{logger: logger}
}

// Queue adds commands to be applied on the next Commit
func (s *EnvironmentSystem) Queue(cmds ...SectorCommand) {
	s.pending = append(s.pending, cmds...)
}

// Commit applies the queued commands in order and clears the queue.
// Returns the number of commands applied.
func (s *EnvironmentSystem) Commit(mi *level.MapInstance) int {
	n := len(s.pending)
	for _, cmd := range s.pending {
		cmd.apply(mi)
	}
	s.pending = s.pending[:0]

	if n > 0 {
		s.logger.Debug("sector commands committed", zap.Int("count", n), zap.Stringer("map", mi.ID))
	}
	return n
}

// DoorCommands toggles every sector tagged tag: an open door closes by
// dropping its ceiling to the floor, a closed one returns to its template.
func DoorCommands(mi *level.MapInstance, tag string) []SectorCommand {
	if tag == "" {
		return nil
	}

	var cmds []SectorCommand
	for i, sector := range mi.Map.Sectors {
		if sector.Tag != tag {
			continue
		}
		dyn := mi.Sector(i)
		if dyn.CeilingHeight > dyn.FloorHeight {
			cmds = append(cmds, SetCeilingCommand{Sector: i, Height: dyn.FloorHeight})
		} else {
			cmds = append(cmds, ResetSectorCommand{Sector: i})
		}
	}
	return cmds
}

// StrobeCommands returns the light changes for the tick about to run in every
// sector tagged cfg.Tag. Lights switch only at phase boundaries: on at the
// start of each cycle, off after cfg.OnTicks. The off level is the darkest
// neighbour, or 0 when that is no darker than the sector itself.
func StrobeCommands(mi *level.MapInstance, cfg config.StrobeConfig, tick int) []SectorCommand {
	if cfg.Tag == "" || cfg.OnTicks <= 0 || cfg.OffTicks <= 0 {
		return nil
	}

	var on bool
	switch tick % (cfg.OnTicks + cfg.OffTicks) {
	case 0:
		on = true
	case cfg.OnTicks:
		on = false
	default:
		return nil
	}

	var cmds []SectorCommand
	for i, sector := range mi.Map.Sectors {
		if sector.Tag != cfg.Tag {
			continue
		}
		light := sector.LightLevel
		if !on {
			light = mi.Map.MinNeighbourLight(i)
			if light >= sector.LightLevel {
				light = 0
			}
		}
		cmds = append(cmds, SetLightCommand{Sector: i, Level: light})
	}
	return cmds
}
