package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/younwookim/sectorphys/internal/application/system"
	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/ecs"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ErrChecksumMismatch is returned by Verify when a replay diverges from its recording
var ErrChecksumMismatch = errors.New("replay checksum mismatch")

// StateHash accumulates actor states tick by tick
type StateHash struct {
	digest *xxhash.Digest
	buf    []byte
}

// NewStateHash creates an empty state hash
func NewStateHash() *StateHash {
	return &StateHash{
		digest: xxhash.New(),
		buf:    make([]byte, 0, 6*8),
	}
}

// Add feeds one tick of actor state into the hash.
// Floats are hashed by their exact bit pattern.
func (h *StateHash) Add(state system.ActorState) {
	h.buf = h.buf[:0]
	for _, v := range state.Position {
		h.buf = binary.LittleEndian.AppendUint64(h.buf, math.Float64bits(v))
	}
	for _, v := range state.Velocity {
		h.buf = binary.LittleEndian.AppendUint64(h.buf, math.Float64bits(v))
	}
	_, _ = h.digest.Write(h.buf)
}

// Sum64 returns the hash of everything added so far
func (h *StateHash) Sum64() uint64 {
	return h.digest.Sum64()
}

// FormatChecksum renders a checksum the way it is stored in ReplayData
func FormatChecksum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// ParseChecksum reverses FormatChecksum
func ParseChecksum(s string) (uint64, error) {
	sum, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid checksum %q: %w", s, err)
	}
	return sum, nil
}

// Result is the outcome of a headless replay
type Result struct {
	Final    system.ActorState
	Ticks    int
	Checksum uint64
}

// Simulate runs the recorded ticks against a fresh instance of m, the same
// way the viewer does: input, sector commands, then physics.
func Simulate(data *ReplayData, m *level.Map, cfg *config.PhysicsConfig, logger *zap.Logger) (*Result, error) {
	if data.DT <= 0 {
		return nil, fmt.Errorf("replay %s: tick duration must be positive, got %v", data.Level, data.DT)
	}
	if cfg == nil {
		cfg = config.DefaultPhysics()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mi := level.NewMapInstance(m)
	world := ecs.NewWorld()
	player := world.CreatePlayer(data.Spawn, m.SpawnYaw, ecs.BoxCollider{
		Radius: cfg.Actor.Radius,
		Height: cfg.Actor.Height,
	})

	env := system.NewEnvironmentSystem(logger)
	physics := system.NewPhysicsSystem(cfg, logger)
	hash := NewStateHash()
	replayer := NewReplayer(*data)

	logger.Debug("Replay started",
		zap.String("level", data.Level),
		zap.Stringer("instance", mi.ID),
		zap.Int("ticks", replayer.TotalTicks()),
	)

	for {
		tick := replayer.CurrentTick()
		in, ok := replayer.NextTick()
		if !ok {
			break
		}

		world.SetVelocity(player, in.Velocity())
		if in.Door {
			env.Queue(system.DoorCommands(mi, cfg.Door.Tag)...)
		}
		env.Queue(system.StrobeCommands(mi, cfg.Strobe, tick)...)
		env.Commit(mi)
		physics.Update(world, mi, data.DT)

		hash.Add(system.ActorState{
			Position: world.Transform[player].Position,
			Velocity: world.Velocity[player].Velocity,
		})
	}

	return &Result{
		Final: system.ActorState{
			Position: world.Transform[player].Position,
			Velocity: world.Velocity[player].Velocity,
		},
		Ticks:    replayer.CurrentTick(),
		Checksum: hash.Sum64(),
	}, nil
}

// Verify replays data and compares the result against the recorded checksum
func Verify(data *ReplayData, m *level.Map, cfg *config.PhysicsConfig, logger *zap.Logger) (*Result, error) {
	want, err := ParseChecksum(data.Checksum)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", data.Level, err)
	}

	res, err := Simulate(data, m, cfg, logger)
	if err != nil {
		return nil, err
	}
	if res.Checksum != want {
		return res, fmt.Errorf("replay %s: got %s, recorded %s: %w",
			data.Level, FormatChecksum(res.Checksum), data.Checksum, ErrChecksumMismatch)
	}
	return res, nil
}
