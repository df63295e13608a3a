package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/sectorphys/internal/application/replay"
	"github.com/younwookim/sectorphys/internal/application/state"
	"github.com/younwookim/sectorphys/internal/application/system"
	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/ecs"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Viewer implements ebiten.Game: one player actor driven through a level
type Viewer struct {
	config   *config.PhysicsConfig
	logger   *zap.Logger
	levelMap *level.Map
	instance *level.MapInstance
	world    *ecs.World
	player   ecs.EntityID
	state    state.SimState

	inputSystem   *system.InputSystem
	envSystem     *system.EnvironmentSystem
	physicsSystem *system.PhysicsSystem

	screenW int
	screenH int
	dt      float64
	tick    int
	session int // restarts since launch

	// overview shows the whole level instead of following the player
	overview bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// NewViewer creates a viewer with the player at the level spawn
func NewViewer(cfg *config.PhysicsConfig, m *level.Map, recordFilename string, logger *zap.Logger) *Viewer {
	v := &Viewer{
		config:         cfg,
		logger:         logger,
		levelMap:       m,
		inputSystem:    system.NewInputSystem(cfg),
		envSystem:      system.NewEnvironmentSystem(logger),
		physicsSystem:  system.NewPhysicsSystem(cfg, logger),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		dt:             1.0 / float64(cfg.Display.Framerate),
		recordFilename: recordFilename,
	}
	v.restart()
	return v
}

// restart builds a fresh map instance and player
func (v *Viewer) restart() {
	if v.instance != nil {
		v.session++
	}
	v.instance = level.NewMapInstance(v.levelMap)
	v.world = ecs.NewWorld()
	v.player = v.world.CreatePlayer(v.levelMap.Spawn, v.levelMap.SpawnYaw, ecs.BoxCollider{
		Radius: v.config.Actor.Radius,
		Height: v.config.Actor.Height,
	})
	v.tick = 0
	v.state = state.StateRunning

	if v.recordFilename != "" {
		v.recorder = replay.NewRecorder(v.levelMap.Name, v.dt, v.levelMap.Spawn)
	}

	v.logger.Info("Level started",
		zap.String("level", v.levelMap.Name),
		zap.Stringer("instance", v.instance.ID),
		zap.Int("sectors", v.instance.NumSectors()),
		zap.Int("session", v.session),
		zap.Bool("recording", v.recorder != nil),
	)
}

// Update proceeds the simulation by one tick
func (v *Viewer) Update() error {
	input := v.inputSystem.GetInput()

	if input.Pause {
		v.state = v.state.TogglePause()
	}
	if input.Map {
		v.overview = !v.overview
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		v.saveRecording()
	}

	// R: back to spawn with fresh sector state; the next recording gets its own file
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.saveRecording()
		v.restart()
		return nil
	}

	if !v.state.Ticking() {
		return nil
	}

	v.inputSystem.UpdateActor(v.world, v.player, input)
	v.step(input.Use)
	return nil
}

// step runs one tick with the commanded velocity already set, in the same
// order replay.Simulate does
func (v *Viewer) step(door bool) {
	velocity := v.world.Velocity[v.player].Velocity
	if door {
		v.envSystem.Queue(system.DoorCommands(v.instance, v.config.Door.Tag)...)
	}
	v.envSystem.Queue(system.StrobeCommands(v.instance, v.config.Strobe, v.tick)...)
	v.envSystem.Commit(v.instance)
	v.physicsSystem.Update(v.world, v.instance, v.dt)
	v.tick++

	if v.recorder != nil {
		v.recorder.RecordTick(velocity, door, v.playerState())
	}
}

func (v *Viewer) playerState() system.ActorState {
	return system.ActorState{
		Position: v.world.GetPlayerPosition(),
		Velocity: v.world.Velocity[v.player].Velocity,
	}
}

// saveRecording saves the current recording to file
func (v *Viewer) saveRecording() {
	if v.recorder == nil || v.recorder.FrameCount() == 0 {
		return
	}

	filename := sessionFilename(v.recordFilename, v.session)
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := v.recorder.Save(filename); err != nil {
		v.logger.Error("Failed to save recording", zap.String("file", filename), zap.Error(err))
		return
	}
	v.logger.Info("Recording saved",
		zap.String("file", filename),
		zap.Int("ticks", v.recorder.FrameCount()),
		zap.String("checksum", v.recorder.GetData().Checksum),
	)
}

// sessionFilename keeps the first session at base and numbers later ones,
// e.g. run.json, run_1.json, run_2.json.
func sessionFilename(base string, session int) string {
	if base == "" || session == 0 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), session, ext)
}

// Layout returns the logical screen size
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screenW, v.screenH
}
