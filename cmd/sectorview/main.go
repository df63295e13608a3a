package main

import (
	"flag"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sectorphys/internal/application/replay"
	"github.com/younwookim/sectorphys/internal/application/system"
	"github.com/younwookim/sectorphys/internal/domain/level"
	"github.com/younwookim/sectorphys/internal/infrastructure/config"
	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "demo", "Level to load from configs/levels")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	verifyFlag := flag.String("verify", "", "Replay a recording headlessly and check its checksum")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	loader, err := newEmbeddedLoader()
	if err != nil {
		logger.Fatal("Failed to get config subfs", zap.Error(err))
	}
	cfg, err := loader.LoadPhysics()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if *verifyFlag != "" {
		if err := verifyReplay(loader, cfg, *verifyFlag, logger); err != nil {
			logger.Fatal("Replay verification failed", zap.String("file", *verifyFlag), zap.Error(err))
		}
		return
	}

	m, err := loadMap(loader, *levelFlag)
	if err != nil {
		logger.Fatal("Failed to load level", zap.String("level", *levelFlag), zap.Error(err))
	}

	viewer := NewViewer(cfg, m, *recordFlag, logger)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Sector View - %s", m.Name))
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(viewer); err != nil {
		logger.Fatal("Viewer stopped", zap.Error(err))
	}
	viewer.saveRecording()
}

func newEmbeddedLoader() (*config.Loader, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadMap(loader *config.Loader, name string) (*level.Map, error) {
	levelCfg, err := loader.LoadLevel(name)
	if err != nil {
		return nil, err
	}
	return system.LoadLevel(levelCfg)
}

// verifyReplay re-runs a recording against the level it names
func verifyReplay(loader *config.Loader, cfg *config.PhysicsConfig, filename string, logger *zap.Logger) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}
	m, err := loadMap(loader, data.Level)
	if err != nil {
		return err
	}

	res, err := replay.Verify(data, m, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("Replay verified",
		zap.String("level", data.Level),
		zap.Int("ticks", res.Ticks),
		zap.String("checksum", data.Checksum),
		zap.Float64s("position", res.Final.Position[:]),
	)
	return nil
}
