package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/sectorphys/internal/application/state"
	"github.com/younwookim/sectorphys/internal/ecs"
	"github.com/younwookim/sectorphys/internal/geometry"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorWall        = color.RGBA{200, 200, 220, 255}
	colorPortalOpen  = color.RGBA{80, 160, 220, 255}
	colorPortalShut  = color.RGBA{220, 90, 70, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorFacing      = color.RGBA{255, 255, 255, 200}
	colorPauseShadow = color.RGBA{0, 0, 0, 128}
)

// camera maps level coordinates to screen pixels; level Y points up
type camera struct {
	centre  mgl64.Vec2
	zoom    float64
	screenW int
	screenH int
}

func (c camera) toScreen(p mgl64.Vec2) (float32, float32) {
	x := (p[0]-c.centre[0])*c.zoom + float64(c.screenW)/2
	y := float64(c.screenH)/2 - (p[1]-c.centre[1])*c.zoom
	return float32(x), float32(y)
}

// overviewMargin is the screen border kept around the whole-level view, in pixels
const overviewMargin = 16

// overviewCamera fits bounds inside the screen
func overviewCamera(bounds geometry.AABB2, screenW, screenH int) camera {
	size := bounds.Max.Sub(bounds.Min)
	zoom := 1.0
	if size[0] > 0 && size[1] > 0 {
		zoom = min(
			float64(screenW-2*overviewMargin)/size[0],
			float64(screenH-2*overviewMargin)/size[1],
		)
	}
	return camera{
		centre:  bounds.Min.Add(bounds.Max).Mul(0.5),
		zoom:    zoom,
		screenW: screenW,
		screenH: screenH,
	}
}

// Draw renders the level top-down, around the player or as an overview (M)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	tr := v.world.Transform[v.player]
	cam := camera{
		centre:  v.world.GetPlayerPosition().Vec2(),
		zoom:    v.config.Display.Zoom,
		screenW: v.screenW,
		screenH: v.screenH,
	}
	if v.overview {
		cam = overviewCamera(v.levelMap.Bounds(), v.screenW, v.screenH)
	}
	box := v.world.BoxCollider[v.player].BBox()

	v.drawLinedefs(screen, cam, tr.Position[2]+box.Min[2], tr.Position[2]+box.Max[2])
	v.drawPlayer(screen, cam, tr, box)
	v.drawHUD(screen, tr)

	if v.state == state.StatePaused {
		v.drawPauseOverlay(screen)
	}
}

func (v *Viewer) drawLinedefs(screen *ebiten.Image, cam camera, zMin, zMax float64) {
	for i := range v.levelMap.Linedefs {
		ld := &v.levelMap.Linedefs[i]
		x0, y0 := cam.toScreen(ld.Line.Point)
		x1, y1 := cam.toScreen(ld.Line.End())

		clr := colorWall
		width := float32(2)
		if ld.IsPortal() {
			width = 1
			clr = colorPortalShut
			if v.instance.PortalFits(ld, zMin, zMax) {
				clr = colorPortalOpen
			}
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

func (v *Viewer) drawPlayer(screen *ebiten.Image, cam camera, tr ecs.Transform, box geometry.AABB3) {
	footprint := box.XY().Offset(tr.Position.Vec2())
	x0, y1 := cam.toScreen(footprint.Min)
	x1, y0 := cam.toScreen(footprint.Max)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, colorPlayer, false)

	cx, cy := cam.toScreen(tr.Position.Vec2())
	reach := box.Max[0] * 1.5
	fx, fy := cam.toScreen(tr.Position.Vec2().Add(mgl64.Vec2{math.Cos(tr.Yaw), math.Sin(tr.Yaw)}.Mul(reach)))
	vector.StrokeLine(screen, cx, cy, fx, fy, 1, colorFacing, true)
}

func (v *Viewer) drawHUD(screen *ebiten.Image, tr ecs.Transform) {
	sectorIndex := v.levelMap.SectorAt(tr.Position.Vec2())
	sector := v.instance.Sector(sectorIndex)
	vel := v.world.Velocity[v.player].Velocity

	rec := ""
	if v.recorder != nil {
		rec = fmt.Sprintf(" | REC %d", v.recorder.FrameCount())
	}

	text := fmt.Sprintf(
		"WASD: Move | Space/C: Up/Down | E: Door | M: Map | P: Pause | R: Restart\n"+
			"%s tick %d%s\n"+
			"pos %.2f %.2f %.2f\n"+
			"vel %.2f %.2f %.2f\n"+
			"sector %d floor %.0f ceiling %.0f light %.2f",
		v.state, v.tick, rec,
		tr.Position[0], tr.Position[1], tr.Position[2],
		vel[0], vel[1], vel[2],
		sectorIndex, sector.FloorHeight, sector.CeilingHeight, sector.LightLevel,
	)
	ebitenutil.DebugPrint(screen, text)
}

func (v *Viewer) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(v.screenW), float32(v.screenH), colorPauseShadow, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", v.screenW/2-50, v.screenH/2-20)
}
