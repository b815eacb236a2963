package dogisland

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dogisland/internal/core"
)

// hudRows is the number of screen rows above the world view.
const hudRows = 1

// Visual characters for rendering
const (
	WaterChar   = '~'
	IslandChar  = '░'
	FactoryChar = '▓'
)

// sprite is the character drawn for a visual key.
type sprite struct {
	r rune
	c core.Color
}

// sprites maps visual keys to characters. Keys missing from the table are
// not drawn; the simulation does not depend on them.
var sprites = map[string]sprite{
	"dog1Asleep": {'z', core.ColorGray},
	"dog2Asleep": {'z', core.ColorGray},
	"dog3Asleep": {'z', core.ColorGray},
	"dog4Asleep": {'z', core.ColorGray},
	"dog1Awake":  {'d', core.ColorBrightYellow},
	"dog2Awake":  {'d', core.ColorOrange},
	"dog3Awake":  {'d', core.ColorBrightWhite},
	"dog4Awake":  {'d', core.ColorBrightCyan},

	"shipEmptyLeft":  {'◁', core.ColorWhite},
	"shipEmptyRight": {'▷', core.ColorWhite},
	"shipFullLeft":   {'◀', core.ColorBrightGreen},
	"shipFullRight":  {'▶', core.ColorBrightGreen},

	"pirateLeft":  {'◀', core.ColorBrightRed},
	"pirateRight": {'▶', core.ColorBrightRed},
}

// viewport maps the camera rectangle onto the screen rows below the HUD.
type viewport struct {
	cam    core.Rect
	w, h   int     // Size in cells
	sx, sy float64 // World units per cell
}

func newViewport(cam core.Rect, screenW, screenH int) viewport {
	v := viewport{cam: cam, w: core.Max(1, screenW), h: core.Max(1, screenH-hudRows)}
	v.sx = cam.W / float64(v.w)
	v.sy = cam.H / float64(v.h)
	return v
}

// cells returns the screen cell span [x0, x1) x [y0, y1) covered by r.
// Every non-empty rectangle covers at least one cell.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor((r.X - v.cam.X) / v.sx))
	x1 = int(math.Ceil((r.Right() - v.cam.X) / v.sx))
	y0 = int(math.Floor((r.Y-v.cam.Y)/v.sy)) + hudRows
	y1 = int(math.Ceil((r.Bottom()-v.cam.Y)/v.sy)) + hudRows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// toWorld returns the world point at the center of screen cell (cx, cy).
func (v viewport) toWorld(cx, cy int) core.Vec {
	return core.Vec{
		X: v.cam.X + (float64(cx)+0.5)*v.sx,
		Y: v.cam.Y + (float64(cy-hudRows)+0.5)*v.sy,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// ScreenToWorld maps a screen cell to world coordinates for pointer
// steering. Cells in the HUD map to the top edge of the viewport.
func (g *Game) ScreenToWorld(cx, cy, screenW, screenH int) core.Vec {
	v := newViewport(g.camera.Rect, screenW, screenH)
	p := v.toWorld(cx, core.Max(cy, hudRows))
	p.X = core.ClampF(p.X, 0, g.world.Width)
	p.Y = core.ClampF(p.Y, 0, g.world.Height)
	return p
}

// RenderSnapshot draws s into dst: the HUD on the first row and the camera
// view below it. Anything outside the camera is culled.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}
	v := newViewport(s.Camera, dst.Width(), dst.Height())

	drawWater(dst, v)

	for _, island := range s.Islands {
		if !s.Visible(island.Rect) {
			continue
		}
		fillRect(dst, v, island.Rect, IslandChar, core.ColorSand)
	}

	if s.Visible(s.Factory) {
		fillRect(dst, v, s.Factory, FactoryChar, core.ColorOrange)
		x0, y0, x1, y1 := v.cells(s.Factory)
		label := "MED"
		dst.DrawText(x0+(x1-x0-len(label))/2, (y0+y1)/2, label, core.ColorBrightWhite)
	}

	for _, island := range s.Islands {
		for _, d := range island.Dogs {
			if s.Visible(d.Rect) {
				drawSprite(dst, v, d.Rect, d.Visual)
			}
		}
	}

	if s.Pirate.Active && s.Visible(s.Pirate.Rect) {
		drawSprite(dst, v, s.Pirate.Rect, s.Pirate.Visual)
	}
	drawSprite(dst, v, s.Player.Rect, s.Player.Visual)

	drawHUD(dst, s)

	switch {
	case s.Cleared:
		drawCenteredMessage(dst, "ALL DOGS AWAKE", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case s.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawWater tiles the sea background. The pattern is anchored to world
// coordinates so it scrolls with the camera.
func drawWater(dst *core.Screen, v viewport) {
	const tile = 150.0
	for cy := hudRows; cy < dst.Height(); cy++ {
		for cx := 0; cx < dst.Width(); cx++ {
			p := v.toWorld(cx, cy)
			tx := int(math.Floor(p.X / tile))
			ty := int(math.Floor(p.Y / tile))
			if (tx+2*ty)%5 == 0 {
				dst.SetColored(cx, cy, WaterChar, core.ColorBlue)
			}
		}
	}
}

func fillRect(dst *core.Screen, v viewport, r core.Rect, ch rune, c core.Color) {
	x0, y0, x1, y1 := v.cells(r)
	dst.FillRect(x0, core.Max(y0, hudRows), x1, y1, ch, c)
}

// drawSprite fills r with the character for visual. Unknown keys are skipped.
func drawSprite(dst *core.Screen, v viewport, r core.Rect, visual string) {
	sp, ok := sprites[visual]
	if !ok {
		return
	}
	fillRect(dst, v, r, sp.r, sp.c)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.FillRect(0, 0, dst.Width(), hudRows, ' ', core.ColorDefault)

	sleeping, total := 0, 0
	for _, island := range s.Islands {
		for _, d := range island.Dogs {
			total++
			if !d.Awake {
				sleeping++
			}
		}
	}

	cargo := "empty"
	cargoColor := core.ColorGray
	if s.Player.HasMedicine {
		cargo = "MEDICINE"
		cargoColor = core.ColorBrightGreen
	}

	x := 1
	text := fmt.Sprintf("Score: %d", s.Score)
	dst.DrawText(x, 0, text, core.ColorBrightYellow)
	x += len(text) + 3

	text = "Hold: "
	dst.DrawText(x, 0, text, core.ColorDefault)
	x += len(text)
	dst.DrawText(x, 0, cargo, cargoColor)
	x += len(cargo) + 3

	text = fmt.Sprintf("Sleeping: %d/%d", sleeping, total)
	dst.DrawText(x, 0, text, core.ColorDefault)
	x += len(text) + 3

	if s.Pirate.Active {
		c := core.ColorGray
		if s.Pirate.Mode == (Chasing{}).Name() {
			c = core.ColorBrightRed
		}
		dst.DrawText(x, 0, "Pirate: "+s.Pirate.Mode, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
