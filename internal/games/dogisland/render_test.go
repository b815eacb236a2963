package dogisland

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/dogisland/internal/core"
)

func TestRenderHUDAndShip(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Sleeping: 8/8") {
		t.Errorf("Unexpected HUD %q", hud)
	}
	if !strings.ContainsRune(screen.String(), '▷') {
		t.Error("Expected the empty ship glyph on screen")
	}
	if !strings.Contains(screen.String(), "MED") {
		t.Error("Expected the factory label on screen")
	}
}

func TestRenderSkipsUnknownVisuals(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.Snapshot()
	s.Player.Visual = "shipSubmarineLeft"

	screen := core.NewScreen(80, 24)
	RenderSnapshot(screen, s)

	if strings.ContainsRune(screen.String(), '▷') || strings.ContainsRune(screen.String(), '◁') {
		t.Error("Unknown visual keys should not be drawn")
	}
}

func TestRenderCullsOutsideCamera(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.Snapshot()
	screen := core.NewScreen(80, 24)

	RenderSnapshot(screen, s)
	if !strings.ContainsRune(screen.String(), 'z') {
		t.Fatal("Expected sleeping dogs near the start position")
	}

	// island1 is off camera at the start.
	if s.Visible(s.Islands[0].Rect) {
		t.Fatal("island1 should be off camera")
	}
	s.Islands = s.Islands[:1]
	RenderSnapshot(screen, s)
	if strings.ContainsRune(screen.String(), 'z') {
		t.Error("Dogs outside the camera should be culled")
	}
}

func TestRenderHUDPirateMode(t *testing.T) {
	tests := []struct {
		mode     string
		expected core.Color
	}{
		{Patrolling{}.Name(), core.ColorGray},
		{(Chasing{}).Name(), core.ColorBrightRed},
	}

	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			g := newTestGame(t, nil)
			s := g.Snapshot()
			s.Pirate.Mode = tc.mode

			screen := core.NewScreen(120, 24)
			RenderSnapshot(screen, s)

			label := "Pirate: " + tc.mode
			hud := screen.Row(0)
			i := strings.Index(hud, label)
			if i < 0 {
				t.Fatalf("Expected %q in HUD %q", label, hud)
			}
			x := len([]rune(hud[:i]))
			if got := screen.GetCell(x, 0).Color; got != tc.expected {
				t.Errorf("Pirate HUD color = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRenderMessages(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.Snapshot()
	screen := core.NewScreen(80, 24)

	s.Paused = true
	RenderSnapshot(screen, s)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Expected pause message")
	}

	s.Cleared = true
	RenderSnapshot(screen, s)
	if !strings.Contains(screen.String(), "ALL DOGS AWAKE") {
		t.Error("Expected cleared message")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, nil)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen) // must not panic
	}
}

func TestScreenToWorld(t *testing.T) {
	g := newTestGame(t, nil)
	cam := g.camera.Rect

	// 80x24 screen: 80 columns by 23 world rows.
	p := g.ScreenToWorld(40, 12, 80, 24)
	sx, sy := cam.W/80, cam.H/23
	want := core.Vec{X: cam.X + 40.5*sx, Y: cam.Y + 11.5*sy}
	if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 {
		t.Errorf("Expected %+v, got %+v", want, p)
	}

	// Round trip: the player's cell maps back inside the player.
	v := newViewport(cam, 80, 24)
	x0, y0, x1, y1 := v.cells(g.player.Rect)
	back := g.ScreenToWorld((x0+x1)/2, (y0+y1)/2, 80, 24)
	if !g.player.Rect.Contains(back.X, back.Y) {
		t.Errorf("Expected %+v inside the player %+v", back, g.player.Rect)
	}
}
