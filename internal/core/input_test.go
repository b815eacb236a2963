package core

import (
	"sync"
	"testing"
)

func TestDirectionSet(t *testing.T) {
	var s DirectionSet
	if !s.Empty() {
		t.Fatal("zero DirectionSet should be empty")
	}

	s = s.With(DirUp).With(DirLeft)
	if !s.Has(DirUp) || !s.Has(DirLeft) {
		t.Errorf("set should hold up and left, got %08b", s)
	}
	if s.Has(DirDown) || s.Has(DirRight) {
		t.Errorf("set should not hold down or right, got %08b", s)
	}

	s = s.Without(DirUp)
	if s.Has(DirUp) {
		t.Error("Without(DirUp) should release up")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestControlsPointerClearsDirections(t *testing.T) {
	c := NewControls()
	c.KeyDown(DirUp)
	c.KeyDown(DirRight)

	c.PointerDown(100, 200)
	f := c.Frame()
	if !f.Held.Empty() {
		t.Errorf("pointer down should clear held directions, got %08b", f.Held)
	}
	if !f.Pointer.Active || f.Pointer.X != 100 || f.Pointer.Y != 200 {
		t.Errorf("pointer = %+v, expected active at (100, 200)", f.Pointer)
	}

	c.PointerMove(150, 250)
	f = c.Frame()
	if f.Pointer.X != 150 || f.Pointer.Y != 250 {
		t.Errorf("pointer move not applied: %+v", f.Pointer)
	}

	c.PointerUp()
	if c.Frame().Pointer.Active {
		t.Error("pointer up should stop steering")
	}

	// Moves without a held pointer are ignored
	c.PointerMove(1, 1)
	if f := c.Frame(); f.Pointer.X == 1 {
		t.Error("pointer move while released should not change the target")
	}
}

func TestControlsKeyCancelsPointer(t *testing.T) {
	c := NewControls()
	c.PointerDown(10, 10)
	c.KeyDown(DirLeft)

	f := c.Frame()
	if f.Pointer.Active {
		t.Error("direction press should cancel pointer steering")
	}
	if !f.Held.Has(DirLeft) {
		t.Error("left should be held")
	}

	c.KeyUp(DirLeft)
	if !c.Frame().Held.Empty() {
		t.Error("key up should release the direction")
	}
}

func TestControlsOneShotActionsConsumed(t *testing.T) {
	c := NewControls()
	c.KeyDown(DirDown)
	c.Trigger(ActionPause)

	first := c.Frame()
	if !first.Has(ActionPause) {
		t.Error("first frame should carry the pause action")
	}

	second := c.Frame()
	if second.Has(ActionPause) {
		t.Error("pause should be consumed after one frame")
	}
	if !second.Held.Has(DirDown) {
		t.Error("held directions should persist across frames")
	}
}

func TestControlsConcurrentProducers(t *testing.T) {
	c := NewControls()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.KeyDown(DirUp)
				c.PointerDown(float64(i), float64(j))
				c.KeyUp(DirUp)
				c.Trigger(ActionPause)
			}
		}(i)
	}
	for i := 0; i < 100; i++ {
		_ = c.Frame()
	}
	wg.Wait()
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.Held = f.Held.With(DirUp)

	clone := f.Clone()
	clone.Set(ActionPause)

	if f.Has(ActionPause) {
		t.Error("modifying clone should not affect original")
	}
	if !clone.Has(ActionRestart) || !clone.Held.Has(DirUp) {
		t.Error("clone should carry actions and held directions")
	}
}
