package fov

import (
	"testing"

	"github.com/babysitterd/chasm/internal/dungeon"
)

// openMap builds an all-floor map of the given size.
func openMap(w, h int) *dungeon.Map {
	m := dungeon.NewMap(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			*m.At(x, y) = dungeon.Empty()
		}
	}
	return m
}

func TestVisibleBeforeRecompute(t *testing.T) {
	f := New()
	if f.IsVisible(0, 0) {
		t.Error("fresh field of view reported a visible tile")
	}
}

func TestRadiusLimit(t *testing.T) {
	m := openMap(30, 30)
	f := New()
	f.Recompute(m, 15, 15, 5)

	if !f.IsVisible(15, 15) {
		t.Error("origin not visible")
	}
	if !f.IsVisible(20, 15) {
		t.Error("tile at exact radius not visible")
	}
	if f.IsVisible(21, 15) {
		t.Error("tile beyond radius visible")
	}
	// Diagonal: (19, 19) is distance sqrt(32) > 5.
	if f.IsVisible(19, 19) {
		t.Error("diagonal tile beyond radius visible")
	}
}

func TestWallsBlockSight(t *testing.T) {
	m := openMap(30, 30)
	// Wall column between origin and target.
	for y := 0; y < 30; y++ {
		*m.At(18, y) = dungeon.Wall()
	}

	f := New()
	f.Recompute(m, 15, 15, 10)

	if !f.IsVisible(17, 15) {
		t.Error("floor before the wall not visible")
	}
	if !f.IsVisible(18, 15) {
		t.Error("the wall itself should be lit")
	}
	if f.IsVisible(19, 15) {
		t.Error("tile behind the wall visible")
	}
	if f.IsVisible(25, 15) {
		t.Error("distant tile behind the wall visible")
	}
}

func TestRecomputeClearsPreviousView(t *testing.T) {
	m := openMap(30, 30)
	f := New()

	f.Recompute(m, 5, 5, 4)
	if !f.IsVisible(5, 5) {
		t.Fatal("origin not visible after first recompute")
	}

	f.Recompute(m, 25, 25, 4)
	if f.IsVisible(5, 5) {
		t.Error("old origin still visible after moving")
	}
	if !f.IsVisible(25, 25) {
		t.Error("new origin not visible")
	}
}

func TestRecomputeSurvivesMapResize(t *testing.T) {
	f := New()
	f.Recompute(openMap(10, 10), 5, 5, 3)
	f.Recompute(openMap(40, 20), 30, 10, 3)

	if !f.IsVisible(30, 10) {
		t.Error("origin not visible after map size change")
	}
	if f.IsVisible(5, 5) {
		t.Error("stale visibility from the smaller map")
	}
}

func TestOutOfBoundsQueries(t *testing.T) {
	m := openMap(10, 10)
	f := New()
	f.Recompute(m, 0, 0, 5)

	if f.IsVisible(-1, 0) || f.IsVisible(0, -1) || f.IsVisible(10, 0) || f.IsVisible(0, 10) {
		t.Error("out-of-bounds tile reported visible")
	}
	if !f.IsVisible(0, 0) {
		t.Error("corner origin not visible")
	}
}
