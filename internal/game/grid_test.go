package game

import "testing"

func TestGrid_InBounds(t *testing.T) {
	g := NewGrid(10, 6, 64)
	cases := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true},
		{9, 5, true},
		{10, 5, false},
		{9, 6, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.col, c.row); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}
}

func TestGrid_PassableRequiresBoundsAndOpen(t *testing.T) {
	g := NewGrid(10, 6, 64)
	g.ToggleObstacle(3, 3)

	if g.IsPassable(3, 3) {
		t.Fatal("blocked tile should not be passable")
	}
	if !g.IsPassable(3, 4) {
		t.Fatal("open in-bounds tile should be passable")
	}
	if g.IsPassable(-1, 2) {
		t.Fatal("out-of-bounds tile should not be passable")
	}
}

func TestGrid_ToggleFlipsMembership(t *testing.T) {
	g := NewGrid(10, 6, 64)
	g.ToggleObstacle(2, 2)
	if !g.IsBlocked(2, 2) {
		t.Fatal("first toggle should block")
	}
	g.ToggleObstacle(2, 2)
	if g.IsBlocked(2, 2) {
		t.Fatal("second toggle should unblock")
	}
}

func TestGrid_ToggleOutOfBoundsIsNoop(t *testing.T) {
	g := NewGrid(10, 6, 64)
	g.ToggleObstacle(-1, 0)
	g.ToggleObstacle(10, 0)
	if g.BlockedCount() != 0 {
		t.Fatalf("out-of-bounds toggles should place nothing, got %d", g.BlockedCount())
	}
}

func TestGrid_PixelConversionsRoundTrip(t *testing.T) {
	g := NewGrid(10, 6, 64)
	x, y := g.ToPx(3, 2)
	if x != 192 || y != 128 {
		t.Fatalf("ToPx(3,2) = (%d,%d), want (192,128)", x, y)
	}
	cx, cy := g.CenterPx(3, 2)
	if cx != 224 || cy != 160 {
		t.Fatalf("CenterPx(3,2) = (%d,%d), want (224,160)", cx, cy)
	}
	col, row := g.FromPx(cx, cy)
	if col != 3 || row != 2 {
		t.Fatalf("FromPx of center = (%d,%d), want (3,2)", col, row)
	}
}
