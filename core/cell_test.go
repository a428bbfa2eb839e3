package core

import "testing"

func TestCellRoundTrip(t *testing.T) {
	c := CellOf(5, 5)
	if c.X != 250 || c.Y != 250 {
		t.Fatalf("CellOf(5,5) = %v, want (250,250)", c)
	}
	if !c.Aligned() {
		t.Error("Expected aligned cell")
	}
	if got := c.Vec().Cell(); got != c {
		t.Errorf("Vec().Cell() = %v, want %v", got, c)
	}
	i, j := c.Index()
	if i != 5 || j != 5 {
		t.Errorf("Index() = (%d,%d), want (5,5)", i, j)
	}
}

func TestDirectionStep(t *testing.T) {
	start := Splat(250)
	tests := []struct {
		dir  Direction
		want Vec2
	}{
		{DirUp, Vec2{X: 250, Y: 300}},
		{DirDown, Vec2{X: 250, Y: 200}},
		{DirLeft, Vec2{X: 200, Y: 250}},
		{DirRight, Vec2{X: 300, Y: 250}},
	}
	for _, tt := range tests {
		if got := start.Add(tt.dir.Step()); got != tt.want {
			t.Errorf("%v: got %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestAreaBorder(t *testing.T) {
	a := Area{Width: 15, Height: 10}
	if a.Capacity() != 150 {
		t.Errorf("Capacity() = %d, want 150", a.Capacity())
	}

	border := 0
	for i := 0; i < a.Width; i++ {
		for j := 0; j < a.Height; j++ {
			if a.OnBorder(i, j) {
				border++
			}
		}
	}
	if want := a.Width*2 + a.Height*2 - 4; border != want {
		t.Errorf("border cells = %d, want %d", border, want)
	}

	if !a.Contains(CellOf(14, 9)) || a.Contains(CellOf(15, 0)) || a.Contains(Cell{X: -50}) {
		t.Error("Contains returned wrong result at the edges")
	}
}
