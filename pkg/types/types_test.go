package types

import "testing"

func TestGiftKindRoundTrip(t *testing.T) {
	for _, g := range AllGifts {
		t.Run(g.String(), func(t *testing.T) {
			parsed, err := ParseGiftKind(g.String())
			if err != nil {
				t.Fatalf("ParseGiftKind(%q) error: %v", g.String(), err)
			}
			if parsed != g {
				t.Errorf("ParseGiftKind(%q) = %v, want %v", g.String(), parsed, g)
			}
		})
	}

	if _, err := ParseGiftKind("roses"); err == nil {
		t.Error("ParseGiftKind should reject unknown identifiers")
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 120, Height: 48}

	if c := r.Center(); c.X != 70 || c.Y != 44 {
		t.Errorf("Center() = %+v, want {70 44}", c)
	}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{50, 30}, true},
		{"top-left edge", Point{10, 20}, true},
		{"bottom-right edge", Point{130, 68}, true},
		{"left of box", Point{9, 30}, false},
		{"below box", Point{50, 69}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
