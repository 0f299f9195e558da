package runner

import (
	"testing"
	"time"
)

func TestSpawnerThreshold(t *testing.T) {
	s := NewSpawner(&seqRand{vals: []float64{0.5}})

	if _, ok := s.Advance(SpawnInterval); ok {
		t.Fatal("reaching the interval exactly should not spawn")
	}
	if _, ok := s.Advance(time.Millisecond); !ok {
		t.Fatal("passing the interval should spawn")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %v after spawn, expected 0", s.Pending())
	}
}

func TestSpawnerResetsInsteadOfDecrementing(t *testing.T) {
	s := NewSpawner(&seqRand{vals: []float64{0.5}})

	if _, ok := s.Advance(10 * SpawnInterval); !ok {
		t.Fatal("large elapsed should spawn")
	}
	if s.Pending() != 0 {
		t.Fatalf("Pending() = %v, expected 0", s.Pending())
	}
	if _, ok := s.Advance(0); ok {
		t.Error("lag must not produce a second spawn")
	}
}

func TestSpawnerObstacleShape(t *testing.T) {
	tests := []struct {
		name  string
		vals  []float64
		wantW float64
		wantH float64
	}{
		{"minimum", []float64{0, 0}, 20, 20},
		{"height drawn first", []float64{0.5, 0.25}, 30, 40},
		{"near maximum", []float64{0.999, 0.999}, 20 + 0.999*40, 20 + 0.999*40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(&seqRand{vals: tc.vals})
			ob, ok := s.Advance(SpawnInterval + time.Millisecond)
			if !ok {
				t.Fatal("expected spawn")
			}
			if ob.Width != tc.wantW || ob.Height != tc.wantH {
				t.Errorf("size = %vx%v, expected %vx%v", ob.Width, ob.Height, tc.wantW, tc.wantH)
			}
			if ob.Width < 20 || ob.Width > 60 || ob.Height < 20 || ob.Height > 60 {
				t.Errorf("size out of range: %vx%v", ob.Width, ob.Height)
			}
			if ob.X != FieldWidth+SpawnMargin {
				t.Errorf("X = %v, expected %v", ob.X, FieldWidth+SpawnMargin)
			}
			if ob.Y+ob.Height != GroundY {
				t.Errorf("bottom = %v, expected ground %v", ob.Y+ob.Height, GroundY)
			}
		})
	}
}

func TestSpawnerIgnoresNegativeElapsed(t *testing.T) {
	s := NewSpawner(&seqRand{vals: []float64{0.5}})
	s.Advance(time.Second)
	s.Advance(-time.Second)

	if s.Pending() != time.Second {
		t.Errorf("Pending() = %v, expected 1s", s.Pending())
	}
}
