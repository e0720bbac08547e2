package game

import (
	"testing"
)

func TestHitsBounds(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		expected bool
	}{
		{"mid-air", 12.0, false},
		{"just below ceiling", 0.5, false},
		{"ceiling exactly", 0.0, true},
		{"above ceiling", -1.0, true},
		{"just above floor", 22.9, false},
		{"floor exactly", 23.0, true},
		{"below floor", 24.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsBounds(tc.position, 24); got != tc.expected {
				t.Errorf("HitsBounds(%v, 24) = %v, expected %v", tc.position, got, tc.expected)
			}
		})
	}
}

func TestHitsObstacleOpeningMargin(t *testing.T) {
	// Opening centered: top row 8.0, bottom row 15.0. Safe band is
	// [9.0, 14.0] - strictly one row inside each edge.
	o := newTestObstacle(10, 1)
	o.openingFraction = 0.5
	actorCol := 10

	tests := []struct {
		name     string
		position float64
		expected bool
	}{
		{"center of opening", 12.0, false},
		{"one row inside top edge", 9.0, false},
		{"top edge exactly", 8.0, true},
		{"above opening", 5.0, true},
		{"one row inside bottom edge", 14.0, false},
		{"bottom edge exactly", 15.0, true},
		{"below opening", 18.0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsObstacle(tc.position, actorCol, o); got != tc.expected {
				t.Errorf("HitsObstacle(%v) = %v, expected %v", tc.position, got, tc.expected)
			}
		})
	}
}

func TestHitsObstacleBand(t *testing.T) {
	// Radius 3 plus the one-column margin: an actor at column 10 is in
	// band while the center is within [6, 14].
	actorCol := 10
	position := 2.0 // Well outside any opening

	tests := []struct {
		name     string
		center   int
		expected bool
	}{
		{"band right edge", 14, true},
		{"past right edge", 15, false},
		{"band left edge", 6, true},
		{"past left edge", 5, false},
		{"dead center", 10, true},
		{"far away", 60, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestObstacle(tc.center, 1)
			o.openingFraction = 0.5
			if got := HitsObstacle(position, actorCol, o); got != tc.expected {
				t.Errorf("HitsObstacle(center=%d) = %v, expected %v", tc.center, got, tc.expected)
			}
		})
	}
}

func TestCollisionIsPure(t *testing.T) {
	o := newTestObstacle(10, 1)
	o.openingFraction = 0.5
	centerBefore := o.CenterColumn()
	fractionBefore := o.OpeningFraction()

	HitsObstacle(12.0, 10, o)
	HitsObstacle(2.0, 10, o)

	if o.CenterColumn() != centerBefore || o.OpeningFraction() != fractionBefore {
		t.Error("collision checks must not mutate the obstacle")
	}
}
