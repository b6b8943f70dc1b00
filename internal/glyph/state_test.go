package glyph

import "testing"

func TestInitialStateIsPausedShapeOfHalf(t *testing.T) {
	if got := InitialState(Left); got != PausedLeft {
		t.Fatalf("expected paused-left for left half, got %v", got)
	}
	if got := InitialState(Right); got != PausedRight {
		t.Fatalf("expected paused-right for right half, got %v", got)
	}
}

func TestNextStaysWithinHalfStates(t *testing.T) {
	for _, h := range []Half{Left, Right} {
		s := InitialState(h)
		for i := range 10 {
			s = s.Next(h)
			if !s.Reachable(h) {
				t.Fatalf("%v half reached %v after %d toggles", h, s, i+1)
			}
		}
	}
}

func TestNextTwiceReturnsToStart(t *testing.T) {
	for _, h := range []Half{Left, Right} {
		for _, s := range []State{InitialState(h), Playing} {
			if got := s.Next(h).Next(h); got != s {
				t.Fatalf("%v half: %v -> %v after two toggles", h, s, got)
			}
		}
	}
}

func TestNextFromPlayingReturnsToOwnPausedShape(t *testing.T) {
	if got := Playing.Next(Left); got != PausedLeft {
		t.Fatalf("expected paused-left, got %v", got)
	}
	if got := Playing.Next(Right); got != PausedRight {
		t.Fatalf("expected paused-right, got %v", got)
	}
}

func TestReachable(t *testing.T) {
	if PausedRight.Reachable(Left) {
		t.Fatal("left half must never show paused-right")
	}
	if PausedLeft.Reachable(Right) {
		t.Fatal("right half must never show paused-left")
	}
	if !Playing.Reachable(Left) || !Playing.Reachable(Right) {
		t.Fatal("playing must be reachable from both halves")
	}
}
