package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

const testWidth, testHeight = 32, 24

func TestStageDirectionCommitsOnNextTick(t *testing.T) {
	s := NewSnake(Point{X: 10, Y: 10}, DirRight)

	s.StageDirection(DirUp)
	if s.Direction != DirRight {
		t.Fatalf("staging changed live direction to %s before commit", s.Direction)
	}

	s.commitDirection()
	if s.Direction != DirUp {
		t.Fatalf("Direction = %s after commit, want up", s.Direction)
	}

	// A second commit without new input keeps the direction.
	s.commitDirection()
	if s.Direction != DirUp {
		t.Fatalf("Direction = %s after empty commit, want up", s.Direction)
	}
}

func TestStageDirectionLastWriteWins(t *testing.T) {
	s := NewSnake(Point{X: 10, Y: 10}, DirRight)

	s.StageDirection(DirUp)
	s.StageDirection(DirDown)
	s.commitDirection()

	if s.Direction != DirDown {
		t.Fatalf("Direction = %s, want down (last staged direction)", s.Direction)
	}
}

func TestMoveTrimsTailAndRecordsLast(t *testing.T) {
	s := NewSnake(Point{X: 10, Y: 10}, DirRight)

	s.Move(testWidth, testHeight)

	if len(s.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(s.Body))
	}
	if s.Head() != (Point{X: 11, Y: 10}) {
		t.Fatalf("Head() = %v, want (11,10)", s.Head())
	}
	if s.Last == nil || *s.Last != (Point{X: 10, Y: 10}) {
		t.Fatalf("Last = %v, want (10,10)", s.Last)
	}
}

func TestMoveKeepsTailWhileGrowing(t *testing.T) {
	s := NewSnake(Point{X: 10, Y: 10}, DirRight)

	s.Grow()
	s.Move(testWidth, testHeight)

	if len(s.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2", len(s.Body))
	}
	if s.Last != nil {
		t.Fatalf("Last = %v while growing, want nil", *s.Last)
	}
	if s.Body[0] != (Point{X: 11, Y: 10}) || s.Body[1] != (Point{X: 10, Y: 10}) {
		t.Fatalf("Body = %v, want head (11,10) then (10,10)", s.Body)
	}
}

func TestBodyNeverExceedsTargetLength(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, DirRight)
	s.Grow()
	s.Grow()

	for i := 0; i < 10; i++ {
		s.Move(testWidth, testHeight)
		if len(s.Body) > s.Length {
			t.Fatalf("after move %d: len(Body) = %d exceeds Length = %d", i+1, len(s.Body), s.Length)
		}
	}
	if len(s.Body) != 3 {
		t.Fatalf("len(Body) = %d, want 3 after catching up", len(s.Body))
	}
}

func TestResetRestoresSingleCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSnake(Point{X: 3, Y: 3}, DirRight)
	s.Grow()
	s.Grow()
	s.Move(testWidth, testHeight)
	s.Move(testWidth, testHeight)
	s.StageDirection(DirUp)

	s.Reset(testWidth, testHeight, rng)

	if len(s.Body) != 1 || s.Length != 1 {
		t.Fatalf("after reset: len(Body) = %d, Length = %d, want 1 and 1", len(s.Body), s.Length)
	}
	if s.Head() != (Point{X: testWidth / 2, Y: testHeight / 2}) {
		t.Fatalf("after reset: Head() = %v, want grid center", s.Head())
	}
	if s.Direction < DirUp || s.Direction > DirLeft {
		t.Fatalf("after reset: Direction = %d, want one of the four canonical directions", s.Direction)
	}
	if s.Last != nil {
		t.Fatal("after reset: Last not cleared")
	}

	// The staged direction from before the reset must be gone.
	dir := s.Direction
	s.commitDirection()
	if s.Direction != dir {
		t.Fatalf("staged direction survived reset: %s -> %s", dir, s.Direction)
	}
}
