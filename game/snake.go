package game

import "golang.org/x/exp/rand"

// Snake is the player entity: the ordered list of cells it occupies, head
// first, plus its live and staged directions. Body never exceeds Length
// except transiently inside Move, before the tail is trimmed.
type Snake struct {
	Body      []Point
	Length    int // target length; the body is trimmed to this after a move
	Direction Direction
	Last      *Point // tail cell vacated by the latest move, nil if the snake grew

	next Direction // staged by input, committed at the start of the next tick
}

// NewSnake creates a single-cell snake at start heading in dir.
func NewSnake(start Point, dir Direction) *Snake {
	return &Snake{
		Body:      []Point{start},
		Length:    1,
		Direction: dir,
	}
}

// Head returns the cell occupied by the snake's head.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// StageDirection records a requested direction change. The live direction
// only changes on the next tick, so several keypresses within one tick
// cannot turn the snake more than once.
func (s *Snake) StageDirection(d Direction) {
	if d == DirNone {
		return
	}
	s.next = d
}

// commitDirection applies the staged direction, if any.
func (s *Snake) commitDirection() {
	if s.next != DirNone {
		s.Direction = s.next
		s.next = DirNone
	}
}

// Move advances the head one cell with toroidal wraparound, then trims the
// tail back to the target length. The vacated cell, if any, is kept in Last
// so the renderer knows which cell emptied this tick.
func (s *Snake) Move(width, height int) {
	head := s.Head().Add(s.Direction.ToPoint(), width, height)
	s.Body = append([]Point{head}, s.Body...)
	if len(s.Body) > s.Length {
		last := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		s.Last = &last
	} else {
		s.Last = nil
	}
}

// Grow raises the target length by one; the body catches up on the
// following ticks.
func (s *Snake) Grow() {
	s.Length++
}

// hitSelf reports whether the head overlaps any other body cell.
func (s *Snake) hitSelf() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Reset shrinks the snake back to a single cell at the grid center with a
// fresh random direction. Any staged direction is discarded.
func (s *Snake) Reset(width, height int, rng *rand.Rand) {
	s.Body = []Point{{X: width / 2, Y: height / 2}}
	s.Length = 1
	s.Direction = randomDirection(rng)
	s.next = DirNone
	s.Last = nil
}
