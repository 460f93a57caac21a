// Package entity contains the snake automaton.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"snake3d/game/types"
)

// FoodSource is the part of the field the snake interacts with.
type FoodSource interface {
	Food() mgl32.Vec3
	Respawn()
}

// StepResult reports what happened during one simulation step.
type StepResult int

const (
	// StepMoved is a plain move: no growth, no collision.
	StepMoved StepResult = iota
	// StepAte means the head landed on the food cell and the snake grew.
	StepAte
	// StepReset means the head hit a live body segment and the snake was
	// reinitialized in place.
	StepReset
)

// StartCell is where a fresh snake begins.
var StartCell = mgl32.Vec3{1, 1, 0}

// RestartCell is where the snake reappears after a self-collision.
var RestartCell = mgl32.Vec3{1, 1, 1}

// DefaultHeading is the initial and post-reset movement direction.
var DefaultHeading = types.DirYPos

// Snake is the body automaton: an ordered ring of grid cells inside a
// fixed-capacity buffer, advanced one cell per tick.
//
// The live segments always occupy the prefix [0, length) of the buffer;
// head and tail are cursors into that prefix and move in the same
// rotational direction. Growth inserts at the tail side without moving the
// head, so neither stepping nor growing allocates.
type Snake struct {
	grid types.Grid
	food FoodSource

	cdir mgl32.Vec3 // current direction
	rdir mgl32.Vec3 // requested direction

	parts      []mgl32.Vec3
	head       int
	tail       int
	length     int
	bestLength int
}

// NewSnake creates a length-1 snake at StartCell heading DefaultHeading.
// The buffer capacity is the grid volume plus a small margin, so the snake
// can fill the whole field without reallocating.
func NewSnake(grid types.Grid, food FoodSource) *Snake {
	s := &Snake{
		grid:       grid,
		food:       food,
		cdir:       DefaultHeading,
		rdir:       DefaultHeading,
		parts:      make([]mgl32.Vec3, grid.Volume()+5),
		length:     1,
		bestLength: 1,
	}
	s.reset(StartCell)
	return s
}

// SetDirection records a candidate heading for the next step. A request
// exactly opposite to the current heading is dropped, since reversing in
// place would run the head into the segment behind it.
func (s *Snake) SetDirection(dir mgl32.Vec3) {
	s.rdir = dir
}

// reset collapses every live segment onto position and rewinds the cursors.
func (s *Snake) reset(position mgl32.Vec3) {
	for i := 0; i < s.length; i++ {
		s.parts[i] = position
	}
	s.head = 0
	s.tail = 0
}

// leftIndex is the ring slot one step in the direction the head moves.
func (s *Snake) leftIndex(index int) int {
	if index == 0 {
		return s.length - 1
	}
	return index - 1
}

// rightIndex is the ring slot one step toward the tail.
func (s *Snake) rightIndex(index int) int {
	if index == s.length-1 {
		return 0
	}
	return index + 1
}

// grow extends the snake by one segment, duplicating the current tail cell
// into the newly exposed slot so the visible tail does not jump. The suffix
// right of the tail is shifted by one; relative segment order is preserved.
func (s *Snake) grow() {
	index := s.length
	for index != s.tail {
		s.parts[index] = s.parts[index-1]
		index--
	}
	s.length++
	s.tail++
	if s.head > 0 {
		s.head++
	}

	if s.length > s.bestLength {
		s.bestLength = s.length
	}
}

// Step advances the snake by exactly one cell. The requested heading is
// finalized first, the new head position wraps toroidally per axis, then the
// self-collision and food checks run in that order: death and growth are
// mutually exclusive within one tick.
func (s *Snake) Step() StepResult {
	// Adopt the requested direction unless it is the exact opposite.
	if s.cdir.Add(s.rdir) != (mgl32.Vec3{}) {
		s.cdir = s.rdir
	}

	newPos := s.parts[s.head].Add(s.cdir)

	if newPos.X() < 0 {
		newPos[0] = float32(s.grid.Width - 1)
	}
	if newPos.X() > float32(s.grid.Width-1) {
		newPos[0] = 0
	}
	if newPos.Y() < 0 {
		newPos[1] = float32(s.grid.Height - 1)
	}
	if newPos.Y() > float32(s.grid.Height-1) {
		newPos[1] = 0
	}
	if newPos.Z() < 0 {
		newPos[2] = float32(s.grid.Depth - 1)
	}
	if newPos.Z() > float32(s.grid.Depth-1) {
		newPos[2] = 0
	}

	// The tail cell is vacated this same tick, so it is exempt from the
	// death check.
	for i := 0; i < s.length; i++ {
		if s.parts[i] == newPos && i != s.tail {
			s.reset(RestartCell)
			s.length = 1
			s.cdir = DefaultHeading
			s.rdir = DefaultHeading
			return StepReset
		}
	}

	ate := false
	if s.food.Food() == newPos {
		s.grow()
		s.food.Respawn()
		ate = true
	}

	s.head = s.leftIndex(s.head)
	s.tail = s.leftIndex(s.head)
	s.parts[s.head] = newPos

	if ate {
		return StepAte
	}
	return StepMoved
}

// Length returns the number of live segments.
func (s *Snake) Length() int {
	return s.length
}

// BestLength returns the longest length reached since the process started.
// It is monotonic across resets.
func (s *Snake) BestLength() int {
	return s.bestLength
}

// HeadPosition returns the cell the head currently occupies.
func (s *Snake) HeadPosition() mgl32.Vec3 {
	return s.parts[s.head]
}

// Direction returns the heading used by the most recent step.
func (s *Snake) Direction() mgl32.Vec3 {
	return s.cdir
}

// Segments appends the live segment cells to dst in head-to-tail order and
// returns the extended slice.
func (s *Snake) Segments(dst []mgl32.Vec3) []mgl32.Vec3 {
	index := s.head
	for i := 0; i < s.length; i++ {
		dst = append(dst, s.parts[index])
		index = s.rightIndex(index)
	}
	return dst
}
