package manager

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/rand"

	"snake3d/game/types"
)

// FoodManager owns the single food cell of the field.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food mgl32.Vec3
}

// NewFoodManager creates a manager with an initial random food cell drawn
// from rng.
func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rng,
	}
	fm.Respawn()
	return fm
}

// Food returns the current food cell.
func (fm *FoodManager) Food() mgl32.Vec3 {
	return fm.food
}

// Respawn draws a new food cell uniformly at random from the full grid.
// Cells occupied by the snake are not excluded; food landing on a body
// segment is accepted behavior.
func (fm *FoodManager) Respawn() {
	fm.food = mgl32.Vec3{
		float32(fm.rng.Intn(fm.grid.Width)),
		float32(fm.rng.Intn(fm.grid.Height)),
		float32(fm.rng.Intn(fm.grid.Depth)),
	}
}
