package game

// Ticker converts variable frame times into a whole number of fixed
// simulation steps. It accumulates elapsed wall-clock time and hands out one
// step per full quantum, so the game speed is independent of the frame rate.
type Ticker struct {
	quantum     float64
	accumulator float64
}

func NewTicker(quantum float64) *Ticker {
	return &Ticker{quantum: quantum}
}

// Advance adds dt seconds to the accumulator and returns how many fixed
// steps are due: zero, one, or several.
func (t *Ticker) Advance(dt float64) int {
	t.accumulator += dt
	steps := 0
	for t.accumulator >= t.quantum {
		t.accumulator -= t.quantum
		steps++
	}
	return steps
}
