package manager

// StateManager keeps session score bookkeeping: the lengths reached before
// each reset and the apples eaten since startup. Everything lives in memory;
// nothing survives the process.
type StateManager struct {
	highScore     int
	scoreHistory  []int
	applesEaten   int
	resets        int
	currentLength int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory:  make([]int, 0),
		currentLength: 1,
	}
}

// UpdateScore records the current snake length.
func (sm *StateManager) UpdateScore(length int) {
	sm.currentLength = length
	if length > sm.highScore {
		sm.highScore = length
	}
}

// RecordApple counts one consumed food item.
func (sm *StateManager) RecordApple() {
	sm.applesEaten++
}

// RecordReset closes out the current run after a self-collision, appending
// the length reached to the history.
func (sm *StateManager) RecordReset(finalLength int) {
	sm.resets++
	sm.scoreHistory = append(sm.scoreHistory, finalLength)
	sm.currentLength = 1
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}

func (sm *StateManager) ApplesEaten() int {
	return sm.applesEaten
}

func (sm *StateManager) Resets() int {
	return sm.resets
}
