package state

import "chress/pkg/game/entities"

// Phase is whose turn it is
type Phase int

// Turn phases
const (
	PlayerTurn Phase = iota
	EnemyTurn
)

// TurnManager tracks the turn phase and the enemies still to act
type TurnManager struct {
	Phase Phase
	// Queue holds the enemies yet to act this enemy turn, in acting order
	Queue []*entities.Enemy
}

// BeginEnemyTurn queues every living enemy in list order
func (t *TurnManager) BeginEnemyTurn(enemies []*entities.Enemy) {
	t.Phase = EnemyTurn
	t.Queue = t.Queue[:0]
	for _, e := range enemies {
		if e.IsAlive() {
			t.Queue = append(t.Queue, e)
		}
	}
}

// Next pops the next enemy to act. Dead enemies are skipped. When the queue
// runs dry the phase returns to the player.
func (t *TurnManager) Next() (*entities.Enemy, bool) {
	for len(t.Queue) > 0 {
		e := t.Queue[0]
		t.Queue = t.Queue[1:]
		if e.IsAlive() {
			return e, true
		}
	}
	t.Phase = PlayerTurn
	return nil, false
}

// QueuePosition returns the 1-based position of the enemy in the queue
func (t *TurnManager) QueuePosition(e *entities.Enemy) (int, bool) {
	for i, q := range t.Queue {
		if q == e {
			return i + 1, true
		}
	}
	return 0, false
}

// Reset returns to the player's turn with an empty queue
func (t *TurnManager) Reset() {
	t.Phase = PlayerTurn
	t.Queue = nil
}
