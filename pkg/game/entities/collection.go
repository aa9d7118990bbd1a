package entities

import "slices"

// EnemyCollection holds the enemies of the current zone in turn order
type EnemyCollection struct {
	enemies []*Enemy
	nextID  int
}

// NewEnemyCollection creates an empty collection
func NewEnemyCollection() *EnemyCollection {
	return &EnemyCollection{nextID: 1}
}

// All returns the enemies in list order
func (c *EnemyCollection) All() []*Enemy {
	return c.enemies
}

// Len returns the number of enemies
func (c *EnemyCollection) Len() int {
	return len(c.enemies)
}

// Add appends an enemy and assigns it an id
func (c *EnemyCollection) Add(e *Enemy) {
	e.ID = c.nextID
	c.nextID++
	c.enemies = append(c.enemies, e)
}

// Remove drops an enemy from the collection
func (c *EnemyCollection) Remove(e *Enemy) {
	c.enemies = slices.DeleteFunc(c.enemies, func(o *Enemy) bool { return o == e })
}

// FindAt returns the living enemy standing on (x, y)
func (c *EnemyCollection) FindAt(x, y int) (*Enemy, bool) {
	for _, e := range c.enemies {
		if e.IsAlive() && e.X == x && e.Y == y {
			return e, true
		}
	}
	return nil, false
}

// Living returns the living enemies in list order
func (c *EnemyCollection) Living() []*Enemy {
	var out []*Enemy
	for _, e := range c.enemies {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

// Clear removes every enemy
func (c *EnemyCollection) Clear() {
	c.enemies = nil
}
