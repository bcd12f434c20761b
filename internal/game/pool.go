package game

import "sync"

const (
	startPoints = 100.0
	lineCost    = 10.0
)

// pointsPool is the decaying point pool for one round, shared between the
// reveal worker and the coordinator. The lock is held only for the
// read-modify-write, never across a wait.
type pointsPool struct {
	mu        sync.Mutex
	remaining float64
}

func newPool() *pointsPool {
	return &pointsPool{remaining: startPoints}
}

// Deduct subtracts cost and returns the new remainder. The pool is never
// re-clamped; the decrement policy is fixed at the call sites.
func (p *pointsPool) Deduct(cost float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remaining -= cost
	return p.remaining
}

// Remaining returns the current value.
func (p *pointsPool) Remaining() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining
}
