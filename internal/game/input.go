package game

import "sync"

// canceller is the one-shot signal the listener fires to stop the reveal
// worker. Firing it more than once is safe.
type canceller struct {
	once sync.Once
	ch   chan struct{}
}

func newCanceller() *canceller {
	return &canceller{ch: make(chan struct{})}
}

func (c *canceller) Cancel() {
	c.once.Do(func() { close(c.ch) })
}

func (c *canceller) Done() <-chan struct{} {
	return c.ch
}

// listen blocks for one relevant key and fires cancellation before
// returning control to the coordinator, so the reveal worker stops even
// when the read failed.
func listen(in Input, cancel *canceller) (Key, error) {
	key, err := in.ReadKey()
	cancel.Cancel()
	return key, err
}
