package reenact

import "sync"

// ManualClock is a Clock driven explicitly by its owner
type ManualClock struct {
	mu        sync.Mutex
	time      float64
	listeners map[int]RewindListener
	nextID    int
}

func NewManualClock(start float64) *ManualClock {
	return &ManualClock{
		time:      start,
		listeners: make(map[int]RewindListener),
	}
}

func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.time
}

// Advance moves the clock forward by dt seconds, negative durations are handled as a Seek
func (c *ManualClock) Advance(dt float64) {
	c.Seek(c.Now() + dt)
}

// Seek sets the clock to time, and notifies the rewind listeners if it moved backward
func (c *ManualClock) Seek(time float64) {
	c.mu.Lock()
	rewound := time < c.time
	c.time = time

	var listeners []RewindListener
	if rewound {
		listeners = make([]RewindListener, 0, len(c.listeners))
		for id := 0; id < c.nextID; id++ {
			if listener, ok := c.listeners[id]; ok {
				listeners = append(listeners, listener)
			}
		}
	}
	c.mu.Unlock()

	// listeners run unlocked so they may read the clock or unsubscribe
	for _, listener := range listeners {
		listener(time)
	}
}

func (c *ManualClock) SubscribeRewind(listener RewindListener) Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = listener

	return &clockSubscription{clock: c, id: id}
}

// Listeners returns the number of registered rewind listeners
func (c *ManualClock) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.listeners)
}

type clockSubscription struct {
	once  sync.Once
	clock *ManualClock
	id    int
}

func (s *clockSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.clock.mu.Lock()
		defer s.clock.mu.Unlock()

		delete(s.clock.listeners, s.id)
	})
}
