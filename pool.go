package reenact

// Pool reuses stopped sessions. Every spawned session is fully reset, no state
// of a previous actor survives.
type Pool struct {
	free []*Session
}

// Spawn returns a reset session from the pool, or a new one if the pool is empty
func (p *Pool) Spawn(clock Clock, sink Sink, config Config) *Session {
	if n := len(p.free); n > 0 {
		session := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]

		session.Reset(clock, sink, config)
		return session
	}

	return NewSession(clock, sink, config)
}

// Despawn stops the session and returns it to the pool
func (p *Pool) Despawn(session *Session) {
	session.Stop()

	for _, s := range p.free {
		if s == session {
			return
		}
	}
	p.free = append(p.free, session)
}

// Len returns the number of sessions waiting for reuse
func (p *Pool) Len() int {
	return len(p.free)
}
