package services

import "sync/atomic"

// Readiness tracks the starting -> ready lifecycle the root route polls:
// until the startup sequence marks the app ready, visitors get the loading
// page instead of a redirect into the app.
type Readiness struct {
	ready atomic.Bool
}

func NewReadiness() *Readiness {
	return &Readiness{}
}

func (state *Readiness) MarkReady() {
	state.ready.Store(true)
}

func (state *Readiness) Ready() bool {
	return state.ready.Load()
}
