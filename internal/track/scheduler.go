package track

// Scheduler tracks whether the one-second display tick should be running.
// It holds no timer itself; the UI owns the actual tick source and consults
// Active after every state change.
type Scheduler struct {
	active bool
}

// Active reports whether the tick should be running.
func (s *Scheduler) Active() bool {
	return s.active
}

// Reconcile aligns the tick with the running set. It returns true when the
// tick has just been switched on, which is the UI's cue to schedule the next
// tick message.
func (s *Scheduler) Reconcile(anyRunning bool) bool {
	started := anyRunning && !s.active
	s.active = anyRunning
	return started
}
