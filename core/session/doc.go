// Package session manages credential sessions for authenticated fetches.
//
// A session is created by a successful login against a remote host and
// carries the cookies that host issued, plus an expiry timestamp. The
// Store is the only mutable state shared across concurrent batch tasks:
// lookups take a read lock, while session creation, explicit logout and
// the periodic expiry sweep take the write lock.
//
// # Lifecycle
//
// The store is constructed empty by the process bootstrap, never as an
// implicit singleton. The sweeper runs on its own ticker and owns an
// explicit stop handle, invoked at process shutdown:
//
//	store := session.NewStore()
//	stop := store.StartSweeper(cfg.SweepInterval(), log)
//	defer stop()
package session
