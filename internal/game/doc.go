// Package game implements the flip/match/win state machine of a pairs round.
//
// The core is a pure reducer:
//
//	next, effects := game.Apply(state, game.Flip{Index: 3})
//
// Apply never blocks and never touches a clock. Everything time-driven is
// returned as an Effect (start the elapsed timer, stop it, resolve the
// current reveal after a delay) for the caller to execute.
//
// # Controller
//
// Controller owns a State and executes its effects on a quartz.Clock. It
// serializes every event (user input, timer ticks, delayed resolutions)
// through one mutex so the round behaves as a single-threaded event loop.
//
// # Stale callbacks
//
// Every deck instance carries a Generation, and every completed two-tile
// reveal a Reveal number. Delayed events capture both when scheduled; Apply
// drops any Tick or Resolve whose tokens are no longer current, so a reset
// or new game can never be corrupted by a callback from the previous round.
package game
