// Package engineio talks to external move-generating engines. Two
// transports are provided: a spawned engine process speaking the UCI line
// protocol, and an HTTP best-move endpoint. Both exchange positions as FEN
// and moves in the four/five-character text form ("e2e4", "e7e8q"); an
// engine with no move answers "(none)". Neither transport judges legality;
// that is the match controller's job.
//
// All timeouts and asynchronous waiting live here, never in the rules core.
package engineio

import (
	"fmt"
	"time"
)

// Budget bounds one engine move: wall-clock time, search depth, or both.
// The zero Budget lets the transport pick a small default.
type Budget struct {
	MoveTime time.Duration
	Depth    int
}

// String renders the budget compactly; used as part of cache keys.
func (b Budget) String() string {
	return fmt.Sprintf("mt=%s,d=%d", b.MoveTime, b.Depth)
}

// Client asks an external engine for its best move in the given position.
type Client interface {
	BestMove(fen string, budget Budget) (string, error)
	Close() error
}
