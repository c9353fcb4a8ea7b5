// Package match drives one human-versus-engine chess match over an
// exclusively owned Position: turn order, the move limit, the move log,
// material score and terminal detection. Engine-supplied move text is
// validated here before it ever touches the board.
package match

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"chessmatch/internal/board"
)

// ErrMatchOver is returned for any move submitted after the match ended.
var ErrMatchOver = errors.New("match is over")

// Config describes how a match starts.
type Config struct {
	StartFEN   string // empty means the standard starting position
	MoveLimit  int    // in plies; 0 means no limit
	HumanColor board.Color
}

// ResultReason says how a match ended.
type ResultReason int

const (
	ByCheckmate ResultReason = iota
	ByStalemate
	ByMoveLimit
)

func (r ResultReason) String() string {
	switch r {
	case ByCheckmate:
		return "checkmate"
	case ByStalemate:
		return "stalemate"
	case ByMoveLimit:
		return "move limit"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished match. Winner is NoColor on a draw.
type Result struct {
	Winner board.Color
	Draw   bool
	Reason ResultReason
}

func (r Result) String() string {
	if r.Draw {
		return fmt.Sprintf("draw (%s)", r.Reason)
	}
	return fmt.Sprintf("%s wins (%s)", r.Winner, r.Reason)
}

// MoveRecord is one entry of the move log.
type MoveRecord struct {
	Ply   int // 1-based
	Color board.Color
	Move  board.Move
	SAN   string
	FEN   string // position after the move
}

// IllegalEngineMoveError reports an externally supplied engine move that was
// malformed, "(none)", or rejected by the legality checker. The position is
// unchanged; the caller decides the fallback policy.
type IllegalEngineMoveError struct {
	Text string
	Err  error
}

func (e *IllegalEngineMoveError) Error() string {
	return fmt.Sprintf("illegal engine move %q: %v", e.Text, e.Err)
}

func (e *IllegalEngineMoveError) Unwrap() error {
	return e.Err
}

// Match owns one Position for the lifetime of a match. It is not safe for
// concurrent use; the core's simulate-and-restore legality checking assumes
// a single caller.
type Match struct {
	pos      *board.Position
	cfg      Config
	records  []MoveRecord
	captured [2]int // centipawns captured by each color
	over     bool
	result   Result

	// OnMove and OnGameOver, when set, are called after a successful apply
	// and when the match ends. The rules core itself never calls out.
	OnMove     func(MoveRecord)
	OnGameOver func(Result)
}

// New starts a match from the configured FEN. The starting position must be
// well-formed and playable (exactly one king per side); it does not need a
// legal game history, so editor-built setups are accepted.
func New(cfg Config) (*Match, error) {
	fen := cfg.StartFEN
	if fen == "" {
		fen = board.StartFEN
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("unplayable starting position: %w", err)
	}

	m := &Match{pos: pos, cfg: cfg}
	// The editor can hand us a position that is already decided.
	m.checkTerminal()
	return m, nil
}

// Position returns a deep copy of the current position.
func (m *Match) Position() *board.Position {
	return m.pos.Copy()
}

// FEN returns the current position in FEN form, the only format the engine
// collaborator consumes.
func (m *Match) FEN() string {
	return m.pos.ToFEN()
}

// Turn returns the side to move.
func (m *Match) Turn() board.Color {
	return m.pos.SideToMove
}

// HumanTurn reports whether it is the human's move.
func (m *Match) HumanTurn() bool {
	return m.pos.SideToMove == m.cfg.HumanColor
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.over
}

// Result returns the outcome; the second value is false while the match is
// still running.
func (m *Match) Result() (Result, bool) {
	return m.result, m.over
}

// Records returns a copy of the move log.
func (m *Match) Records() []MoveRecord {
	return slices.Clone(m.records)
}

// CapturedMaterial returns the centipawn value of material the given color
// has captured so far.
func (m *Match) CapturedMaterial(c board.Color) int {
	return m.captured[c]
}

// LegalMoves returns the legal moves for the side to move.
func (m *Match) LegalMoves() *board.MoveList {
	return m.pos.LegalMoves(m.pos.SideToMove)
}

// HumanMove plays a move supplied in engine text form ("e2e4", "e7e8q").
func (m *Match) HumanMove(text string) error {
	if m.over {
		return ErrMatchOver
	}
	from, to, promo, err := board.ParseMove(text)
	if err != nil {
		return err
	}
	return m.play(from, to, promo)
}

// EngineMove plays a move returned by the external engine. A reply of
// "(none)", a malformed string or a move the checker rejects yields an
// *IllegalEngineMoveError and leaves the position untouched.
func (m *Match) EngineMove(text string) error {
	if m.over {
		return ErrMatchOver
	}
	if text == "(none)" {
		return &IllegalEngineMoveError{Text: text, Err: errors.New("engine found no move")}
	}
	from, to, promo, err := board.ParseMove(text)
	if err != nil {
		return &IllegalEngineMoveError{Text: text, Err: err}
	}
	if err := m.play(from, to, promo); err != nil {
		return &IllegalEngineMoveError{Text: text, Err: err}
	}
	return nil
}

// play validates and applies one move, then records it and re-checks the
// terminal conditions.
func (m *Match) play(from, to board.Square, promo board.PieceType) error {
	mv, err := m.pos.Check(from, to, promo)
	if err != nil {
		return err
	}

	san := mv.ToSAN(m.pos)
	mover := m.pos.SideToMove
	captured := m.pos.Apply(mv, false)
	if captured != board.NoPiece {
		m.captured[mover] += captured.Value()
	}

	rec := MoveRecord{
		Ply:   len(m.records) + 1,
		Color: mover,
		Move:  mv,
		SAN:   san,
		FEN:   m.pos.ToFEN(),
	}
	m.records = append(m.records, rec)
	if m.OnMove != nil {
		m.OnMove(rec)
	}

	m.checkTerminal()
	return nil
}

// checkTerminal runs at the start of each side's turn. Checkmate and
// stalemate are detected before the move limit is consulted.
func (m *Match) checkTerminal() {
	if m.over {
		return
	}
	side := m.pos.SideToMove
	switch {
	case m.pos.IsCheckmate(side):
		m.finish(Result{Winner: side.Other(), Reason: ByCheckmate})
	case m.pos.IsStalemate(side):
		m.finish(Result{Winner: board.NoColor, Draw: true, Reason: ByStalemate})
	case m.cfg.MoveLimit > 0 && len(m.records) >= m.cfg.MoveLimit:
		m.finish(m.adjudicate())
	}
}

// adjudicate settles a move-limit match on material balance.
func (m *Match) adjudicate() Result {
	switch balance := m.pos.Material(); {
	case balance > 0:
		return Result{Winner: board.White, Reason: ByMoveLimit}
	case balance < 0:
		return Result{Winner: board.Black, Reason: ByMoveLimit}
	default:
		return Result{Winner: board.NoColor, Draw: true, Reason: ByMoveLimit}
	}
}

func (m *Match) finish(r Result) {
	m.over = true
	m.result = r
	if m.OnGameOver != nil {
		m.OnGameOver(r)
	}
}
