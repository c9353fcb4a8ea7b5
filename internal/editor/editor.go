// Package editor implements a drag-and-drop style board editor. It mutates
// a Position directly, without any legality checking: editor states only
// have to be well-formed FEN, never the product of a legal game history.
// Playability is enforced once, when a match is started from the editor.
package editor

import (
	"fmt"

	"chessmatch/internal/board"
)

// Editor holds a board setup under construction.
type Editor struct {
	pos *board.Position
}

// New creates an editor over an empty board, White to move, no castling
// rights.
func New() *Editor {
	return &Editor{pos: board.NewEmptyPosition()}
}

// FromFEN creates an editor preloaded from an arbitrary FEN string.
func FromFEN(fen string) (*Editor, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Editor{pos: pos}, nil
}

// Place puts a piece on a square, replacing whatever was there.
func (e *Editor) Place(piece board.Piece, sq board.Square) {
	e.pos.SetPiece(piece, sq)
}

// Remove clears a square and returns the piece that was on it.
func (e *Editor) Remove(sq board.Square) board.Piece {
	return e.pos.RemovePiece(sq)
}

// Drag relocates a piece without validation, mirroring a drag-and-drop.
// Dragging from an empty square is a no-op; dragging onto an occupied
// square replaces the occupant.
func (e *Editor) Drag(from, to board.Square) {
	piece := e.pos.RemovePiece(from)
	if piece == board.NoPiece {
		return
	}
	e.pos.SetPiece(piece, to)
}

// PieceAt returns the piece on a square.
func (e *Editor) PieceAt(sq board.Square) board.Piece {
	return e.pos.PieceAt(sq)
}

// SetSideToMove sets which color moves first.
func (e *Editor) SetSideToMove(c board.Color) {
	e.pos.SideToMove = c
}

// SetCastlingRights replaces the castling rights wholesale.
func (e *Editor) SetCastlingRights(cr board.CastlingRights) {
	e.pos.CastlingRights = cr
}

// SetEnPassant sets the en-passant target square; pass NoSquare to clear.
func (e *Editor) SetEnPassant(sq board.Square) {
	e.pos.EnPassant = sq
}

// ClearBoard removes every piece and resets the game state fields.
func (e *Editor) ClearBoard() {
	e.pos.Clear()
}

// FEN returns the current setup in FEN form.
func (e *Editor) FEN() string {
	return e.pos.ToFEN()
}

// Position returns a deep copy of the setup, gated on playability so a
// match can never start from a board without both kings.
func (e *Editor) Position() (*board.Position, error) {
	if err := e.pos.Validate(); err != nil {
		return nil, fmt.Errorf("editor position not playable: %w", err)
	}
	return e.pos.Copy(), nil
}
