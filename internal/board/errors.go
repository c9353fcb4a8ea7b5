package board

import "fmt"

// FENError reports a malformed FEN string. Field names the FEN field that
// failed validation (placement, side, castling, en-passant, halfmove,
// fullmove, or fields for a truncated string).
type FENError struct {
	Field  string
	Detail string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("malformed FEN: %s: %s", e.Field, e.Detail)
}

// MoveReason classifies why a candidate move was rejected.
type MoveReason int

const (
	NoPieceOnFrom MoveReason = iota
	SameSquare
	WrongTurn
	OwnPieceOnTo
	BadPieceVector
	BlockedPath
	NoEnPassant
	NoCastlingRight
	CastlingBlocked
	CastlingThroughCheck
	LeavesKingInCheck
)

// String returns a short description of the rejection reason.
func (r MoveReason) String() string {
	switch r {
	case NoPieceOnFrom:
		return "no piece on origin square"
	case SameSquare:
		return "origin and destination are the same square"
	case WrongTurn:
		return "not that side's turn"
	case OwnPieceOnTo:
		return "destination holds a piece of the same color"
	case BadPieceVector:
		return "the piece does not move that way"
	case BlockedPath:
		return "the path is blocked"
	case NoEnPassant:
		return "no en passant capture available"
	case NoCastlingRight:
		return "castling right not available"
	case CastlingBlocked:
		return "castling path is blocked"
	case CastlingThroughCheck:
		return "cannot castle out of, through, or into check"
	case LeavesKingInCheck:
		return "move leaves own king in check"
	default:
		return "illegal move"
	}
}

// IllegalMoveError reports a candidate move rejected by the legality checker.
// The position is guaranteed to be unchanged when this error is returned.
type IllegalMoveError struct {
	From   Square
	To     Square
	Reason MoveReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s%s: %s", e.From, e.To, e.Reason)
}

func illegal(from, to Square, reason MoveReason) error {
	return &IllegalMoveError{From: from, To: to, Reason: reason}
}
