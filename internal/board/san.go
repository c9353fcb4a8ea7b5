package board

import "strings"

// ToSAN converts a move to Standard Algebraic Notation in the context of
// the position it is about to be played from. Used for the match move log.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	from := m.From()
	to := m.To()
	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return m.String() // fall back to the engine text form
	}

	var sb strings.Builder

	if m.IsCastling() {
		if to > from {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		sb.WriteString(checkSuffix(pos, m))
		return sb.String()
	}

	pt := piece.Type()
	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(pos, m, pt))
	}

	if m.IsCapture(pos) {
		if pt == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Promotion()])
	}

	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

// checkSuffix returns "#", "+" or "" depending on what the move does to the
// opponent.
func checkSuffix(pos *Position, m Move) string {
	after := pos.Copy()
	after.Apply(m, false)
	them := after.SideToMove
	if after.IsCheckmate(them) {
		return "#"
	}
	if after.InCheck(them) {
		return "+"
	}
	return ""
}

// disambiguation returns the origin file, rank or full square needed to
// distinguish the move from other same-type pieces reaching the same
// destination.
func disambiguation(pos *Position, m Move, pt PieceType) string {
	from := m.From()
	to := m.To()

	var candidates []Square
	all := pos.LegalMoves(pos.SideToMove)
	for i := 0; i < all.Len(); i++ {
		other := all.Get(i)
		if other.To() != to || other.From() == from {
			continue
		}
		if pos.PieceAt(other.From()).Type() == pt {
			candidates = append(candidates, other.From())
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string('a' + byte(from.File()))
	case !sameRank:
		return string('1' + byte(from.Rank()))
	default:
		return from.String()
	}
}
