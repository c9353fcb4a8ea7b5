package board

import (
	"testing"

	"chessmatch/internal/testutil"
)

func TestLegalMovesStartingPosition(t *testing.T) {
	pos := NewPosition()

	testutil.AssertEqual(t, pos.LegalMoves(White).Len(), 20)

	// Asking about the side not on move answers for a hypothetical turn
	// handover and leaves the position untouched.
	testutil.AssertEqual(t, pos.LegalMoves(Black).Len(), 20)
	testutil.AssertEqual(t, pos.SideToMove, White)
}

func TestLegalMovesExpandsPromotions(t *testing.T) {
	pos := mustPos(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves := pos.LegalMoves(White)

	// Five king steps plus four promotion choices on a8.
	testutil.AssertEqual(t, moves.Len(), 9)
	for _, promo := range []PieceType{Queen, Rook, Bishop, Knight} {
		testutil.AssertTrue(t, moves.Contains(NewPromotion(A7, A8, promo)), "missing %v promotion", promo)
	}
}

func TestLegalMovesUnderCheck(t *testing.T) {
	// White is checked by the e2 rook: step aside, or capture it. The h1
	// rook cannot help and castling is unavailable while in check.
	pos := mustPos(t, "4k3/8/8/8/8/8/4r3/4K2R w K - 0 1")
	moves := pos.LegalMoves(White)

	testutil.AssertEqual(t, moves.Len(), 3)
	testutil.AssertTrue(t, moves.Contains(NewMove(E1, D1)))
	testutil.AssertTrue(t, moves.Contains(NewMove(E1, F1)))
	testutil.AssertTrue(t, moves.Contains(NewMove(E1, E2)))
}

func TestCheckmate(t *testing.T) {
	// Back-rank mate: the a8 rook checks along the eighth rank while the
	// white king seals off the escape squares in front.
	pos := mustPos(t, "R3k3/8/4K3/8/8/8/8/8 b - - 0 1")

	testutil.AssertTrue(t, pos.IsCheckmate(Black))
	testutil.AssertFalse(t, pos.IsStalemate(Black))
	testutil.AssertFalse(t, pos.HasLegalMove(Black))
	testutil.AssertEqual(t, pos.LegalMoves(Black).Len(), 0)
}

func TestStalemate(t *testing.T) {
	// Black is not in check but every king step is covered.
	pos := mustPos(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	testutil.AssertTrue(t, pos.IsStalemate(Black))
	testutil.AssertFalse(t, pos.IsCheckmate(Black))
	testutil.AssertFalse(t, pos.InCheck(Black))
}

func TestCheckIsNotMate(t *testing.T) {
	// A lone rook check on the file leaves the king side-steps.
	pos := mustPos(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")

	testutil.AssertTrue(t, pos.InCheck(Black))
	testutil.AssertFalse(t, pos.IsCheckmate(Black))
	testutil.AssertTrue(t, pos.HasLegalMove(Black))
}

func TestAcceptedMovesNeverLeaveKingAttacked(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/8/8/8/8/8/4r3/4K2R w K - 0 1",
	}

	for _, fen := range fens {
		pos := mustPos(t, fen)
		mover := pos.SideToMove
		moves := pos.LegalMoves(mover)
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			after := pos.Copy()
			after.Apply(m, false)
			if after.InCheck(mover) {
				t.Errorf("%s: accepted move %s leaves the king attacked", fen, m)
			}
		}
	}
}

func TestFoolsMate(t *testing.T) {
	pos := NewPosition()

	playMove(t, pos, "f2f3")
	playMove(t, pos, "e7e5")
	playMove(t, pos, "g2g4")
	playMove(t, pos, "d8h4")

	testutil.AssertTrue(t, pos.InCheck(White))
	testutil.AssertTrue(t, pos.IsCheckmate(White))
	testutil.AssertFalse(t, pos.IsStalemate(White))
}
