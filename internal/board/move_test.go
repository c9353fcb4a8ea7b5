package board

import (
	"testing"

	"chessmatch/internal/testutil"
)

func TestMoveStringRoundTrip(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(E2, E4), "e2e4"},
		{NewMove(A1, H8), "a1h8"},
		{NewPromotion(E7, E8, Queen), "e7e8q"},
		{NewPromotion(A2, B1, Knight), "a2b1n"},
		{NewEnPassant(E5, D6), "e5d6"},
		{NewCastling(E1, G1), "e1g1"},
		{NoMove, "0000"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.move.String(), tt.want)
	}
}

func TestParseMove(t *testing.T) {
	from, to, promo, err := ParseMove("e2e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, from, E2)
	testutil.AssertEqual(t, to, E4)
	testutil.AssertEqual(t, promo, NoPieceType)

	from, to, promo, err = ParseMove("a7a8r")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, from, A7)
	testutil.AssertEqual(t, to, A8)
	testutil.AssertEqual(t, promo, Rook)

	// An unknown promotion letter is not a parse error; the legality
	// checker supplies the queen fallback.
	_, _, promo, err = ParseMove("a7a8x")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, promo, NoPieceType)

	for _, bad := range []string{"", "e2", "e2e", "e2e4e5", "i2i4", "e0e4"} {
		_, _, _, err := ParseMove(bad)
		testutil.AssertError(t, err, "ParseMove(%q)", bad)
	}
}

func TestMoveAccessors(t *testing.T) {
	m := NewPromotion(G7, H8, Bishop)
	testutil.AssertEqual(t, m.From(), G7)
	testutil.AssertEqual(t, m.To(), H8)
	testutil.AssertTrue(t, m.IsPromotion())
	testutil.AssertFalse(t, m.IsCastling())
	testutil.AssertEqual(t, m.Promotion(), Bishop)

	c := NewCastling(E8, C8)
	testutil.AssertTrue(t, c.IsCastling())
	testutil.AssertFalse(t, c.IsPromotion())
	testutil.AssertFalse(t, c.IsEnPassant())
}
