package engineio

import (
	"errors"
	"testing"
	"time"

	"chessmatch/internal/board"
	"chessmatch/internal/testutil"
)

// countingClient returns a fixed reply and counts how often it is asked.
type countingClient struct {
	reply string
	err   error
	calls int
}

func (c *countingClient) BestMove(fen string, budget Budget) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func (c *countingClient) Close() error { return nil }

func TestCachedClientMemoizes(t *testing.T) {
	inner := &countingClient{reply: "e2e4"}
	c, err := NewCachedClient(inner, "")
	testutil.AssertNoError(t, err)
	defer c.Close()

	budget := Budget{MoveTime: time.Second}

	for i := 0; i < 3; i++ {
		text, err := c.BestMove(board.StartFEN, budget)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, text, "e2e4")
	}
	testutil.AssertEqual(t, inner.calls, 1, "repeat probes must hit the cache")
}

func TestCachedClientKeysOnPositionAndBudget(t *testing.T) {
	inner := &countingClient{reply: "e2e4"}
	c, err := NewCachedClient(inner, "")
	testutil.AssertNoError(t, err)
	defer c.Close()

	_, err = c.BestMove(board.StartFEN, Budget{Depth: 4})
	testutil.AssertNoError(t, err)
	_, err = c.BestMove(board.StartFEN, Budget{Depth: 8})
	testutil.AssertNoError(t, err)
	_, err = c.BestMove("4k3/8/8/8/8/8/8/4K2R w K - 0 1", Budget{Depth: 4})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, inner.calls, 3, "different position or budget is a different key")
}

func TestCachedClientDoesNotCacheFailures(t *testing.T) {
	inner := &countingClient{err: errors.New("engine gone")}
	c, err := NewCachedClient(inner, "")
	testutil.AssertNoError(t, err)
	defer c.Close()

	_, err = c.BestMove(board.StartFEN, Budget{})
	testutil.AssertError(t, err)
	_, err = c.BestMove(board.StartFEN, Budget{})
	testutil.AssertError(t, err)

	testutil.AssertEqual(t, inner.calls, 2, "failures must reach the engine again")
}

func TestCachedClientOnDisk(t *testing.T) {
	dir := t.TempDir()

	inner := &countingClient{reply: "g1f3"}
	c, err := NewCachedClient(inner, dir)
	testutil.AssertNoError(t, err)

	_, err = c.BestMove(board.StartFEN, Budget{})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, c.Close())

	// A fresh cache over the same directory still remembers the reply.
	c, err = NewCachedClient(inner, dir)
	testutil.AssertNoError(t, err)
	defer c.Close()

	text, err := c.BestMove(board.StartFEN, Budget{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, text, "g1f3")
	testutil.AssertEqual(t, inner.calls, 1)
}
