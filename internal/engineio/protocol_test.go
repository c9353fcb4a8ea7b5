package engineio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"chessmatch/internal/board"
	"chessmatch/internal/testutil"
)

// fakeEngine runs a scripted UCI engine on the far end of two pipes and
// records every command it receives.
type fakeEngine struct {
	commands []string
}

// serve answers each incoming command according to a minimal UCI script.
func (f *fakeEngine) serve(r io.Reader, w io.Writer, bestmove string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd := scanner.Text()
		f.commands = append(f.commands, cmd)
		switch {
		case cmd == "uci":
			io.WriteString(w, "id name faketest\n")
			io.WriteString(w, "option name Hash type spin\n")
			io.WriteString(w, "uciok\n")
		case cmd == "isready":
			io.WriteString(w, "readyok\n")
		case strings.HasPrefix(cmd, "go"):
			io.WriteString(w, "info depth 1 score cp 13\n")
			io.WriteString(w, bestmove+"\n")
		case cmd == "quit":
			return
		}
	}
}

func newTestProtocol(t *testing.T, bestmove string) (*lineProtocol, *fakeEngine) {
	t.Helper()
	toEngine, fromDriver := io.Pipe()
	toDriver, fromEngine := io.Pipe()

	engine := &fakeEngine{}
	go func() {
		engine.serve(toEngine, fromEngine, bestmove)
		fromEngine.Close()
	}()
	t.Cleanup(func() {
		fromDriver.Close()
		toDriver.Close()
	})

	return newLineProtocol(fromDriver, toDriver), engine
}

func TestProtocolHandshakeAndBestMove(t *testing.T) {
	p, engine := newTestProtocol(t, "bestmove e2e4 ponder e7e5")

	testutil.AssertNoError(t, p.handshake())

	text, err := p.bestMove(board.StartFEN, Budget{MoveTime: 100 * time.Millisecond})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, text, "e2e4", "ponder tail must be stripped")

	testutil.AssertEqual(t, engine.commands, []string{
		"uci",
		"isready",
		"position fen " + board.StartFEN,
		"go movetime 100",
	})
}

func TestProtocolSkipsInfoChatter(t *testing.T) {
	p, _ := newTestProtocol(t, "bestmove g1f3")
	testutil.AssertNoError(t, p.handshake())

	text, err := p.bestMove(board.StartFEN, Budget{Depth: 3})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, text, "g1f3")
}

func TestProtocolMalformedBestMove(t *testing.T) {
	p, _ := newTestProtocol(t, "bestmove")
	testutil.AssertNoError(t, p.handshake())

	_, err := p.bestMove(board.StartFEN, Budget{MoveTime: 100 * time.Millisecond})
	testutil.AssertError(t, err, "a bare bestmove line carries no move")
}

func TestProtocolEngineClosesOutput(t *testing.T) {
	var sink bytes.Buffer
	p := newLineProtocol(&sink, strings.NewReader("id name dead\n"))

	err := p.handshake()
	testutil.AssertError(t, err, "output ended before uciok")
}

func TestGoCommand(t *testing.T) {
	tests := []struct {
		budget Budget
		want   string
	}{
		{Budget{}, "go movetime 1000"},
		{Budget{MoveTime: 2 * time.Second}, "go movetime 2000"},
		{Budget{Depth: 12}, "go depth 12"},
		{Budget{MoveTime: time.Second, Depth: 8}, "go depth 8 movetime 1000"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, goCommand(tt.budget), tt.want)
	}
}

func TestBudgetString(t *testing.T) {
	b := Budget{MoveTime: 1500 * time.Millisecond, Depth: 6}
	testutil.AssertEqual(t, b.String(), "mt=1.5s,d=6")
}
