package engineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// handshakeTimeout bounds the uci/isready exchange at startup.
const handshakeTimeout = 10 * time.Second

// bestMoveGrace is added on top of the move-time budget when waiting for
// the bestmove line, covering engine overhead.
const bestMoveGrace = 10 * time.Second

// lineProtocol speaks the engine's line-oriented text protocol over any
// reader/writer pair. Factored away from the process plumbing so tests can
// drive it with canned transcripts.
type lineProtocol struct {
	w     io.Writer
	lines chan string
}

func newLineProtocol(w io.Writer, r io.Reader) *lineProtocol {
	p := &lineProtocol{w: w, lines: make(chan string, 64)}
	scanner := bufio.NewScanner(r)
	go func() {
		for scanner.Scan() {
			p.lines <- strings.TrimSpace(scanner.Text())
		}
		close(p.lines)
	}()
	return p
}

func (p *lineProtocol) send(line string) error {
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// waitFor consumes lines until one starts with prefix, the engine closes
// its output, or the timeout fires.
func (p *lineProtocol) waitFor(prefix string, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case line, ok := <-p.lines:
			if !ok {
				return "", errors.New("engine closed its output")
			}
			if strings.HasPrefix(line, prefix) {
				return line, nil
			}
		case <-timer.C:
			return "", fmt.Errorf("timed out after %v waiting for %q", timeout, prefix)
		}
	}
}

// handshake runs the uci/uciok and isready/readyok exchange.
func (p *lineProtocol) handshake() error {
	if err := p.send("uci"); err != nil {
		return err
	}
	if _, err := p.waitFor("uciok", handshakeTimeout); err != nil {
		return err
	}
	if err := p.send("isready"); err != nil {
		return err
	}
	_, err := p.waitFor("readyok", handshakeTimeout)
	return err
}

// bestMove sends the position and budget and resolves on the engine's
// terminal bestmove line.
func (p *lineProtocol) bestMove(fen string, budget Budget) (string, error) {
	if err := p.send("position fen " + fen); err != nil {
		return "", err
	}
	if err := p.send(goCommand(budget)); err != nil {
		return "", err
	}

	line, err := p.waitFor("bestmove", budget.MoveTime+bestMoveGrace)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", fmt.Errorf("malformed bestmove line: %q", line)
	}
	return fields[1], nil
}

// goCommand renders the search budget as a go command.
func goCommand(b Budget) string {
	switch {
	case b.Depth > 0 && b.MoveTime > 0:
		return fmt.Sprintf("go depth %d movetime %d", b.Depth, b.MoveTime.Milliseconds())
	case b.Depth > 0:
		return fmt.Sprintf("go depth %d", b.Depth)
	case b.MoveTime > 0:
		return fmt.Sprintf("go movetime %d", b.MoveTime.Milliseconds())
	default:
		return "go movetime 1000"
	}
}
