package engineio

import (
	"fmt"
	"io"
	"os/exec"
	"time"
)

// ProcessClient runs an engine binary as a child process and speaks the
// line protocol over its stdin/stdout pipes.
type ProcessClient struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	proto *lineProtocol
}

// NewProcessClient spawns the engine and completes the protocol handshake.
func NewProcessClient(command string, args ...string) (*ProcessClient, error) {
	cmd := exec.Command(command, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting engine %s: %w", command, err)
	}

	c := &ProcessClient{
		cmd:   cmd,
		stdin: stdin,
		proto: newLineProtocol(stdin, stdout),
	}
	if err := c.proto.handshake(); err != nil {
		c.kill()
		return nil, fmt.Errorf("engine handshake: %w", err)
	}
	return c, nil
}

// BestMove forwards the FEN and budget and returns the engine's reply.
func (c *ProcessClient) BestMove(fen string, budget Budget) (string, error) {
	return c.proto.bestMove(fen, budget)
}

// Close asks the engine to quit and reaps the process, killing it if it
// ignores the request.
func (c *ProcessClient) Close() error {
	_ = c.proto.send("quit")
	_ = c.stdin.Close()

	done := make(chan error, 1)
	go func() { done <- c.cmd.Wait() }()
	select {
	case err := <-done:
		return err
	case <-time.After(3 * time.Second):
		if c.cmd.Process != nil {
			_ = c.cmd.Process.Kill()
		}
		return <-done
	}
}

func (c *ProcessClient) kill() {
	if c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	_ = c.cmd.Wait()
}
