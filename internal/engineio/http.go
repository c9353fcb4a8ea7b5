package engineio

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPClient asks a remote best-move endpoint over HTTP. The endpoint
// receives the FEN and budget as query parameters and answers JSON:
//
//	{"bestmove": "e2e4"}
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates a client for the given endpoint URL.
func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type bestMoveResponse struct {
	BestMove string `json:"bestmove"`
}

// BestMove forwards the position and budget and returns the engine's reply.
func (c *HTTPClient) BestMove(fen string, budget Budget) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("fen", fen)
	if budget.MoveTime > 0 {
		q.Set("movetime", strconv.FormatInt(budget.MoveTime.Milliseconds(), 10))
	}
	if budget.Depth > 0 {
		q.Set("depth", strconv.Itoa(budget.Depth))
	}
	u.RawQuery = q.Encode()

	resp, err := c.client.Get(u.String())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("engine endpoint returned %s", resp.Status)
	}

	var result bestMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding engine response: %w", err)
	}
	if result.BestMove == "" {
		return "", fmt.Errorf("engine response carried no move")
	}
	return result.BestMove, nil
}

// Close is a no-op; the HTTP client holds no resources worth reaping.
func (c *HTTPClient) Close() error {
	return nil
}
