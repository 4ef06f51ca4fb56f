package link

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// Client is the outbound side of the command link, used by skullctl and
// by integration tooling.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a skull daemon's command endpoint, e.g.
// "ws://skull.local:8090/v1/command".
func Dial(ctx context.Context, url string) (*Client, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return &Client{conn: conn}, nil
}

// Send writes one command and waits for its one-line response.
func (c *Client) Send(cmd string) (string, error) {
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(cmd)); err != nil {
		return "", fmt.Errorf("write command: %w", err)
	}
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(data), nil
}

// Close shuts the connection down cleanly.
func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
