package server

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/babysitterd/chasm/internal/game"
)

const (
	writeTimeout = 10 * time.Second
	readTimeout  = 10 * time.Minute
)

// clientMessage is the envelope for everything a client sends.
type clientMessage struct {
	Type     string `json:"type"`
	Password string `json:"password,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Intent   string `json:"intent,omitempty"`
	DX       int    `json:"dx,omitempty"`
	DY       int    `json:"dy,omitempty"`
	Index    int    `json:"index,omitempty"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
	Cancel   bool   `json:"cancel,omitempty"`
}

// serverMessage is the envelope for everything the server sends.
type serverMessage struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	Prompt  string      `json:"prompt,omitempty"`
	Options []string    `json:"options,omitempty"`
	Frame   *game.Frame `json:"frame,omitempty"`
}

// client wraps a WebSocket connection with JSON framing and deadlines.
type client struct {
	conn *websocket.Conn
}

func newClient(conn *websocket.Conn, maxMessageSize int64) *client {
	conn.SetReadLimit(maxMessageSize)
	return &client{conn: conn}
}

// read blocks until the next client message arrives.
func (c *client) read() (clientMessage, error) {
	c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	var msg clientMessage
	if err := c.conn.ReadJSON(&msg); err != nil {
		return clientMessage{}, fmt.Errorf("reading client message: %w", err)
	}
	return msg, nil
}

// send writes a message to the client.
func (c *client) send(msg serverMessage) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("writing server message: %w", err)
	}
	return nil
}

// sendNotice sends a plain informational message.
func (c *client) sendNotice(text string) error {
	return c.send(serverMessage{Type: "notice", Message: text})
}

// sendError sends an error message.
func (c *client) sendError(text string) error {
	return c.send(serverMessage{Type: "error", Message: text})
}

// Close closes the underlying connection.
func (c *client) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the client's address for logging.
func (c *client) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// decodeIntent maps a client intent message onto a game intent. Unknown
// names become UI intents, which never consume a turn.
func decodeIntent(msg clientMessage) game.Intent {
	switch msg.Intent {
	case "move":
		return game.MoveIntent{DX: msg.DX, DY: msg.DY}
	case "wait":
		return game.WaitIntent{}
	case "pickup":
		return game.PickUpIntent{}
	case "drop":
		return game.DropIntent{Index: msg.Index}
	case "use":
		return game.UseItemIntent{Index: msg.Index}
	case "descend":
		return game.DescendIntent{}
	case "exit":
		return game.ExitIntent{}
	default:
		return game.UIIntent{Name: msg.Intent}
	}
}
