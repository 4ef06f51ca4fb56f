// Package link is the command link: the transport that carries the
// skull's line protocol between a client and the control loop. The
// original device exposed the protocol over a BLE characteristic; here
// it rides a websocket, one text frame per command, one frame back per
// response.
package link

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/grimworks/go-skull/internal/log"
	"github.com/grimworks/go-skull/pkg/command"
)

// CommandPath is the websocket route for the command protocol.
const CommandPath = "/v1/command"

// Executor runs one complete command line on the control loop and
// returns its response. Submissions block until the loop answers.
type Executor func(ctx context.Context, line string) (string, error)

// Server serves the command link over websocket.
type Server struct {
	app  *fiber.App
	exec Executor
}

// NewServer builds the command-link server around an executor.
func NewServer(exec Executor) *Server {
	s := &Server{exec: exec}

	app := fiber.New(fiber.Config{
		AppName:               "go-skull",
		DisableStartupMessage: true,
	})

	app.Use(CommandPath, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get(CommandPath, websocket.New(s.handleSession))

	s.app = app
	return s
}

// Listen serves on the given address. Blocks.
func (s *Server) Listen(addr string) error {
	log.Info("command link listening", "addr", addr, "path", CommandPath)
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleSession runs one client connection. Each session owns its own
// line buffer, so a half-sent command from one client never bleeds into
// another's.
func (s *Server) handleSession(conn *websocket.Conn) {
	session := uuid.New().String()[:8]
	log.Info("command client connected", "session", session)
	defer func() {
		conn.Close()
		log.Info("command client disconnected", "session", session)
	}()

	ctx := context.Background()
	parser := command.NewParser(func(line string) string {
		resp, err := s.exec(ctx, line)
		if err != nil {
			log.Warn("command execution failed", "session", session, "error", err)
			return command.RespErr
		}
		return resp
	})

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		// Frames may or may not carry their own newline; terminate the
		// line either way so the parser sees complete commands.
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		for _, resp := range parser.Feed(data) {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(resp)); err != nil {
				return
			}
		}
	}
}
