package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wfunc/hangman/input"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/network"
	"github.com/wfunc/hangman/render"
)

// send formats and sends a message to the WebSocket server.
func send(c *websocket.Conn, msgID uint16, data []byte) error {
	packet, err := network.EncodePacket(msgID, data)
	if err != nil {
		return err
	}
	return c.WriteMessage(websocket.BinaryMessage, packet)
}

func main() {
	addr := flag.String("addr", "localhost:8080", "game server address")
	level := flag.String("log", "warn", "log level")
	flag.Parse()

	logger.Init(*level)
	defer logger.Sync()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	logger.Log.Infof("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		logger.Log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})

	// Read loop owns the board.
	go func() {
		defer close(done)
		board := render.NewBoard()
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				logger.Log.Infof("Read error: %v", err)
				return
			}
			packet, err := network.DecodePacket(message)
			if err != nil {
				logger.Log.Warnf("Received invalid packet of size %d", len(message))
				continue
			}

			if packet.MsgID == network.MsgTypeError {
				text, err := render.DecodeError(packet)
				if err != nil {
					logger.Log.Warnf("Failed to decode error packet: %v", err)
					continue
				}
				fmt.Printf("! %s\n", text)
				continue
			}
			if err := render.Decode(packet, board); err != nil {
				logger.Log.Warnf("Failed to decode packet %d: %v", packet.MsgID, err)
				continue
			}

			switch packet.MsgID {
			case network.MsgTypeStatusUpdated:
				fmt.Print("\n" + board.String())
			case network.MsgTypeMessageShown:
				fmt.Printf("  >> %s\n", board.Message)
			}
		}
	}()

	fmt.Println("Type a letter to guess, 'new' for a new word, 'reveal' to give up, 'quit' to leave.")

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-done:
			return
		case <-heartbeat.C:
			if err := send(c, network.MsgTypeHeartbeat, nil); err != nil {
				logger.Log.Warnf("Heartbeat failed: %v", err)
			}
		case <-interrupt:
			closeConn(c, done)
			return
		case line, ok := <-lines:
			if !ok {
				closeConn(c, done)
				return
			}
			cmd, err := input.Parse(line)
			if err != nil {
				fmt.Printf("! %v: %q\n", err, line)
				continue
			}
			if cmd.Kind == input.KindQuit {
				closeConn(c, done)
				return
			}
			if err := dispatch(c, cmd); err != nil {
				logger.Log.Errorf("Write error: %v", err)
				return
			}
		}
	}
}

func dispatch(c *websocket.Conn, cmd input.Command) error {
	switch cmd.Kind {
	case input.KindNewRound:
		return send(c, network.MsgTypeNewRound, nil)
	case input.KindReveal:
		return send(c, network.MsgTypeReveal, nil)
	default:
		data, err := json.Marshal(network.GuessPayload{Letter: string(cmd.Letter)})
		if err != nil {
			return err
		}
		return send(c, network.MsgTypeGuess, data)
	}
}

func closeConn(c *websocket.Conn, done <-chan struct{}) {
	err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		logger.Log.Warnf("Write close error: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
	}
}
