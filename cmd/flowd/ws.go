package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// wsRequest is one frame from a WebSocket client.
type wsRequest struct {
	// Op is "eval" or "graph".
	Op string `json:"op"`

	EvalRequest
}

// webSocketAPI answers eval and graph requests over one WebSocket
// connection.
func (s *Service) webSocketAPI(ctx context.Context) http.HandlerFunc {

	var upgrader = websocket.Upgrader{} // use default options

	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("flowd WebSocket connection")

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error", err)
			return
		}
		defer c.Close()

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			mt, message, err := c.ReadMessage()
			if err != nil {
				log.Println("read error", err)
				break
			}

			var req wsRequest
			if err := json.Unmarshal(message, &req); err != nil {
				if err = c.WriteMessage(mt, errFrame(err)); err != nil {
					log.Println("write (err)", err)
				}
				continue
			}

			var x interface{}
			switch req.Op {
			case "graph":
				x = s.Graph()
			case "eval", "":
				x = s.Eval(&req.EvalRequest)
			default:
				x = &EvalResponse{
					Id:    req.Id,
					Error: "unknown op " + req.Op,
				}
			}

			js, err := json.Marshal(&x)
			if err != nil {
				js = errFrame(err)
			}
			if err = c.WriteMessage(mt, js); err != nil {
				log.Println("write error", err)
				break
			}
		}
	}
}

func errFrame(err error) []byte {
	js, marshalErr := json.Marshal(&EvalResponse{Error: err.Error()})
	if marshalErr != nil {
		return []byte(`{"error":"internal error"}`)
	}
	return js
}
