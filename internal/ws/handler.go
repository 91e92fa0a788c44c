package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/liamqma/sanmou-yanwu/internal/hub"
	"github.com/liamqma/sanmou-yanwu/internal/session"
	"github.com/liamqma/sanmou-yanwu/internal/types"
)

// Handler upgrades the connection and streams draft state snapshots for one
// game. Clients may also submit choices over the socket.
func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
		sess := <-reply
		if sess == nil {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan session.Snapshot, 8)
		clientID := uuid.NewString()

		sess.Inbox() <- session.Join{ClientID: clientID, Outbox: out}
		defer func() { sess.Inbox() <- session.Leave{ClientID: clientID} }()

		log.Debug("ws client joined", zap.String("code", code), zap.String("client", clientID))

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				state := snap.State
				msg := types.ServerMessage{Type: "StateSnapshot", Version: snap.Version, State: &state}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (session.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeErr(r.Context(), conn, "bad json")
				continue
			}

			switch cm.Type {
			case "RecordChoice":
				errCh := make(chan error, 1)
				sess.Inbox() <- session.RecordChoice{
					Type:     cm.RoundType,
					Chosen:   cm.ChosenSet,
					SetIndex: cm.SetIndex,
					Err:      errCh,
				}
				if err := <-errCh; err != nil {
					writeErr(r.Context(), conn, err.Error())
				}
			case "ApplyTransfer":
				errCh := make(chan error, 1)
				sess.Inbox() <- session.ApplyTransfer{Err: errCh}
				if err := <-errCh; err != nil {
					writeErr(r.Context(), conn, err.Error())
				}
			default:
				writeErr(r.Context(), conn, "unknown type")
			}
		}
	}
}

func writeErr(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: msg})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}
