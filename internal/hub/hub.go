// Package hub routes game codes to their running draft sessions. Like the
// sessions it manages, the hub is a single goroutine fed by an inbox.
package hub

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/liamqma/sanmou-yanwu/internal/draft"
	"github.com/liamqma/sanmou-yanwu/internal/session"
)

// sweepEvery is how often the hub looks for finished sessions to retire.
const sweepEvery = time.Minute

type HubMsg interface{ isHubMsg() }

type CreateSession struct {
	Code  string
	State *draft.State
	Reply chan *session.Session
}

type GetSession struct {
	Code  string
	Reply chan *session.Session
}

type EnsureSession struct {
	Code  string
	State *draft.State // only used if creation happens
	Reply chan *session.Session
}

type RemoveSession struct {
	Code string
}

type ShutdownHub struct{}

// Sweep shuts down and removes sessions whose draft is complete and that no
// client is watching. The hub sends one to itself periodically.
type Sweep struct{}

func (CreateSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (EnsureSession) isHubMsg() {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}
func (Sweep) isHubMsg()         {}

type Hub struct {
	inbox    chan HubMsg
	sessions map[string]*session.Session
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		sessions: make(map[string]*session.Session),
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	go h.sweepLoop()
	return h
}

func (h *Hub) sweepLoop() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			select {
			case h.inbox <- Sweep{}:
			default:
				// Inbox full; the next tick retries.
			}
		}
	}
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				s := session.New(h.ctx, msg.State, h.log)
				h.sessions[msg.Code] = s
				h.log.Info("session created", zap.String("code", msg.Code))
				msg.Reply <- s

			case GetSession:
				msg.Reply <- h.sessions[msg.Code] // May be nil

			case EnsureSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}

				s := session.New(h.ctx, msg.State, h.log)
				h.sessions[msg.Code] = s
				msg.Reply <- s

			case RemoveSession:
				delete(h.sessions, msg.Code)

			case Sweep:
				for code, s := range h.sessions {
					reply := make(chan session.View, 1)
					select {
					case s.Inbox() <- session.GetView{Reply: reply}:
					default:
						continue // busy session, skip this pass
					}
					select {
					case v := <-reply:
						if v.State.Complete && v.NumClients == 0 {
							s.Inbox() <- session.Shutdown{}
							delete(h.sessions, code)
							h.log.Info("completed session retired", zap.String("code", code))
						}
					case <-time.After(time.Second):
					}
				}

			case ShutdownHub:
				for _, s := range h.sessions {
					s.Inbox() <- session.Shutdown{}
				}
				clear(h.sessions)
				h.cancel()
			}
		}
	}
}
