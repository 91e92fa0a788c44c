// Package session runs one draft per goroutine. All access to the owned
// draft state goes through the inbox, so each player's draft has exactly one
// writer and never needs a lock.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/liamqma/sanmou-yanwu/internal/draft"
)

type Msg interface{ isSessionMsg() }

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

// RecordChoice applies one round's pick to the draft. Err receives the
// validation result so the caller can report it synchronously.
type RecordChoice struct {
	Type     draft.RoundType
	Chosen   []string
	SetIndex int
	Err      chan error
}

func (RecordChoice) isSessionMsg() {}

// ApplyTransfer acknowledges the post-round-6 transfer step.
type ApplyTransfer struct {
	Err chan error
}

func (ApplyTransfer) isSessionMsg() {}

type GetView struct {
	Reply chan View
}

func (GetView) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// Snapshot is what subscribers receive after every accepted mutation.
type Snapshot struct {
	Version int
	State   draft.View
}

type View struct {
	Version    int
	NumClients int
	State      draft.View
}

type Session struct {
	inbox   chan Msg
	state   *draft.State
	version int
	clients map[string]chan Snapshot
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, state *draft.State, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)

	s := &Session{
		inbox:   make(chan Msg, 64), // Small buffer
		state:   state,
		version: 0,
		clients: make(map[string]chan Snapshot),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately. A
				// rejoin under the same ID replaces the old outbox, which is
				// closed so its consumer unblocks.
				if old, ok := s.clients[msg.ClientID]; ok && old != msg.Outbox {
					close(old)
				}
				s.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: s.version, State: s.state.View()}

			case Leave:
				// Close the outbox so the consumer's range loop terminates.
				if ch, ok := s.clients[msg.ClientID]; ok {
					close(ch)
					delete(s.clients, msg.ClientID)
				}

			case RecordChoice:
				err := s.state.RecordChoice(msg.Type, msg.Chosen, msg.SetIndex)
				if msg.Err != nil {
					msg.Err <- err
				}
				if err != nil {
					s.log.Debug("choice rejected", zap.Error(err))
					break
				}
				s.version++
				s.broadcast(Snapshot{Version: s.version, State: s.state.View()})

			case ApplyTransfer:
				err := s.state.ApplyTransfer()
				if msg.Err != nil {
					msg.Err <- err
				}
				if err != nil {
					break
				}
				s.version++
				s.broadcast(Snapshot{Version: s.version, State: s.state.View()})

			case GetView:
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					State:      s.state.View(),
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch) // Tell client no more snapshots
		delete(s.clients, id)
	}
	s.cancel()
}

func (s *Session) broadcast(snap Snapshot) {
	for id, ch := range s.clients {
		select {
		case ch <- snap:
			// ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(s.clients, id)
		}
	}
}

// Expose the inbox so the HTTP and WS layers can send messages.
func (s *Session) Inbox() chan<- Msg { return s.inbox }
