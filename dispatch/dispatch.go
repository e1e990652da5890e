// Package dispatch fans gateway events out to registered handlers. The
// transport layer decodes one payload, constructs one event, and hands it
// here; handlers run concurrently with each other and each observes the
// same immutable event snapshot.
package dispatch

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/driftcord/driftcord/events"
)

var logger = logrus.WithField("p", "dispatch")

// Kind identifies the event family a handler subscribes to.
type Kind int

const (
	KindUnknown Kind = iota
	KindGuildAvailable
	KindGuildUpdate
	KindGuildUnavailable
	KindGuildLeave
	KindBanCreate
	KindBanDelete
	KindEmojisUpdate
	KindIntegrationCreate
	KindIntegrationUpdate
	KindIntegrationDelete
	KindPresenceUpdate
)

// KindOf maps an event record to its kind.
func KindOf(evt events.Event) Kind {
	switch evt.(type) {
	case *events.GuildAvailableEvent:
		return KindGuildAvailable
	case *events.GuildUpdateEvent:
		return KindGuildUpdate
	case *events.GuildUnavailableEvent:
		return KindGuildUnavailable
	case *events.GuildLeaveEvent:
		return KindGuildLeave
	case *events.BanCreateEvent:
		return KindBanCreate
	case *events.BanDeleteEvent:
		return KindBanDelete
	case *events.EmojisUpdateEvent:
		return KindEmojisUpdate
	case *events.IntegrationCreateEvent:
		return KindIntegrationCreate
	case *events.IntegrationUpdateEvent:
		return KindIntegrationUpdate
	case *events.IntegrationDeleteEvent:
		return KindIntegrationDelete
	case *events.PresenceUpdateEvent:
		return KindPresenceUpdate
	}
	return KindUnknown
}

// Handler is called once per dispatched event. Handlers doing their own
// Fetch* calls suspend only themselves, never the dispatch loop.
type Handler func(ctx context.Context, evt events.Event)

// Manager routes events to handlers. Registration is not safe concurrently
// with dispatching; register everything during startup, the way plugins do.
type Manager struct {
	handlers map[Kind][]Handler
	wg       sync.WaitGroup
}

func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Kind][]Handler),
	}
}

// AddHandler subscribes h to the given kinds.
func (m *Manager) AddHandler(h Handler, kinds ...Kind) {
	for _, kind := range kinds {
		m.handlers[kind] = append(m.handlers[kind], h)
	}
}

// Dispatch fans evt out to the handlers registered for its kind, one
// goroutine per handler, and returns without waiting for them.
func (m *Manager) Dispatch(ctx context.Context, evt events.Event) {
	kind := KindOf(evt)
	if kind == KindUnknown {
		logger.Warnf("dropping event of unknown type %T", evt)
		return
	}

	for _, h := range m.handlers[kind] {
		m.wg.Add(1)
		go m.runHandler(ctx, h, evt)
	}
}

// DispatchSync runs the handlers for evt and waits for all of them.
func (m *Manager) DispatchSync(ctx context.Context, evt events.Event) {
	m.Dispatch(ctx, evt)
	m.Wait()
}

// Wait blocks until all in-flight handlers have returned.
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) runHandler(ctx context.Context, h Handler, evt events.Event) {
	defer m.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("recovered from panic in event handler: %v\n%s", r, debug.Stack())
		}
	}()

	h(ctx, evt)
}
