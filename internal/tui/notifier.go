package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/logging"
)

// notificationBuffer is how many notifications may wait for the model.
const notificationBuffer = 32

// queue bridges store notifications into the Bubble Tea event loop.
// The store notifies synchronously from inside Update, so it cannot call
// Program.Send there; notifications are buffered and drained by a command.
// The store may still deliver a notification after unsubscribe returns, so
// Notify and close share a lock and late notifications are dropped.
type queue struct {
	mu     sync.Mutex
	closed bool
	ch     chan cart.Notification
}

func newQueue() *queue {
	return &queue{ch: make(chan cart.Notification, notificationBuffer)}
}

// Notify implements cart.Notifier. It never blocks.
func (q *queue) Notify(n cart.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	select {
	case q.ch <- n:
	default:
		logging.Debug("dropping notification, queue full", "kind", n.Kind.String())
	}
}

// wait returns a command that delivers the next notification.
func (q *queue) wait() tea.Cmd {
	return func() tea.Msg {
		n, ok := <-q.ch
		if !ok {
			return nil
		}
		return NotificationMsg{Notification: n}
	}
}

func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}
