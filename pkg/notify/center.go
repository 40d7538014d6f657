package notify

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	notification Notification
	timer        *time.Timer
}

// Center is an in-process Sink that tracks active notifications and
// dismisses them once their DismissAfter elapses.
type Center struct {
	logger *zap.Logger

	mu     sync.Mutex
	nextID ID
	active map[ID]*entry
	closed bool
}

func NewCenter(logger *zap.Logger) *Center {
	return &Center{
		logger: logger,
		active: make(map[ID]*entry),
	}
}

func (c *Center) Show(n Notification) ID {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	if c.closed {
		c.logger.Debug("Dropped notification on closed center", zap.String("message", n.Message))
		return id
	}

	e := &entry{notification: n}
	if n.DismissAfter > 0 {
		e.timer = time.AfterFunc(n.DismissAfter, func() {
			if c.remove(id) {
				c.logger.Debug("Notification expired", zap.Uint64("id", uint64(id)))
			}
		})
	}
	c.active[id] = e

	fields := []zap.Field{
		zap.Uint64("id", uint64(id)),
		zap.Duration("dismiss_after", n.DismissAfter),
	}
	switch n.Level {
	case LevelWarning:
		c.logger.Warn(n.Message, fields...)
	default:
		c.logger.Info(n.Message, fields...)
	}
	return id
}

// Click runs the notification's click action and dismisses it.
func (c *Center) Click(id ID) error {
	c.mu.Lock()
	e, ok := c.active[id]
	if ok {
		c.dismissLocked(id, e)
	}
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("failed to click notification %d: %w", id, ErrUnknownNotification)
	}
	if e.notification.OnClick != nil {
		e.notification.OnClick()
	}
	return nil
}

func (c *Center) Dismiss(id ID) error {
	if !c.remove(id) {
		return fmt.Errorf("failed to dismiss notification %d: %w", id, ErrUnknownNotification)
	}
	return nil
}

// Active returns the IDs of notifications still shown, oldest first.
func (c *Center) Active() []ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]ID, 0, len(c.active))
	for id := range c.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *Center) Get(id ID) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.active[id]
	if !ok {
		return Notification{}, false
	}
	return e.notification, true
}

// Close dismisses everything and stops pending timers. Later notifications
// are dropped.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.active {
		c.dismissLocked(id, e)
	}
	c.closed = true
}

func (c *Center) remove(id ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.active[id]
	if ok {
		c.dismissLocked(id, e)
	}
	return ok
}

func (c *Center) dismissLocked(id ID, e *entry) {
	if e.timer != nil {
		e.timer.Stop()
	}
	delete(c.active, id)
}
