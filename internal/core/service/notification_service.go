package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bakeryhub/storefront/internal/api/metrics"
	"github.com/bakeryhub/storefront/internal/core/domain"
)

// NotificationCenter is the single-slot toast queue: showing a new
// notification replaces the current one and restarts the dismiss timer, so at
// most one notification is live and at most one timer is pending.
type NotificationCenter struct {
	mu      sync.Mutex
	current *domain.Notification
	timer   *time.Timer
	subs    []func(*domain.Notification)
	closed  bool
}

func NewNotificationCenter() *NotificationCenter {
	return &NotificationCenter{}
}

// Show replaces any current notification. Duration 0 means sticky: no
// auto-dismiss, the caller must Hide explicitly (login prompts).
func (n *NotificationCenter) Show(message string, typ domain.NotificationType, duration time.Duration) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.stopTimerLocked()

	note := &domain.Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Type:     typ,
		Duration: duration,
	}
	n.current = note
	if duration > 0 {
		id := note.ID
		n.timer = time.AfterFunc(duration, func() { n.dismiss(id) })
	}
	subs := append(([]func(*domain.Notification))(nil), n.subs...)
	n.mu.Unlock()

	metrics.NotificationsShownTotal.WithLabelValues(string(typ)).Inc()
	for _, sub := range subs {
		sub(note)
	}
}

// Hide cancels any pending timer and clears the slot.
func (n *NotificationCenter) Hide() {
	n.mu.Lock()
	n.stopTimerLocked()
	n.current = nil
	subs := append(([]func(*domain.Notification))(nil), n.subs...)
	n.mu.Unlock()

	for _, sub := range subs {
		sub(nil)
	}
}

// Current returns the live notification, or nil.
func (n *NotificationCenter) Current() *domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	clone := *n.current
	return &clone
}

// Subscribe registers a listener for slot changes (new notification or nil on
// hide/dismiss).
func (n *NotificationCenter) Subscribe(sub func(*domain.Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, sub)
}

// Close cancels any pending timer so no dismissal fires after teardown.
func (n *NotificationCenter) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopTimerLocked()
	n.current = nil
	n.closed = true
}

// dismiss clears the slot only if the given notification is still live; a
// replaced notification's timer must not hide its successor.
func (n *NotificationCenter) dismiss(id string) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.timer = nil
	subs := append(([]func(*domain.Notification))(nil), n.subs...)
	n.mu.Unlock()

	for _, sub := range subs {
		sub(nil)
	}
}

func (n *NotificationCenter) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
