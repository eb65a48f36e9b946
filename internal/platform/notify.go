package platform

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notifyMethod         = notificationsService + ".Notify"
	notifyTimeoutMillis  = int32(10000)
)

// DesktopNotifier sends freedesktop notifications over the session bus.
type DesktopNotifier struct {
	appName string

	mu   sync.Mutex
	conn *dbus.Conn
}

// NewDesktopNotifier returns a notifier; the bus is dialed on first use.
func NewDesktopNotifier(appName string) *DesktopNotifier {
	return &DesktopNotifier{appName: appName}
}

// Notify shows a desktop notification.
func (notifier *DesktopNotifier) Notify(summary, body string) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	if notifier.conn == nil {
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("connect to session bus: %w", err)
		}
		notifier.conn = conn
	}

	obj := notifier.conn.Object(notificationsService, notificationsPath)
	call := obj.Call(notifyMethod, 0,
		notifier.appName,
		uint32(0),
		"alarm-symbolic",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)),
		},
		notifyTimeoutMillis,
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

// Close releases the bus connection.
func (notifier *DesktopNotifier) Close() error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.conn == nil {
		return nil
	}
	err := notifier.conn.Close()
	notifier.conn = nil
	return err
}

// CompletionMessage returns the notification text for a finished session.
func CompletionMessage(finished model.SessionType) (string, string) {
	summary := clock.SessionLabel(finished) + " finished"
	if finished == model.SessionWork {
		return summary, "Nice work. Time for a break."
	}
	return summary, "Break is over. Back to focus."
}
