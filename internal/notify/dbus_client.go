package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notificationService = "org.freedesktop.Notifications"
	notificationPath    = "/org/freedesktop/Notifications"
	notifyMethod        = "org.freedesktop.Notifications.Notify"
)

// DBusClient defines the slice of the session bus used for notifications.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks randbg/internal/notify DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Notify calls org.freedesktop.Notifications.Notify and returns the
	// server-assigned notification id
	Notify(appName string, replacesID uint32, appIcon, summary, body string,
		actions []string, hints map[string]dbus.Variant, expireTimeout int32) (uint32, error)
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Notify posts a notification through the freedesktop notification service
func (c *StdDBusClient) Notify(appName string, replacesID uint32, appIcon, summary, body string,
	actions []string, hints map[string]dbus.Variant, expireTimeout int32) (uint32, error) {
	obj := c.conn.Object(notificationService, notificationPath)
	call := obj.Call(notifyMethod, 0,
		appName, replacesID, appIcon, summary, body, actions, hints, expireTimeout)

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}
