package notify

import (
	"math"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"randbg/internal/domain"
)

const appName = "Random Wallpaper"

// expireTime is how long a regular notification stays on screen, in ms
const expireTime int32 = 3000

// stickyTimeout keeps a notification visible until dismissed
const stickyTimeout int32 = math.MaxInt32

// DesktopNotifier posts notifications through the freedesktop notification
// service on the session bus
type DesktopNotifier struct {
	logger *zap.Logger
	client DBusClient
}

// NewDesktopNotifier creates a notifier backed by the given D-Bus client
func NewDesktopNotifier(logger *zap.Logger, client DBusClient) *DesktopNotifier {
	return &DesktopNotifier{logger: logger, client: client}
}

// NewNotifier returns a desktop notifier when a session bus is available
// and a no-op notifier otherwise, so headless runs still work
func NewNotifier(logger *zap.Logger) domain.Notifier {
	client, err := NewStdDBusClient()
	if err != nil {
		logger.Warn("Session bus unavailable, desktop notifications disabled",
			zap.Error(err))
		return &NopNotifier{}
	}
	return NewDesktopNotifier(logger, client)
}

// Changed announces the newly applied wallpaper. The image itself serves
// as the notification icon.
func (n *DesktopNotifier) Changed(imagePath string) error {
	return n.send(filepath.Base(imagePath), imagePath, false)
}

// Warn posts a sticky warning that stays on screen until dismissed
func (n *DesktopNotifier) Warn(body string) error {
	return n.send(body, "dialog-warning", true)
}

func (n *DesktopNotifier) send(body, icon string, sticky bool) error {
	timeout := expireTime
	hints := map[string]dbus.Variant{}
	if sticky {
		timeout = stickyTimeout
		hints["resident"] = dbus.MakeVariant(true)
	}

	if _, err := n.client.Notify(appName, 0, icon, appName, body, nil, hints, timeout); err != nil {
		n.logger.Error("Failed to send notification", zap.Error(err))
		return err
	}
	return nil
}

// NopNotifier drops all notifications
type NopNotifier struct{}

// Changed implements domain.Notifier
func (*NopNotifier) Changed(string) error { return nil }

// Warn implements domain.Notifier
func (*NopNotifier) Warn(string) error { return nil }
