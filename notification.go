package vtcore

// NotificationPayload carries a parsed OSC 99 (desktop notification) request.
// Kitty's OSC 99 protocol splits a notification across metadata key=value
// pairs (i=, d=, p=, a=, ...) followed by a base64 payload chunk; by the time
// a Terminal method receives this it has already been assembled into a
// single structured value.
type NotificationPayload struct {
	// ID identifies the notification for later reference (close, update).
	ID string
	// Done indicates this is the final chunk of a (possibly multi-part) notification.
	Done bool
	// PayloadType is the metadata key this Data chunk belongs to: "title",
	// "body", or "?" for a capability query.
	PayloadType string
	// Encoding is the payload transfer encoding, typically "1" (base64).
	Encoding string
	// Actions lists the actions the host should offer alongside the notification.
	Actions []string
	// TrackClose requests a close-event report back to the application.
	TrackClose bool
	// Timeout is the auto-dismiss delay in milliseconds, 0 meaning no timeout.
	Timeout int
	// AppName overrides the application name shown with the notification.
	AppName string
	// Type is a freeform category hint (e.g. "alert").
	Type string
	// IconName selects a named icon from the host's icon theme.
	IconName string
	// IconCacheID lets the host cache a previously transmitted icon.
	IconCacheID string
	// Sound names a sound to play, "" for silent.
	Sound string
	// Urgency follows the freedesktop urgency levels: 0 low, 1 normal, 2 critical.
	Urgency int
	// Occasion controls when the notification should be shown (e.g. "always",
	// "unfocused", "invisible").
	Occasion string
	// Data is the decoded payload bytes for PayloadType (title text, body text).
	Data []byte
}

// NotificationProvider displays a desktop notification and optionally returns
// a raw escape-sequence response (used for capability queries).
type NotificationProvider interface {
	// Notify is called with each notification payload chunk. A non-empty
	// return value is written back to the pty verbatim.
	Notify(payload *NotificationPayload) string
}

// NoopNotification discards all notifications.
type NoopNotification struct{}

func (NoopNotification) Notify(payload *NotificationPayload) string { return "" }

var _ NotificationProvider = NoopNotification{}

// SetNotificationProvider sets the desktop notification provider at runtime.
func (t *Terminal) SetNotificationProvider(p NotificationProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notificationProvider = p
}

// NotificationProvider returns the current desktop notification provider.
func (t *Terminal) NotificationProvider() NotificationProvider {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.notificationProvider
}

// DesktopNotification processes an OSC 99 notification payload.
func (t *Terminal) DesktopNotification(payload *NotificationPayload) {
	if t.middleware != nil && t.middleware.DesktopNotification != nil {
		t.middleware.DesktopNotification(payload, t.desktopNotificationInternal)
		return
	}
	t.desktopNotificationInternal(payload)
}

func (t *Terminal) desktopNotificationInternal(payload *NotificationPayload) {
	t.mu.RLock()
	provider := t.notificationProvider
	t.mu.RUnlock()

	if provider == nil {
		return
	}

	if response := provider.Notify(payload); response != "" {
		t.writeResponseString(response)
	}
}
