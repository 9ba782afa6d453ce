package ui

import (
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 5 * time.Second

// NotificationType selects the alert style.
type NotificationType string

const (
	TypeInfo    NotificationType = "info"
	TypeSuccess NotificationType = "success"
	TypeWarning NotificationType = "warning"
	TypeDanger  NotificationType = "danger"
)

// plainText strips every tag. A Policy is safe for concurrent use once built.
var plainText = bluemonday.StrictPolicy()

// Notification is a transient message shown above the page content.
type Notification struct {
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

// NewNotification builds a notification shown at now. Markup in message is
// dropped so it always renders as text, and an empty typ means TypeInfo.
func NewNotification(message string, typ NotificationType, now time.Time) Notification {
	if typ == "" {
		typ = TypeInfo
	}
	return Notification{
		Message:   sanitize(message),
		Type:      typ,
		ExpiresAt: now.Add(NotificationTTL),
	}
}

// Class is the CSS class list for the alert element.
func (n Notification) Class() string {
	return "alert alert-" + string(n.Type)
}

// Expired reports whether the notification should be removed at now.
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// sanitize turns message into plain text. StrictPolicy escapes what it
// keeps, so entities are decoded back afterwards.
func sanitize(message string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(message)))
}
