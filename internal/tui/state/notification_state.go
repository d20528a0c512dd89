package state

// NotificationLevel represents the severity of a message dialog.
type NotificationLevel int

const (
	// LevelInfo reports a completed operation
	LevelInfo NotificationLevel = iota
	// LevelError reports a failed operation
	LevelError
)

// Notification is a single message shown in the modal dialog.
type Notification struct {
	Level   NotificationLevel
	Title   string
	Message string
}

// NotificationState queues message dialogs. The oldest one is displayed
// until dismissed.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add queues a notification.
func (s *NotificationState) Add(level NotificationLevel, title, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Title:   title,
		Message: message,
	})
}

// Current returns the notification on display.
func (s *NotificationState) Current() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[0], true
}

// Dismiss drops the notification on display and reports whether more remain.
func (s *NotificationState) Dismiss() bool {
	if len(s.notifications) > 0 {
		s.notifications = s.notifications[1:]
	}
	return len(s.notifications) > 0
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
