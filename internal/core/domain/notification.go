package domain

import "time"

// NotificationType classifies a transient user-facing notification.
type NotificationType string

const (
	NotifyInfo        NotificationType = "info"
	NotifySuccess     NotificationType = "success"
	NotifyError       NotificationType = "error"
	NotifyLoginPrompt NotificationType = "loginPrompt"
)

// Notification is a single toast message. Duration 0 means sticky: the
// notification stays until explicitly hidden (used for login prompts that
// require user action).
type Notification struct {
	ID       string           `json:"id"`
	Message  string           `json:"message"`
	Type     NotificationType `json:"type"`
	Duration time.Duration    `json:"duration"`
}
