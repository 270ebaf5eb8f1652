package entities

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

func (t NotificationType) String() string {
	return string(t)
}

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      NotificationType
	Link      *string
	IsRead    bool
	CreatedAt time.Time
}

type NotificationModify struct {
	UserID  string
	Title   string
	Message string
	Type    NotificationType
	Link    *string
}
