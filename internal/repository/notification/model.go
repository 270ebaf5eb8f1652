package notification

import "time"

type NotificationDB struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      string
	Link      *string
	IsRead    bool
	CreatedAt time.Time
}

const notificationColumns = "id, user_id, title, message, type, link, is_read, created_at"

func (n *NotificationDB) scanTargets() []any {
	return []any{
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.Link,
		&n.IsRead,
		&n.CreatedAt,
	}
}
