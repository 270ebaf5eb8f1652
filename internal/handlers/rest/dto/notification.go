package dto

import (
	"time"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      *string   `json:"link"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func NotificationFromEntity(n *entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type.String(),
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func NotificationsFromEntity(notifications []entities.Notification) []Notification {
	res := make([]Notification, 0, len(notifications))
	for i := range notifications {
		res = append(res, NotificationFromEntity(&notifications[i]))
	}
	return res
}
