package notification

import "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      entities.NotificationType(n.Type),
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i, n := range notificationsDB {
		result[i] = *ToDomain(&n)
	}
	return result
}
