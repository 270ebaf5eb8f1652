package delivery_notice

import (
	"fmt"

	"github.com/AlekSi/pointer"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

// NoticeFactory решает, кому и что сообщить о событии доставки.
type NoticeFactory struct{}

func New() *NoticeFactory {
	return &NoticeFactory{}
}

// Notices возвращает уведомления для события. Неизвестные события уведомлений не порождают.
func (f *NoticeFactory) Notices(event entities.DeliveryEvent) []entities.NotificationModify {
	switch event.Type {
	case entities.EventDeliveryCreated:
		return f.createdNotices(event)
	case entities.EventCourierAssigned:
		return f.assignedNotices(event)
	case entities.EventStatusChanged:
		return f.statusNotices(event)
	case entities.EventDeliveryCompleted:
		return f.completedNotices(event)
	default:
		return nil
	}
}

func (f *NoticeFactory) createdNotices(event entities.DeliveryEvent) []entities.NotificationModify {
	if event.SellerID == nil {
		return nil
	}

	return []entities.NotificationModify{
		notice(*event.SellerID, event.DeliveryID,
			"Nouvelle commande",
			fmt.Sprintf("Une nouvelle commande %s attend sa préparation.", shortID(event.DeliveryID)),
			entities.NotificationInfo,
		),
	}
}

func (f *NoticeFactory) assignedNotices(event entities.DeliveryEvent) []entities.NotificationModify {
	notices := make([]entities.NotificationModify, 0, 2)

	if event.CourierID != nil {
		notices = append(notices, notice(*event.CourierID, event.DeliveryID,
			"Nouvelle livraison assignée",
			fmt.Sprintf("La livraison %s vous a été assignée.", shortID(event.DeliveryID)),
			entities.NotificationInfo,
		))
	}

	notices = append(notices, notice(event.ClientID, event.DeliveryID,
		"Livreur assigné",
		fmt.Sprintf("Un livreur a été assigné à votre commande %s.", shortID(event.DeliveryID)),
		entities.NotificationInfo,
	))

	return notices
}

func (f *NoticeFactory) statusNotices(event entities.DeliveryEvent) []entities.NotificationModify {
	var (
		title   string
		message string
		kind    entities.NotificationType
	)

	switch event.Status {
	case entities.DeliveryInTransit:
		title = "Commande en route"
		message = fmt.Sprintf("Votre commande %s est en route.", shortID(event.DeliveryID))
		kind = entities.NotificationInfo
	case entities.DeliveryArrivedZone:
		title = "Livreur à proximité"
		message = fmt.Sprintf("Le livreur de la commande %s est arrivé dans votre zone.", shortID(event.DeliveryID))
		kind = entities.NotificationInfo
	case entities.DeliveryFailed:
		title = "Livraison échouée"
		message = fmt.Sprintf("La livraison de la commande %s a échoué.", shortID(event.DeliveryID))
		kind = entities.NotificationError
	default:
		return nil
	}

	return []entities.NotificationModify{
		notice(event.ClientID, event.DeliveryID, title, message, kind),
	}
}

func (f *NoticeFactory) completedNotices(event entities.DeliveryEvent) []entities.NotificationModify {
	notices := []entities.NotificationModify{
		notice(event.ClientID, event.DeliveryID,
			"Commande livrée",
			fmt.Sprintf("Votre commande %s a été livrée.", shortID(event.DeliveryID)),
			entities.NotificationSuccess,
		),
	}

	if event.SellerID != nil {
		notices = append(notices, notice(*event.SellerID, event.DeliveryID,
			"Commande livrée",
			fmt.Sprintf("La commande %s a été remise au client.", shortID(event.DeliveryID)),
			entities.NotificationSuccess,
		))
	}

	return notices
}

func notice(userID, deliveryID, title, message string, kind entities.NotificationType) entities.NotificationModify {
	return entities.NotificationModify{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
		Link:    pointer.To("/deliveries/" + deliveryID),
	}
}

// shortID первые 8 символов uuid, так номер заказа показывается клиенту.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
