package deliverylog

import "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"

func ToDomain(l *DeliveryLogDB) *entities.DeliveryLog {
	if l == nil {
		return nil
	}

	return &entities.DeliveryLog{
		ID:         l.ID,
		DeliveryID: l.DeliveryID,
		UserID:     l.UserID,
		Action:     l.Action,
		Details:    l.Details,
		CreatedAt:  l.CreatedAt,
	}
}

func ToDomainList(logsDB []DeliveryLogDB) []entities.DeliveryLog {
	if len(logsDB) == 0 {
		return []entities.DeliveryLog{}
	}

	result := make([]entities.DeliveryLog, len(logsDB))
	for i, logDB := range logsDB {
		result[i] = *ToDomain(&logDB)
	}
	return result
}
